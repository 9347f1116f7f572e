package query

import (
	"context"
	"time"

	"github.com/edumaster/analytics-engine/internal/domain/insight"
	"github.com/edumaster/analytics-engine/internal/domain/metrics"
	"github.com/edumaster/analytics-engine/internal/domain/record"
	"github.com/edumaster/analytics-engine/internal/domain/shared"
)

// BehavioralAnalyticsQuery asks for a user's behavioral analysis over the
// last Days days. Days outside [1, 365] is clamped; zero means the default.
type BehavioralAnalyticsQuery struct {
	UserID string
	Days   int
}

// Validate checks the query.
func (q BehavioralAnalyticsQuery) Validate() error {
	if !record.UserID(q.UserID).IsValid() {
		return shared.ErrInvalidUserID
	}
	return nil
}

// BehavioralAnalyticsResult is the full behavioral analysis.
type BehavioralAnalyticsResult struct {
	UserID      string
	PeriodDays  int
	GeneratedAt time.Time
	Activity    metrics.ActivitySnapshot
	Quiz        metrics.QuizSnapshot
	Schedule    metrics.ScheduleSnapshot
	Insights    insight.BehavioralInsights
}

// GetBehavioralAnalyticsHandler runs the extraction pipeline and fuses the
// snapshots into behavioral insights.
type GetBehavioralAnalyticsHandler struct {
	pipeline *Pipeline
	now      func() time.Time
}

// NewGetBehavioralAnalyticsHandler creates the handler. The clock is
// injected so windowing is reproducible in tests.
func NewGetBehavioralAnalyticsHandler(pipeline *Pipeline, now func() time.Time) *GetBehavioralAnalyticsHandler {
	return &GetBehavioralAnalyticsHandler{pipeline: pipeline, now: now}
}

// Handle executes the query.
func (h *GetBehavioralAnalyticsHandler) Handle(ctx context.Context, q BehavioralAnalyticsQuery) (*BehavioralAnalyticsResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	id := record.UserID(q.UserID)
	if err := h.pipeline.ResolveUser(ctx, id); err != nil {
		return nil, err
	}

	now := h.now()
	days := record.ClampWindowDays(q.Days)
	window := record.NewDateRange(now, days)

	snaps := h.pipeline.Extract(ctx, id, window)
	insights := insight.Fuse(snaps.Activity, snaps.Quiz, snaps.Schedule)

	return &BehavioralAnalyticsResult{
		UserID:      q.UserID,
		PeriodDays:  days,
		GeneratedAt: now,
		Activity:    snaps.Activity,
		Quiz:        snaps.Quiz,
		Schedule:    snaps.Schedule,
		Insights:    insights,
	}, nil
}
