package query

import (
	"context"
	"time"

	"github.com/edumaster/analytics-engine/internal/domain/dashboard"
	"github.com/edumaster/analytics-engine/internal/domain/record"
	"github.com/edumaster/analytics-engine/internal/domain/shared"
)

// ReadingAnalyticsQuery asks for slide-reading analytics, optionally
// narrowed to one course or one file.
type ReadingAnalyticsQuery struct {
	UserID   string
	CourseID string
	Filename string
	Days     int
}

// Validate checks the query.
func (q ReadingAnalyticsQuery) Validate() error {
	if !record.UserID(q.UserID).IsValid() {
		return shared.ErrInvalidUserID
	}
	return nil
}

// ReadingAnalyticsResult is the reading summary.
type ReadingAnalyticsResult struct {
	UserID      string
	PeriodDays  int
	GeneratedAt time.Time
	Analytics   dashboard.ReadingAnalytics
}

// GetReadingAnalyticsHandler summarizes reading sessions.
type GetReadingAnalyticsHandler struct {
	pipeline *Pipeline
	store    record.Store
	now      func() time.Time
}

// NewGetReadingAnalyticsHandler creates the handler.
func NewGetReadingAnalyticsHandler(pipeline *Pipeline, store record.Store, now func() time.Time) *GetReadingAnalyticsHandler {
	return &GetReadingAnalyticsHandler{pipeline: pipeline, store: store, now: now}
}

// Handle executes the query.
func (h *GetReadingAnalyticsHandler) Handle(ctx context.Context, q ReadingAnalyticsQuery) (*ReadingAnalyticsResult, error) {
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

	sessions, err := h.store.ReadingSessions(ctx, id, window)
	if err != nil {
		return nil, shared.WrapError("dashboard", "Fetch", shared.ErrServiceUnavailable, "loading reading sessions", err)
	}

	filtered := sessions[:0:0]
	for _, s := range sessions {
		if q.CourseID != "" && s.CourseID.String() != q.CourseID {
			continue
		}
		if q.Filename != "" && s.Filename != q.Filename {
			continue
		}
		filtered = append(filtered, s)
	}

	return &ReadingAnalyticsResult{
		UserID:      q.UserID,
		PeriodDays:  days,
		GeneratedAt: now,
		Analytics:   dashboard.BuildReadingAnalytics(filtered, now),
	}, nil
}
