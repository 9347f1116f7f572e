package query

import (
	"context"
	"time"

	"github.com/edumaster/analytics-engine/internal/domain/dashboard"
	"github.com/edumaster/analytics-engine/internal/domain/record"
	"github.com/edumaster/analytics-engine/internal/domain/shared"
)

// QuizStatsQuery asks for the user's quiz totals. Unlike the other queries
// it defaults to the maximum window, since the summary is meant to be
// near-all-time while still bounded.
type QuizStatsQuery struct {
	UserID string
	Days   int
}

// Validate checks the query.
func (q QuizStatsQuery) Validate() error {
	if !record.UserID(q.UserID).IsValid() {
		return shared.ErrInvalidUserID
	}
	return nil
}

// QuizStatsResult is the quiz summary.
type QuizStatsResult struct {
	UserID      string
	PeriodDays  int
	GeneratedAt time.Time
	Stats       dashboard.QuizStats
}

// GetQuizStatsHandler totals the user's quizzes.
type GetQuizStatsHandler struct {
	pipeline *Pipeline
	store    record.Store
	now      func() time.Time
}

// NewGetQuizStatsHandler creates the handler.
func NewGetQuizStatsHandler(pipeline *Pipeline, store record.Store, now func() time.Time) *GetQuizStatsHandler {
	return &GetQuizStatsHandler{pipeline: pipeline, store: store, now: now}
}

// Handle executes the query.
func (h *GetQuizStatsHandler) Handle(ctx context.Context, q QuizStatsQuery) (*QuizStatsResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	id := record.UserID(q.UserID)
	if err := h.pipeline.ResolveUser(ctx, id); err != nil {
		return nil, err
	}

	now := h.now()
	days := q.Days
	if days == 0 {
		days = record.MaxWindowDays
	}
	days = record.ClampWindowDays(days)
	window := record.NewDateRange(now, days)

	quizzes, err := h.store.QuizSessions(ctx, id, window)
	if err != nil {
		return nil, shared.WrapError("dashboard", "Fetch", shared.ErrServiceUnavailable, "loading quiz sessions", err)
	}

	return &QuizStatsResult{
		UserID:      q.UserID,
		PeriodDays:  days,
		GeneratedAt: now,
		Stats:       dashboard.BuildQuizStats(quizzes),
	}, nil
}
