package query

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/edumaster/analytics-engine/internal/domain/dashboard"
	"github.com/edumaster/analytics-engine/internal/domain/record"
	"github.com/edumaster/analytics-engine/internal/domain/shared"
	"github.com/edumaster/analytics-engine/pkg/logger"
	"github.com/edumaster/analytics-engine/pkg/timeutil"
)

// SessionTracker reports currently running sessions. Presence is best
// effort: a tracker failure degrades to "no live sessions".
type SessionTracker interface {
	ActiveSessions(ctx context.Context, id record.UserID) ([]dashboard.LiveSession, error)
}

// DashboardQuery asks for the unified dashboard over the last Days days.
type DashboardQuery struct {
	UserID string
	Days   int
}

// Validate checks the query.
func (q DashboardQuery) Validate() error {
	if !record.UserID(q.UserID).IsValid() {
		return shared.ErrInvalidUserID
	}
	return nil
}

// DashboardResult is the unified dashboard projection.
type DashboardResult struct {
	UserID       string
	PeriodDays   int
	GeneratedAt  time.Time
	Overview     dashboard.Overview
	Breakdown    map[record.Kind]dashboard.KindBreakdown
	Productivity dashboard.ProductivityInsights
	Daily        []dashboard.DailyRollup
	Weekly       dashboard.WeeklyTrends
	Courses      []dashboard.CourseStats
	Goals        dashboard.GoalsProgress
	RealTime     dashboard.RealTimeStatus
}

// GetDashboardHandler merges all session kinds and builds the dashboard
// projections.
type GetDashboardHandler struct {
	pipeline *Pipeline
	store    record.Store
	tracker  SessionTracker
	log      *logger.Logger
	now      func() time.Time
}

// NewGetDashboardHandler creates the handler.
func NewGetDashboardHandler(pipeline *Pipeline, store record.Store, tracker SessionTracker, log *logger.Logger, now func() time.Time) *GetDashboardHandler {
	return &GetDashboardHandler{
		pipeline: pipeline,
		store:    store,
		tracker:  tracker,
		log:      log,
		now:      now,
	}
}

// Handle executes the query.
func (h *GetDashboardHandler) Handle(ctx context.Context, q DashboardQuery) (*DashboardResult, error) {
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

	merged, err := h.fetchSessions(ctx, id, window)
	if err != nil {
		return nil, err
	}

	live := h.liveSessions(ctx, id)
	var today []record.ActivityRecord
	for _, r := range merged {
		if timeutil.SameDay(r.OccurredAt(), now) {
			today = append(today, r)
		}
	}

	return &DashboardResult{
		UserID:       q.UserID,
		PeriodDays:   days,
		GeneratedAt:  now,
		Overview:     dashboard.BuildOverview(merged, now),
		Breakdown:    dashboard.BuildBreakdown(merged),
		Productivity: dashboard.BuildProductivity(merged),
		Daily:        dashboard.BuildDailyDistribution(merged),
		Weekly:       dashboard.BuildWeeklyTrends(merged),
		Courses:      dashboard.BuildCoursePerformance(merged),
		Goals:        dashboard.BuildGoals(merged, now),
		RealTime:     dashboard.BuildRealTimeStatus(live, today),
	}, nil
}

// fetchSessions loads all three session kinds in parallel and merges them
// ordered by time ascending.
func (h *GetDashboardHandler) fetchSessions(ctx context.Context, id record.UserID, window record.DateRange) ([]record.ActivityRecord, error) {
	var (
		study   []record.StudySession
		reading []record.ReadingSession
		quizzes []record.QuizSession
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		study, err = h.store.StudySessions(ctx, id, window)
		return err
	})
	g.Go(func() error {
		var err error
		reading, err = h.store.ReadingSessions(ctx, id, window)
		return err
	})
	g.Go(func() error {
		var err error
		quizzes, err = h.store.QuizSessions(ctx, id, window)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, shared.WrapError("dashboard", "Fetch", shared.ErrServiceUnavailable, "loading sessions", err)
	}

	merged := make([]record.ActivityRecord, 0, len(study)+len(reading)+len(quizzes))
	for _, s := range study {
		merged = append(merged, s)
	}
	for _, s := range reading {
		merged = append(merged, s)
	}
	for _, s := range quizzes {
		merged = append(merged, s)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].OccurredAt().Before(merged[j].OccurredAt())
	})
	return merged, nil
}

func (h *GetDashboardHandler) liveSessions(ctx context.Context, id record.UserID) []dashboard.LiveSession {
	if h.tracker == nil {
		return nil
	}
	live, err := h.tracker.ActiveSessions(ctx, id)
	if err != nil {
		h.log.Warn("session tracker unavailable", "user_id", id.String(), "error", err)
		return nil
	}
	return live
}
