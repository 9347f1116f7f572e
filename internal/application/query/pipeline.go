// Package query contains the read-side handlers. Each handler validates its
// query, resolves the user, fetches records over a bounded window and builds
// an immutable result. The clock used for windowing is injected so results
// are reproducible.
package query

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/edumaster/analytics-engine/internal/domain/metrics"
	"github.com/edumaster/analytics-engine/internal/domain/record"
	"github.com/edumaster/analytics-engine/internal/domain/shared"
	"github.com/edumaster/analytics-engine/pkg/logger"
)

// Pipeline runs the three metric extractors over a user's window. Extractors
// run in parallel but are independent; a failing source degrades to its
// default snapshot instead of failing the whole analysis.
type Pipeline struct {
	store record.Store
	log   *logger.Logger
}

// NewPipeline creates the extraction pipeline.
func NewPipeline(store record.Store, log *logger.Logger) *Pipeline {
	return &Pipeline{store: store, log: log}
}

// Snapshots bundles the three per-source snapshots.
type Snapshots struct {
	Activity metrics.ActivitySnapshot
	Quiz     metrics.QuizSnapshot
	Schedule metrics.ScheduleSnapshot
}

// ResolveUser checks the user exists before any extraction work starts.
func (p *Pipeline) ResolveUser(ctx context.Context, id record.UserID) error {
	exists, err := p.store.UserExists(ctx, id)
	if err != nil {
		return shared.WrapError("record", "ResolveUser", shared.ErrServiceUnavailable, "checking user", err)
	}
	if !exists {
		return shared.ErrUserNotFound
	}
	return nil
}

// Extract runs all three extractors for the window. It never fails: each
// source that errors or panics contributes its default snapshot.
func (p *Pipeline) Extract(ctx context.Context, id record.UserID, window record.DateRange) Snapshots {
	var snaps Snapshots

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		snaps.Activity = p.activitySnapshot(ctx, id, window)
		return nil
	})
	g.Go(func() error {
		snaps.Quiz = p.quizSnapshot(ctx, id, window)
		return nil
	})
	g.Go(func() error {
		snaps.Schedule = p.scheduleSnapshot(ctx, id, window)
		return nil
	})
	_ = g.Wait() // tasks degrade instead of returning errors

	return snaps
}

func (p *Pipeline) activitySnapshot(ctx context.Context, id record.UserID, window record.DateRange) (snap metrics.ActivitySnapshot) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("activity extractor panicked", "user_id", id.String(), "panic", r)
			snap = metrics.DefaultActivitySnapshot()
		}
	}()

	activities, err := p.store.ScheduledActivities(ctx, id, window)
	if err != nil {
		p.log.Error("fetching scheduled activities failed", "user_id", id.String(), "error", err)
		return metrics.DefaultActivitySnapshot()
	}
	return metrics.ExtractActivity(activities)
}

func (p *Pipeline) quizSnapshot(ctx context.Context, id record.UserID, window record.DateRange) (snap metrics.QuizSnapshot) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("quiz extractor panicked", "user_id", id.String(), "panic", r)
			snap = metrics.DefaultQuizSnapshot()
		}
	}()

	quizzes, err := p.store.QuizSessions(ctx, id, window)
	if err != nil {
		p.log.Error("fetching quiz sessions failed", "user_id", id.String(), "error", err)
		return metrics.DefaultQuizSnapshot()
	}
	return metrics.ExtractQuiz(quizzes)
}

func (p *Pipeline) scheduleSnapshot(ctx context.Context, id record.UserID, window record.DateRange) (snap metrics.ScheduleSnapshot) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("schedule extractor panicked", "user_id", id.String(), "panic", r)
			snap = metrics.DefaultScheduleSnapshot()
		}
	}()

	schedules, err := p.store.Schedules(ctx, id, window)
	if err != nil {
		p.log.Error("fetching schedules failed", "user_id", id.String(), "error", err)
		return metrics.DefaultScheduleSnapshot()
	}
	activities, err := p.store.ScheduledActivities(ctx, id, window)
	if err != nil {
		p.log.Error("fetching activities for adherence failed", "user_id", id.String(), "error", err)
		return metrics.DefaultScheduleSnapshot()
	}
	return metrics.ExtractSchedule(schedules, activities)
}
