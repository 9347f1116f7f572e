package record

import (
	"context"
	"time"
)

// Analysis window bounds. Queries outside these are clamped, not rejected.
const (
	MinWindowDays     = 1
	MaxWindowDays     = 365
	DefaultWindowDays = 30
)

// ClampWindowDays bounds a requested window length, substituting the default
// for non-positive values.
func ClampWindowDays(days int) int {
	if days == 0 {
		return DefaultWindowDays
	}
	if days < MinWindowDays {
		return MinWindowDays
	}
	if days > MaxWindowDays {
		return MaxWindowDays
	}
	return days
}

// DateRange is an inclusive time window used to bound every record fetch.
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDateRange builds the window ending at now and reaching back the given
// number of days.
func NewDateRange(now time.Time, days int) DateRange {
	return DateRange{
		From: now.AddDate(0, 0, -days),
		To:   now,
	}
}

// Contains reports whether t falls inside the window.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// Days returns the window length in whole days.
func (r DateRange) Days() int {
	return int(r.To.Sub(r.From).Hours() / 24)
}

// Store is the read-side port over the durable records. Implementations must
// return slices ordered by timestamp ascending; retry policy against the
// backing database is the implementation's concern.
type Store interface {
	// UserExists resolves whether the user is known to the platform.
	UserExists(ctx context.Context, id UserID) (bool, error)

	// StudySessions returns the user's general study sessions inside the window.
	StudySessions(ctx context.Context, id UserID, window DateRange) ([]StudySession, error)

	// ReadingSessions returns the user's slide-reading sessions inside the window.
	ReadingSessions(ctx context.Context, id UserID, window DateRange) ([]ReadingSession, error)

	// QuizSessions returns the user's completed quizzes inside the window,
	// ordered by completion time ascending.
	QuizSessions(ctx context.Context, id UserID, window DateRange) ([]QuizSession, error)

	// ScheduledActivities returns planned tasks whose scheduled date falls
	// inside the window.
	ScheduledActivities(ctx context.Context, id UserID, window DateRange) ([]ScheduledActivity, error)

	// Schedules returns study plans created inside the window.
	Schedules(ctx context.Context, id UserID, window DateRange) ([]Schedule, error)
}
