package query

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumaster/analytics-engine/internal/domain/dashboard"
	"github.com/edumaster/analytics-engine/internal/domain/record"
	"github.com/edumaster/analytics-engine/internal/domain/shared"
	"github.com/edumaster/analytics-engine/pkg/logger"
)

func dashboardHandler(store *fakeStore, tracker SessionTracker) *GetDashboardHandler {
	log := logger.NewNop()
	return NewGetDashboardHandler(NewPipeline(store, log), store, tracker, log, fixedClock)
}

func seededDashboardStore() *fakeStore {
	store := newFakeStore("u1")
	store.study = []record.StudySession{
		{UserID: "u1", CourseID: "c1", CourseName: "Algorithms", StartedAt: testNow.Add(-3 * time.Hour), ActiveMinutes: 120, Efficiency: 80, Satisfaction: 4},
	}
	store.reading = []record.ReadingSession{
		{UserID: "u1", CourseID: "c2", CourseName: "Databases", Filename: "l1.pdf", StartedAt: testNow.AddDate(0, 0, -1), ActiveReadingSeconds: 1800, Efficiency: 90},
	}
	store.quizzes = []record.QuizSession{
		{UserID: "u1", CourseID: "c1", CourseName: "Algorithms", CompletedAt: testNow.AddDate(0, 0, -2), Percentage: 85, TimeSpentSeconds: 600, Efficiency: 85},
	}
	return store
}

func TestDashboardMergesAllKinds(t *testing.T) {
	store := seededDashboardStore()
	h := dashboardHandler(store, &fakeTracker{})

	result, err := h.Handle(context.Background(), DashboardQuery{UserID: "u1"})
	require.NoError(t, err)

	assert.Equal(t, record.DefaultWindowDays, result.PeriodDays)
	assert.Equal(t, testNow, result.GeneratedAt)

	// 2h study + 0.5h reading + 10min quiz.
	assert.InDelta(t, 2.0+0.5+1.0/6, result.Overview.TotalStudyHours, 1e-9)
	assert.Equal(t, 3, result.Overview.SessionsThisWeek)

	assert.Equal(t, 1, result.Breakdown[record.KindStudy].SessionCount)
	assert.Equal(t, 1, result.Breakdown[record.KindReading].SessionCount)
	assert.Equal(t, 1, result.Breakdown[record.KindQuiz].SessionCount)

	// Three distinct days, sorted ascending.
	require.Len(t, result.Daily, 3)
	assert.Less(t, result.Daily[0].Date, result.Daily[2].Date)

	// Course c1 carries study plus quiz time and leads the ranking.
	require.Len(t, result.Courses, 2)
	assert.Equal(t, record.CourseID("c1"), result.Courses[0].CourseID)
	assert.Equal(t, 2, result.Courses[0].SessionCount)
}

func TestDashboardTodayTotalsOnlyCountToday(t *testing.T) {
	store := seededDashboardStore()
	h := dashboardHandler(store, &fakeTracker{})

	result, err := h.Handle(context.Background(), DashboardQuery{UserID: "u1"})
	require.NoError(t, err)

	// Only the study session happened today.
	assert.InDelta(t, 120.0, result.RealTime.Today.TotalMinutes, 1e-9)
	assert.InDelta(t, 120.0, result.RealTime.Today.ByKind[record.KindStudy], 1e-9)
	assert.Equal(t, 0.0, result.RealTime.Today.ByKind[record.KindReading])
}

func TestDashboardLiveSessions(t *testing.T) {
	live := []dashboard.LiveSession{
		{SessionID: "s1", Kind: record.KindReading, CourseName: "Databases", DurationMinutes: 10},
	}
	h := dashboardHandler(seededDashboardStore(), &fakeTracker{sessions: live})

	result, err := h.Handle(context.Background(), DashboardQuery{UserID: "u1"})
	require.NoError(t, err)

	assert.True(t, result.RealTime.HasActiveSession)
	assert.Equal(t, 1, result.RealTime.ActiveSessionCount)
	assert.Equal(t, "s1", result.RealTime.CurrentSessions[0].SessionID)
}

func TestDashboardTrackerFailureDegrades(t *testing.T) {
	h := dashboardHandler(seededDashboardStore(), &fakeTracker{err: errors.New("redis down")})

	result, err := h.Handle(context.Background(), DashboardQuery{UserID: "u1"})
	require.NoError(t, err)

	assert.False(t, result.RealTime.HasActiveSession)
	assert.NotNil(t, result.RealTime.CurrentSessions)
	assert.Empty(t, result.RealTime.CurrentSessions)
}

func TestDashboardNilTrackerDegrades(t *testing.T) {
	h := dashboardHandler(seededDashboardStore(), nil)

	result, err := h.Handle(context.Background(), DashboardQuery{UserID: "u1"})
	require.NoError(t, err)
	assert.False(t, result.RealTime.HasActiveSession)
}

func TestDashboardStoreFailurePropagates(t *testing.T) {
	store := seededDashboardStore()
	store.readingErr = errors.New("connection reset")
	h := dashboardHandler(store, &fakeTracker{})

	_, err := h.Handle(context.Background(), DashboardQuery{UserID: "u1"})
	assert.Error(t, err)
	assert.True(t, shared.IsExternalService(err))
}

func TestDashboardUnknownUser(t *testing.T) {
	h := dashboardHandler(newFakeStore(), &fakeTracker{})

	_, err := h.Handle(context.Background(), DashboardQuery{UserID: "ghost"})
	assert.ErrorIs(t, err, shared.ErrUserNotFound)
}
