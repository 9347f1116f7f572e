package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumaster/analytics-engine/internal/domain/metrics"
	"github.com/edumaster/analytics-engine/internal/domain/record"
	"github.com/edumaster/analytics-engine/internal/domain/shared"
	"github.com/edumaster/analytics-engine/pkg/logger"
)

func behavioralHandler(store *fakeStore) *GetBehavioralAnalyticsHandler {
	return NewGetBehavioralAnalyticsHandler(NewPipeline(store, logger.NewNop()), fixedClock)
}

func TestBehavioralAnalyticsInvalidUserID(t *testing.T) {
	h := behavioralHandler(newFakeStore())

	_, err := h.Handle(context.Background(), BehavioralAnalyticsQuery{UserID: "  "})
	assert.ErrorIs(t, err, shared.ErrInvalidUserID)
	assert.True(t, shared.IsValidation(err))
}

func TestBehavioralAnalyticsUnknownUser(t *testing.T) {
	h := behavioralHandler(newFakeStore("someone-else"))

	_, err := h.Handle(context.Background(), BehavioralAnalyticsQuery{UserID: "u1"})
	assert.ErrorIs(t, err, shared.ErrUserNotFound)
}

func TestBehavioralAnalyticsEmptyDataUsesDefaults(t *testing.T) {
	h := behavioralHandler(newFakeStore("u1"))

	result, err := h.Handle(context.Background(), BehavioralAnalyticsQuery{UserID: "u1"})
	require.NoError(t, err)

	assert.Equal(t, "u1", result.UserID)
	assert.Equal(t, record.DefaultWindowDays, result.PeriodDays)
	assert.Equal(t, testNow, result.GeneratedAt)

	assert.False(t, result.Activity.HasData)
	assert.Equal(t, 70.0, result.Activity.FocusScore)
	assert.Equal(t, metrics.TrendNoData, result.Quiz.Trend)
	assert.Equal(t, 1.5, result.Quiz.AverageAttempts)
	assert.Equal(t, 50.0, result.Schedule.AdherenceRate)

	// Fused defaults: all three procrastination indicators fire.
	assert.InDelta(t, 35.0, result.Insights.ProcrastinationScore, 1e-9)
	assert.InDelta(t, 75.0, result.Insights.HelpSeekingScore, 1e-9)
	assert.InDelta(t, 70.0, result.Insights.FocusEfficiency, 1e-9)
	assert.Equal(t, metrics.TrendNoData, result.Insights.PerformanceTrend)
}

func TestBehavioralAnalyticsWindowClamping(t *testing.T) {
	h := behavioralHandler(newFakeStore("u1"))

	result, err := h.Handle(context.Background(), BehavioralAnalyticsQuery{UserID: "u1", Days: 1000})
	require.NoError(t, err)
	assert.Equal(t, record.MaxWindowDays, result.PeriodDays)

	result, err = h.Handle(context.Background(), BehavioralAnalyticsQuery{UserID: "u1", Days: -5})
	require.NoError(t, err)
	assert.Equal(t, record.MinWindowDays, result.PeriodDays)
}

func TestBehavioralAnalyticsIdempotent(t *testing.T) {
	store := newFakeStore("u1")
	store.quizzes = []record.QuizSession{
		{UserID: "u1", CompletedAt: testNow.AddDate(0, 0, -1), Percentage: 80, AttemptsUsed: 1, Difficulty: record.DifficultyMedium, TimeSpentSeconds: 600},
		{UserID: "u1", CompletedAt: testNow.AddDate(0, 0, -3), Percentage: 90, AttemptsUsed: 2, Difficulty: record.DifficultyHard, TimeSpentSeconds: 900},
	}
	h := behavioralHandler(store)

	first, err := h.Handle(context.Background(), BehavioralAnalyticsQuery{UserID: "u1"})
	require.NoError(t, err)
	second, err := h.Handle(context.Background(), BehavioralAnalyticsQuery{UserID: "u1"})
	require.NoError(t, err)

	// Same records and same clock produce an identical result.
	assert.Equal(t, first, second)
}

func TestBehavioralAnalyticsFusesRealData(t *testing.T) {
	store := newFakeStore("u1")
	store.activities = []record.ScheduledActivity{
		{UserID: "u1", ScheduledAt: testNow.AddDate(0, 0, -1), Category: "study", Status: record.StatusCompleted, DurationMinutes: 60, StartTime: "09:00", Priority: record.PriorityHigh},
		{UserID: "u1", ScheduledAt: testNow.AddDate(0, 0, -2), Category: "study", Status: record.StatusCompleted, DurationMinutes: 60, StartTime: "10:00", Priority: record.PriorityHigh},
	}
	h := behavioralHandler(store)

	result, err := h.Handle(context.Background(), BehavioralAnalyticsQuery{UserID: "u1"})
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.Activity.CompletionRate)
	// 2 activities of an hour each over four weeks.
	assert.InDelta(t, 0.5, result.Insights.WeeklyStudyHours, 1e-9)
	assert.Contains(t, result.Insights.StudyPatterns, "Morning learner")
}
