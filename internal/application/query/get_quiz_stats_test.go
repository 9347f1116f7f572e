package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumaster/analytics-engine/internal/domain/record"
	"github.com/edumaster/analytics-engine/internal/domain/shared"
	"github.com/edumaster/analytics-engine/pkg/logger"
)

func quizStatsHandler(store *fakeStore) *GetQuizStatsHandler {
	return NewGetQuizStatsHandler(NewPipeline(store, logger.NewNop()), store, fixedClock)
}

func TestQuizStatsDefaultsToMaxWindow(t *testing.T) {
	store := newFakeStore("u1")
	store.quizzes = []record.QuizSession{
		{UserID: "u1", CompletedAt: testNow.AddDate(0, 0, -200), Percentage: 80, TotalQuestions: 10, CorrectAnswers: 8, TimeSpentSeconds: 600},
	}
	h := quizStatsHandler(store)

	result, err := h.Handle(context.Background(), QuizStatsQuery{UserID: "u1"})
	require.NoError(t, err)

	// A 200-day-old quiz still counts under the default near-all-time window.
	assert.Equal(t, record.MaxWindowDays, result.PeriodDays)
	assert.Equal(t, 1, result.Stats.TotalQuizzes)
	assert.InDelta(t, 80.0, result.Stats.OverallAccuracy, 1e-9)
}

func TestQuizStatsExplicitWindow(t *testing.T) {
	store := newFakeStore("u1")
	store.quizzes = []record.QuizSession{
		{UserID: "u1", CompletedAt: testNow.AddDate(0, 0, -200), Percentage: 80},
		{UserID: "u1", CompletedAt: testNow.AddDate(0, 0, -2), Percentage: 90, TotalQuestions: 10, CorrectAnswers: 9},
	}
	h := quizStatsHandler(store)

	result, err := h.Handle(context.Background(), QuizStatsQuery{UserID: "u1", Days: 7})
	require.NoError(t, err)

	assert.Equal(t, 7, result.PeriodDays)
	assert.Equal(t, 1, result.Stats.TotalQuizzes)
	assert.Equal(t, "Excellent", result.Stats.PerformanceLevel)
}

func TestQuizStatsNoData(t *testing.T) {
	h := quizStatsHandler(newFakeStore("u1"))

	result, err := h.Handle(context.Background(), QuizStatsQuery{UserID: "u1"})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Stats.TotalQuizzes)
	assert.Equal(t, "No data", result.Stats.PerformanceLevel)
}

func TestQuizStatsInvalidUser(t *testing.T) {
	h := quizStatsHandler(newFakeStore("u1"))

	_, err := h.Handle(context.Background(), QuizStatsQuery{UserID: ""})
	assert.True(t, shared.IsValidation(err))
}
