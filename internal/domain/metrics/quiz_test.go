package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edumaster/analytics-engine/internal/domain/record"
)

func quiz(score float64, attempts int, seconds float64, difficulty record.Difficulty) record.QuizSession {
	return record.QuizSession{
		UserID:           "u1",
		Percentage:       score,
		AttemptsUsed:     attempts,
		TimeSpentSeconds: seconds,
		Difficulty:       difficulty,
	}
}

func TestExtractQuizEmpty(t *testing.T) {
	snap := ExtractQuiz(nil)

	assert.False(t, snap.HasData)
	assert.Equal(t, TrendNoData, snap.Trend)
	assert.Equal(t, 1.5, snap.AverageAttempts)
	assert.Equal(t, 70.0, snap.TimeEfficiency)
	assert.NotNil(t, snap.ByDifficulty)
}

func TestExtractQuizAverages(t *testing.T) {
	snap := ExtractQuiz([]record.QuizSession{
		quiz(80, 1, 600, record.DifficultyEasy),
		quiz(90, 2, 1200, record.DifficultyHard),
	})

	assert.True(t, snap.HasData)
	assert.Equal(t, 2, snap.TotalQuizzes)
	assert.InDelta(t, 85.0, snap.AverageScore, 1e-9)
	assert.InDelta(t, 1.5, snap.AverageAttempts, 1e-9)
	// Preparation: (100 + 70) / 2.
	assert.InDelta(t, 85.0, snap.PreparationLevel, 1e-9)
	// Minutes: (10 + 20) / 2.
	assert.InDelta(t, 15.0, snap.AverageTimeMinutes, 1e-9)

	assert.Equal(t, 1, snap.ByDifficulty[record.DifficultyEasy].Count)
	assert.InDelta(t, 80.0, snap.ByDifficulty[record.DifficultyEasy].AverageScore, 1e-9)
	assert.Equal(t, 1, snap.ByDifficulty[record.DifficultyHard].Count)
}

func TestExtractQuizPreparationBands(t *testing.T) {
	snap := ExtractQuiz([]record.QuizSession{
		quiz(80, 1, 600, record.DifficultyMedium),
		quiz(80, 2, 600, record.DifficultyMedium),
		quiz(80, 5, 600, record.DifficultyMedium),
	})

	// (100 + 70 + 40) / 3.
	assert.InDelta(t, 70.0, snap.PreparationLevel, 1e-9)
}

func TestExtractQuizInvalidDifficultyFallsBackToMedium(t *testing.T) {
	snap := ExtractQuiz([]record.QuizSession{
		quiz(80, 1, 600, "impossible"),
		quiz(60, 1, 600, ""),
	})

	assert.Equal(t, 2, snap.ByDifficulty[record.DifficultyMedium].Count)
	assert.InDelta(t, 70.0, snap.ByDifficulty[record.DifficultyMedium].AverageScore, 1e-9)
}

func TestExtractQuizTimeDefaults(t *testing.T) {
	snap := ExtractQuiz([]record.QuizSession{
		quiz(80, 1, 0, record.DifficultyMedium),
	})

	// Missing time counts as 30 minutes.
	assert.InDelta(t, 30.0, snap.AverageTimeMinutes, 1e-9)
	// 80 points over 30 minutes: 80/30*10*2.
	assert.InDelta(t, 53.333, snap.TimeEfficiency, 0.01)
}

func TestExtractQuizTimeEfficiencyClamped(t *testing.T) {
	// 100 points in one minute overshoots the scale and clamps to 100.
	snap := ExtractQuiz([]record.QuizSession{
		quiz(100, 1, 60, record.DifficultyMedium),
	})
	assert.Equal(t, 100.0, snap.TimeEfficiency)
}

func TestExtractQuizConsistency(t *testing.T) {
	// A single quiz cannot show spread.
	snap := ExtractQuiz([]record.QuizSession{
		quiz(80, 1, 600, record.DifficultyMedium),
	})
	assert.Equal(t, 70.0, snap.Consistency)

	// Scores 70 and 90: population stddev 10, consistency 100 - 2*10.
	snap = ExtractQuiz([]record.QuizSession{
		quiz(70, 1, 600, record.DifficultyMedium),
		quiz(90, 1, 600, record.DifficultyMedium),
	})
	assert.InDelta(t, 80.0, snap.Consistency, 1e-9)

	// Extreme spread floors at zero.
	snap = ExtractQuiz([]record.QuizSession{
		quiz(0, 1, 600, record.DifficultyMedium),
		quiz(100, 1, 600, record.DifficultyMedium),
	})
	assert.Equal(t, 0.0, snap.Consistency)
}
