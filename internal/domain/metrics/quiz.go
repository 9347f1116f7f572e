package metrics

import (
	"github.com/edumaster/analytics-engine/internal/domain/record"
)

const (
	prepSingleAttempt = 100
	prepTwoAttempts   = 70
	prepManyAttempts  = 40

	// DefaultAverageAttempts stands in for the per-user average when the
	// window has no quizzes.
	DefaultAverageAttempts = 1.5

	defaultQuizMinutes     = 30
	timeEfficiencyFallback = 70
	consistencyFallback    = 70
	consistencyPenalty     = 2
)

// ExtractQuiz builds the quiz snapshot from completed quizzes. The input must
// be ordered by completion time ascending; the trend depends on it.
func ExtractQuiz(quizzes []record.QuizSession) QuizSnapshot {
	if len(quizzes) == 0 {
		return DefaultQuizSnapshot()
	}

	snap := QuizSnapshot{
		HasData:      true,
		TotalQuizzes: len(quizzes),
		ByDifficulty: map[record.Difficulty]DifficultyStats{},
	}

	scores := make([]float64, 0, len(quizzes))
	prep := make([]float64, 0, len(quizzes))
	minutes := make([]float64, 0, len(quizzes))
	attemptsTotal := 0
	diffSums := map[record.Difficulty]float64{}

	for _, q := range quizzes {
		score := q.Score()
		scores = append(scores, score)

		attempts := q.Attempts()
		attemptsTotal += attempts
		prep = append(prep, preparationFor(attempts))

		minutes = append(minutes, effectiveMinutes(q))

		d := q.Difficulty
		if !d.IsValid() {
			d = record.DifficultyMedium
		}
		stats := snap.ByDifficulty[d]
		stats.Count++
		snap.ByDifficulty[d] = stats
		diffSums[d] += score
	}

	for d, stats := range snap.ByDifficulty {
		stats.AverageScore = diffSums[d] / float64(stats.Count)
		snap.ByDifficulty[d] = stats
	}

	snap.AverageScore = mean(scores)
	snap.Trend = DetectTrend(scores)
	snap.PreparationLevel = mean(prep)
	snap.AverageAttempts = float64(attemptsTotal) / float64(len(quizzes))
	snap.AverageTimeMinutes = mean(minutes)
	snap.TimeEfficiency = timeEfficiency(scores, minutes)
	snap.Consistency = consistency(scores)

	return snap
}

// preparationFor maps attempts used to a preparation score: first-try
// success reads as well prepared.
func preparationFor(attempts int) float64 {
	switch {
	case attempts <= 1:
		return prepSingleAttempt
	case attempts == 2:
		return prepTwoAttempts
	default:
		return prepManyAttempts
	}
}

// timeEfficiency scores points earned per minute spent, scaled so that a
// typical pace lands mid-range.
func timeEfficiency(scores, minutes []float64) float64 {
	perQuiz := make([]float64, len(scores))
	for i := range scores {
		perQuiz[i] = scores[i] / minutes[i] * 10
	}
	return record.ClampPercent(mean(perQuiz) * 2)
}

// consistency penalizes score spread; a single quiz gives the neutral 70.
func consistency(scores []float64) float64 {
	if len(scores) < 2 {
		return consistencyFallback
	}
	v := 100 - consistencyPenalty*stddev(scores)
	if v < 0 {
		return 0
	}
	return v
}

func effectiveMinutes(q record.QuizSession) float64 {
	if q.TimeSpentSeconds <= 0 {
		return defaultQuizMinutes
	}
	return q.TimeSpentSeconds / 60
}
