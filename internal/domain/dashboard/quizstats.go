package dashboard

import (
	"github.com/edumaster/analytics-engine/internal/domain/record"
)

// Performance level bands for the quiz summary.
const (
	levelExcellent = 90
	levelVeryGood  = 80
	levelGood      = 70
	levelFair      = 60
)

// QuizStats is the all-up quiz summary.
type QuizStats struct {
	TotalQuizzes       int
	TotalQuestions     int
	TotalCorrect       int
	TotalIncorrect     int
	OverallAccuracy    float64 // 0..100
	AverageScore       float64 // 0..100
	HighestScore       float64
	LowestScore        float64
	TotalTimeSeconds   float64
	TotalTimeHours     float64
	AvgTimePerQuestion float64 // seconds
	PerformanceLevel   string
}

// BuildQuizStats totals the user's quizzes. An empty input yields zeroed
// stats with the "No data" level.
func BuildQuizStats(quizzes []record.QuizSession) QuizStats {
	if len(quizzes) == 0 {
		return QuizStats{PerformanceLevel: PerformanceLevel(0)}
	}

	stats := QuizStats{
		TotalQuizzes: len(quizzes),
		LowestScore:  100,
	}
	scoreSum := 0.0

	for _, q := range quizzes {
		stats.TotalQuestions += q.TotalQuestions
		stats.TotalCorrect += q.CorrectAnswers
		stats.TotalTimeSeconds += q.TimeSpentSeconds

		score := q.Score()
		scoreSum += score
		if score > stats.HighestScore {
			stats.HighestScore = score
		}
		if score < stats.LowestScore {
			stats.LowestScore = score
		}
	}

	stats.TotalIncorrect = stats.TotalQuestions - stats.TotalCorrect
	stats.AverageScore = scoreSum / float64(len(quizzes))
	stats.TotalTimeHours = stats.TotalTimeSeconds / 3600
	if stats.TotalQuestions > 0 {
		stats.OverallAccuracy = float64(stats.TotalCorrect) / float64(stats.TotalQuestions) * 100
		stats.AvgTimePerQuestion = stats.TotalTimeSeconds / float64(stats.TotalQuestions)
	}
	stats.PerformanceLevel = PerformanceLevel(stats.AverageScore)

	return stats
}

// PerformanceLevel labels an average score.
func PerformanceLevel(avg float64) string {
	switch {
	case avg >= levelExcellent:
		return "Excellent"
	case avg >= levelVeryGood:
		return "Very Good"
	case avg >= levelGood:
		return "Good"
	case avg >= levelFair:
		return "Fair"
	case avg > 0:
		return "Needs Improvement"
	default:
		return "No data"
	}
}
