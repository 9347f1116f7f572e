// Package prediction scores the user's likely academic outcome from fused
// behavioral insights and the quiz snapshot. Behavioral habits carry 60 of
// the 100 points and quiz performance the remaining 40.
package prediction

import (
	"math"

	"github.com/edumaster/analytics-engine/internal/domain/insight"
	"github.com/edumaster/analytics-engine/internal/domain/metrics"
	"github.com/edumaster/analytics-engine/internal/domain/record"
)

// Behavioral component weights (sum 60).
const (
	studyHoursTarget      = 30.0
	maxStudyPoints        = 15.0
	maxAdherencePoints    = 15.0
	maxCompletionPoints   = 12.0
	maxAntiProcrastPoints = 10.0
	maxFocusPoints        = 8.0

	behavioralCeiling = 60.0
)

// Quiz component weights (sum 40).
const (
	maxQuizAveragePoints = 15.0
	maxPreparationPoints = 10.0
	maxConsistencyPoints = 8.0
	maxDifficultyPoints  = 7.0

	quizCeiling = 40.0
)

// Difficulty handling blend and per-level fallbacks.
const (
	easyWeight   = 0.2
	mediumWeight = 0.5
	hardWeight   = 0.3

	easyFallback       = 80.0
	mediumFallback     = 70.0
	hardFallback       = 60.0
	difficultyFallback = 70.0
)

// Grade boundaries and confidence scaling.
const (
	gradeABound = 85.0
	gradeBBound = 75.0
	gradeCBound = 65.0

	baseConfidence     = 60
	confidencePerPoint = 2
	maxConfidence      = 95

	highQualityPoints   = 20
	mediumQualityPoints = 10
)

// Breakdown expresses each component group as a percentage of its ceiling.
type Breakdown struct {
	Behavioral      float64
	QuizPerformance float64
}

// Result is the scored prediction.
type Result struct {
	PerformancePercentage float64 // 0..100, rounded to a whole point
	GPA                   float64 // 0..4, two decimals
	Grade                 string  // A/B/C/D
	Confidence            float64 // data-volume proxy, not a statistical interval
	BehavioralScore       float64 // 0..60
	QuizScore             float64 // 0..40
	Breakdown             Breakdown
	Trend                 metrics.Direction
	DataQuality           string // high/medium/low
}

// Predict scores the user. Data volume across all three sources drives the
// confidence and data-quality labels.
func Predict(ins insight.BehavioralInsights, quiz metrics.QuizSnapshot, activity metrics.ActivitySnapshot, schedule metrics.ScheduleSnapshot) Result {
	studyPoints := ins.WeeklyStudyHours / studyHoursTarget * maxStudyPoints
	if studyPoints > maxStudyPoints {
		studyPoints = maxStudyPoints
	}
	behavioral := studyPoints +
		ins.ScheduleAdherenceRate/100*maxAdherencePoints +
		ins.TaskCompletionRate/100*maxCompletionPoints +
		(100-ins.ProcrastinationScore)/100*maxAntiProcrastPoints +
		ins.FocusEfficiency/100*maxFocusPoints

	quizPoints := quiz.AverageScore/100*maxQuizAveragePoints +
		quiz.PreparationLevel/100*maxPreparationPoints +
		quiz.Consistency/100*maxConsistencyPoints +
		difficultyScore(quiz)/100*maxDifficultyPoints

	total := behavioral + quizPoints

	dataPoints := quiz.TotalQuizzes + activity.TotalActivities + schedule.TotalSchedules
	confidence := float64(baseConfidence + confidencePerPoint*dataPoints)
	if confidence > maxConfidence {
		confidence = maxConfidence
	}

	return Result{
		PerformancePercentage: math.Round(total),
		GPA:                   math.Round(total/100*4*100) / 100,
		Grade:                 gradeFor(total),
		Confidence:            confidence,
		BehavioralScore:       math.Round(behavioral),
		QuizScore:             math.Round(quizPoints),
		Breakdown: Breakdown{
			Behavioral:      math.Round(behavioral / behavioralCeiling * 100),
			QuizPerformance: math.Round(quizPoints / quizCeiling * 100),
		},
		Trend:       ins.PerformanceTrend,
		DataQuality: dataQuality(dataPoints),
	}
}

// difficultyScore blends per-difficulty averages, substituting level
// fallbacks for levels the user never attempted.
func difficultyScore(quiz metrics.QuizSnapshot) float64 {
	if len(quiz.ByDifficulty) == 0 {
		return difficultyFallback
	}

	score := levelScore(quiz, record.DifficultyEasy, easyFallback)*easyWeight +
		levelScore(quiz, record.DifficultyMedium, mediumFallback)*mediumWeight +
		levelScore(quiz, record.DifficultyHard, hardFallback)*hardWeight
	if score > 100 {
		return 100
	}
	return score
}

func levelScore(quiz metrics.QuizSnapshot, level record.Difficulty, fallback float64) float64 {
	stats, ok := quiz.ByDifficulty[level]
	if !ok || stats.Count == 0 {
		return fallback
	}
	return stats.AverageScore
}

func gradeFor(total float64) string {
	switch {
	case total >= gradeABound:
		return "A"
	case total >= gradeBBound:
		return "B"
	case total >= gradeCBound:
		return "C"
	default:
		return "D"
	}
}

func dataQuality(points int) string {
	switch {
	case points > highQualityPoints:
		return "high"
	case points > mediumQualityPoints:
		return "medium"
	default:
		return "low"
	}
}
