// Package insight fuses the per-source metric snapshots into cross-cutting
// behavioral insights. Fusion is a pure function; all weights and thresholds
// are named constants.
package insight

import (
	"github.com/edumaster/analytics-engine/internal/domain/metrics"
)

// Fusion weights and thresholds.
const (
	weeksPerWindow = 4 // a 30-day window approximates four weeks

	completionWeight  = 0.6 // activity completion vs quiz preparation
	preparationWeight = 0.4

	lowCompletionThreshold  = 70
	lowCompletionIndicator  = 40
	lowPreparationThreshold = 60
	lowPreparationIndicator = 35
	lowAdherenceThreshold   = 60
	lowAdherenceIndicator   = 30
	baselineProcrastination = 20

	attemptCeiling    = 3
	helpSeekingFactor = 50

	quizConsistencyWeight     = 0.4
	activityConsistencyWeight = 0.4
	planningConsistencyWeight = 0.2
)

// BehavioralInsights are the fused cross-source metrics.
type BehavioralInsights struct {
	WeeklyStudyHours      float64
	ScheduleAdherenceRate float64 // 0..100
	TaskCompletionRate    float64 // 0..100
	ProcrastinationScore  float64 // 0..100, higher is worse
	FocusEfficiency       float64 // 0..100
	HelpSeekingScore      float64 // 0..100
	ConsistencyScore      float64 // 0..100
	PerformanceTrend      metrics.Direction
	StudyPatterns         []string
	Strengths             []string
	ImprovementAreas      []string
}

// Fuse combines the three snapshots into behavioral insights.
func Fuse(activity metrics.ActivitySnapshot, quiz metrics.QuizSnapshot, schedule metrics.ScheduleSnapshot) BehavioralInsights {
	weeklyHours := float64(activity.TotalActivities) * activity.AverageDuration / 60 / weeksPerWindow

	taskCompletion := activity.CompletionRate*completionWeight +
		quiz.PreparationLevel*preparationWeight

	return BehavioralInsights{
		WeeklyStudyHours:      weeklyHours,
		ScheduleAdherenceRate: schedule.AdherenceRate,
		TaskCompletionRate:    taskCompletion,
		ProcrastinationScore:  procrastination(activity.CompletionRate, quiz.PreparationLevel, schedule.AdherenceRate),
		FocusEfficiency:       (quiz.TimeEfficiency + activity.FocusScore) / 2,
		HelpSeekingScore:      helpSeeking(quiz.AverageAttempts),
		ConsistencyScore:      consistency(quiz, activity, schedule),
		PerformanceTrend:      quiz.Trend,
		StudyPatterns:         studyPatterns(activity),
		Strengths:             strengths(activity, quiz, schedule),
		ImprovementAreas:      improvementAreas(activity, quiz, schedule),
	}
}

// procrastination averages the triggered warning indicators, or stays at the
// baseline when none fire.
func procrastination(completion, preparation, adherence float64) float64 {
	var indicators []float64
	if completion < lowCompletionThreshold {
		indicators = append(indicators, lowCompletionIndicator)
	}
	if preparation < lowPreparationThreshold {
		indicators = append(indicators, lowPreparationIndicator)
	}
	if adherence < lowAdherenceThreshold {
		indicators = append(indicators, lowAdherenceIndicator)
	}
	if len(indicators) == 0 {
		return baselineProcrastination
	}
	sum := 0.0
	for _, v := range indicators {
		sum += v
	}
	return sum / float64(len(indicators))
}

// helpSeeking treats fewer quiz attempts as a sign the user resolves
// confusion before the quiz instead of brute-forcing retries.
func helpSeeking(avgAttempts float64) float64 {
	score := (attemptCeiling - avgAttempts) * helpSeekingFactor
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func consistency(quiz metrics.QuizSnapshot, activity metrics.ActivitySnapshot, schedule metrics.ScheduleSnapshot) float64 {
	return quiz.Consistency*quizConsistencyWeight +
		activity.CompletionRate*activityConsistencyWeight +
		schedule.PlanningConsistency*planningConsistencyWeight
}

func studyPatterns(activity metrics.ActivitySnapshot) []string {
	patterns := []string{}

	morning := activity.SchedulingPattern[metrics.Morning]
	afternoon := activity.SchedulingPattern[metrics.Afternoon]
	evening := activity.SchedulingPattern[metrics.Evening]
	if morning+afternoon+evening > 0 {
		switch {
		case morning > afternoon && morning > evening:
			patterns = append(patterns, "Morning learner")
		case evening > morning && evening > afternoon:
			patterns = append(patterns, "Evening learner")
		case afternoon > morning && afternoon > evening:
			patterns = append(patterns, "Afternoon focused")
		}
	}

	if activity.AverageDuration > 120 {
		patterns = append(patterns, "Long session preference")
	} else if activity.AverageDuration > 0 && activity.AverageDuration < 45 {
		patterns = append(patterns, "Short burst learner")
	}

	if activity.CompletionRate > 85 {
		patterns = append(patterns, "High achiever")
	} else if activity.CompletionRate > 70 {
		patterns = append(patterns, "Consistent performer")
	}

	return patterns
}

func strengths(activity metrics.ActivitySnapshot, quiz metrics.QuizSnapshot, schedule metrics.ScheduleSnapshot) []string {
	out := []string{}
	if activity.CompletionRate > 80 {
		out = append(out, "High task completion rate")
	}
	if quiz.AverageScore > 80 {
		out = append(out, "Strong academic performance")
	}
	if quiz.PreparationLevel > 75 {
		out = append(out, "Good preparation habits")
	}
	if schedule.AdherenceRate > 75 {
		out = append(out, "Good schedule adherence")
	}
	if quiz.Consistency > 75 {
		out = append(out, "Consistent performance")
	}
	return out
}

func improvementAreas(activity metrics.ActivitySnapshot, quiz metrics.QuizSnapshot, schedule metrics.ScheduleSnapshot) []string {
	out := []string{}
	if activity.CompletionRate < 60 {
		out = append(out, "Task completion needs work")
	}
	if quiz.PreparationLevel < 60 {
		out = append(out, "Quiz preparation could be better")
	}
	if schedule.AdherenceRate < 60 {
		out = append(out, "Schedule following needs improvement")
	}
	if quiz.Consistency < 60 {
		out = append(out, "Performance consistency needs work")
	}
	if quiz.Trend == metrics.TrendDeclining {
		out = append(out, "Performance trending downward")
	}
	return out
}
