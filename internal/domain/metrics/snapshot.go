// Package metrics extracts per-source metric snapshots from raw activity
// records. Each extractor is a pure function from records to a snapshot;
// empty input produces a documented default snapshot rather than an error.
package metrics

import (
	"github.com/edumaster/analytics-engine/internal/domain/record"
)

// DayPart buckets a planned start time into a part of the day.
type DayPart string

const (
	Morning   DayPart = "morning"   // before 12:00
	Afternoon DayPart = "afternoon" // 12:00 to 16:59
	Evening   DayPart = "evening"   // 17:00 onward
)

// PriorityStats counts activities of one priority and how many completed.
type PriorityStats struct {
	Total     int
	Completed int
}

// ActivitySnapshot summarizes the user's scheduled activities in the window.
type ActivitySnapshot struct {
	HasData              bool
	TotalActivities      int
	CompletedActivities  int
	CompletionRate       float64 // 0..100
	AverageDuration      float64 // minutes, study-category activities only
	CategoryDistribution map[string]int
	PriorityBreakdown    map[record.Priority]PriorityStats
	SchedulingPattern    map[DayPart]int
	FocusScore           float64 // 0..100
}

// DefaultActivitySnapshot is the snapshot for a window with no scheduled
// activities. Focus defaults to a neutral 70.
func DefaultActivitySnapshot() ActivitySnapshot {
	return ActivitySnapshot{
		CategoryDistribution: map[string]int{},
		PriorityBreakdown:    map[record.Priority]PriorityStats{},
		SchedulingPattern:    map[DayPart]int{},
		FocusScore:           noStudyFocusScore,
	}
}

// DifficultyStats aggregates quiz scores at one difficulty level.
type DifficultyStats struct {
	Count        int
	AverageScore float64
}

// QuizSnapshot summarizes the user's quiz attempts in the window.
type QuizSnapshot struct {
	HasData            bool
	TotalQuizzes       int
	AverageScore       float64 // 0..100
	Trend              Direction
	PreparationLevel   float64 // 0..100, from attempts used
	AverageAttempts    float64
	ByDifficulty       map[record.Difficulty]DifficultyStats
	AverageTimeMinutes float64
	TimeEfficiency     float64 // 0..100
	Consistency        float64 // 0..100
}

// DefaultQuizSnapshot is the snapshot for a window with no quizzes. Time
// efficiency defaults to a neutral 70 and attempts to 1.5 so downstream
// fusion still produces sensible scores.
func DefaultQuizSnapshot() QuizSnapshot {
	return QuizSnapshot{
		Trend:           TrendNoData,
		AverageAttempts: DefaultAverageAttempts,
		ByDifficulty:    map[record.Difficulty]DifficultyStats{},
		TimeEfficiency:  timeEfficiencyFallback,
	}
}

// ScheduleSnapshot summarizes the user's study plans in the window.
type ScheduleSnapshot struct {
	HasData                bool
	TotalSchedules         int
	PlannedSessions        int
	CompletedActivities    int
	UpdatedSchedules       int
	AdherenceRate          float64 // 0..100
	PlanningConsistency    float64 // 10..100
	AvgSessionsPerSchedule float64
}

// DefaultScheduleSnapshot is the snapshot for a window with no schedules.
// Adherence and planning consistency both default to a neutral 50.
func DefaultScheduleSnapshot() ScheduleSnapshot {
	return ScheduleSnapshot{
		AdherenceRate:       neutralAdherence,
		PlanningConsistency: neutralPlanning,
	}
}
