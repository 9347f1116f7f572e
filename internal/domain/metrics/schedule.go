package metrics

import (
	"sort"

	"github.com/edumaster/analytics-engine/internal/domain/record"
)

const (
	neutralAdherence = 50
	neutralPlanning  = 50
	planningFloor    = 10
	planningGapCap   = 90
	gapPenaltyPerDay = 10
)

// ExtractSchedule builds the schedule snapshot from study plans plus the
// window's scheduled activities (adherence compares completed activities
// against planned sessions).
func ExtractSchedule(schedules []record.Schedule, activities []record.ScheduledActivity) ScheduleSnapshot {
	if len(schedules) == 0 {
		return DefaultScheduleSnapshot()
	}

	snap := ScheduleSnapshot{
		HasData:        true,
		TotalSchedules: len(schedules),
	}

	for _, s := range schedules {
		snap.PlannedSessions += len(s.Sessions)
		if s.WasUpdated() {
			snap.UpdatedSchedules++
		}
	}
	for _, a := range activities {
		if a.IsCompleted() {
			snap.CompletedActivities++
		}
	}

	snap.AdherenceRate = adherence(snap.CompletedActivities, snap.PlannedSessions)
	snap.PlanningConsistency = planningConsistency(schedules)
	snap.AvgSessionsPerSchedule = float64(snap.PlannedSessions) / float64(len(schedules))

	return snap
}

// adherence compares completed activities against planned sessions. With
// nothing planned there is nothing to adhere to, so it stays neutral.
func adherence(completed, planned int) float64 {
	if planned == 0 {
		return neutralAdherence
	}
	rate := float64(completed) / float64(planned) * 100
	if rate > 100 {
		return 100
	}
	return rate
}

// planningConsistency rewards regular schedule creation: the average gap in
// whole days between consecutive schedules is penalized, floored so that
// even sporadic planners keep a nonzero score.
func planningConsistency(schedules []record.Schedule) float64 {
	if len(schedules) < 2 {
		return neutralPlanning
	}

	created := make([]record.Schedule, len(schedules))
	copy(created, schedules)
	sort.Slice(created, func(i, j int) bool {
		return created[i].CreatedAt.Before(created[j].CreatedAt)
	})

	gapSum := 0
	for i := 1; i < len(created); i++ {
		gapSum += int(created[i].CreatedAt.Sub(created[i-1].CreatedAt).Hours() / 24)
	}
	avgGap := float64(gapSum) / float64(len(created)-1)

	penalty := avgGap * gapPenaltyPerDay
	if penalty > planningGapCap {
		penalty = planningGapCap
	}
	score := 100 - penalty
	if score < planningFloor {
		return planningFloor
	}
	return score
}
