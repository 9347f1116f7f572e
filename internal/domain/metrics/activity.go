package metrics

import (
	"github.com/edumaster/analytics-engine/internal/domain/record"
)

const (
	defaultDurationMinutes = 60
	longSessionMinutes     = 90
	longSessionBonus       = 10
	noStudyFocusScore      = 70
)

// studyCategories are the activity categories that count as study work for
// duration and focus purposes.
var studyCategories = map[string]bool{
	"study":      true,
	"review":     true,
	"assignment": true,
}

// ExtractActivity builds the activity snapshot from scheduled activities.
func ExtractActivity(activities []record.ScheduledActivity) ActivitySnapshot {
	if len(activities) == 0 {
		return DefaultActivitySnapshot()
	}

	snap := ActivitySnapshot{
		HasData:              true,
		TotalActivities:      len(activities),
		CategoryDistribution: map[string]int{},
		PriorityBreakdown:    map[record.Priority]PriorityStats{},
		SchedulingPattern:    map[DayPart]int{},
	}

	var studyDurations []float64
	var study []record.ScheduledActivity

	for _, a := range activities {
		if a.IsCompleted() {
			snap.CompletedActivities++
		}

		snap.CategoryDistribution[a.Category]++
		snap.SchedulingPattern[dayPartOf(a.StartHour())]++

		stats := snap.PriorityBreakdown[a.Priority]
		stats.Total++
		if a.IsCompleted() {
			stats.Completed++
		}
		snap.PriorityBreakdown[a.Priority] = stats

		if studyCategories[a.Category] {
			study = append(study, a)
			studyDurations = append(studyDurations, effectiveDuration(a))
		}
	}

	snap.CompletionRate = record.ClampPercent(
		float64(snap.CompletedActivities) / float64(snap.TotalActivities) * 100)
	snap.AverageDuration = mean(studyDurations)
	snap.FocusScore = focusScore(study)

	return snap
}

// focusScore rates study focus from study-category activities: their
// completion rate, plus a bonus when most study sessions run long. 70 when
// the user scheduled no study work at all.
func focusScore(study []record.ScheduledActivity) float64 {
	if len(study) == 0 {
		return noStudyFocusScore
	}

	completed := 0
	long := 0
	for _, a := range study {
		if a.IsCompleted() {
			completed++
		}
		if effectiveDuration(a) > longSessionMinutes {
			long++
		}
	}

	score := float64(completed) / float64(len(study)) * 100
	if long > len(study)/2 {
		score += longSessionBonus
	}
	return record.ClampPercent(score)
}

func effectiveDuration(a record.ScheduledActivity) float64 {
	if a.DurationMinutes <= 0 {
		return defaultDurationMinutes
	}
	return a.DurationMinutes
}

func dayPartOf(hour int) DayPart {
	switch {
	case hour < 12:
		return Morning
	case hour < 17:
		return Afternoon
	default:
		return Evening
	}
}
