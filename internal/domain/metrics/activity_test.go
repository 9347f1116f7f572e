package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edumaster/analytics-engine/internal/domain/record"
)

func activity(category string, status record.ActivityStatus, minutes float64, startTime string, priority record.Priority) record.ScheduledActivity {
	return record.ScheduledActivity{
		UserID:          "u1",
		Category:        category,
		Status:          status,
		DurationMinutes: minutes,
		StartTime:       startTime,
		Priority:        priority,
	}
}

func TestExtractActivityEmpty(t *testing.T) {
	snap := ExtractActivity(nil)

	assert.False(t, snap.HasData)
	assert.Equal(t, 0, snap.TotalActivities)
	assert.Equal(t, 70.0, snap.FocusScore)
	assert.NotNil(t, snap.CategoryDistribution)
}

func TestExtractActivityCountsAndRates(t *testing.T) {
	snap := ExtractActivity([]record.ScheduledActivity{
		activity("study", record.StatusCompleted, 120, "09:00", record.PriorityHigh),
		activity("study", record.StatusScheduled, 60, "14:00", record.PriorityHigh),
		activity("review", record.StatusCompleted, 30, "19:00", record.PriorityLow),
		activity("meeting", record.StatusCompleted, 45, "10:00", record.PriorityMedium),
	})

	assert.True(t, snap.HasData)
	assert.Equal(t, 4, snap.TotalActivities)
	assert.Equal(t, 3, snap.CompletedActivities)
	assert.Equal(t, 75.0, snap.CompletionRate)

	// Average duration counts study-category work only: (120+60+30)/3.
	assert.InDelta(t, 70.0, snap.AverageDuration, 1e-9)

	assert.Equal(t, 2, snap.CategoryDistribution["study"])
	assert.Equal(t, 1, snap.CategoryDistribution["meeting"])

	assert.Equal(t, PriorityStats{Total: 2, Completed: 1}, snap.PriorityBreakdown[record.PriorityHigh])

	assert.Equal(t, 2, snap.SchedulingPattern[Morning])
	assert.Equal(t, 1, snap.SchedulingPattern[Afternoon])
	assert.Equal(t, 1, snap.SchedulingPattern[Evening])
}

func TestExtractActivityDurationDefault(t *testing.T) {
	snap := ExtractActivity([]record.ScheduledActivity{
		activity("study", record.StatusCompleted, 0, "09:00", record.PriorityMedium),
	})

	// Missing duration counts as 60 minutes.
	assert.InDelta(t, 60.0, snap.AverageDuration, 1e-9)
}

func TestFocusScoreNoStudyWork(t *testing.T) {
	snap := ExtractActivity([]record.ScheduledActivity{
		activity("meeting", record.StatusCompleted, 45, "10:00", record.PriorityMedium),
	})

	assert.Equal(t, 70.0, snap.FocusScore)
	assert.Equal(t, 0.0, snap.AverageDuration)
}

func TestFocusScoreLongSessionBonus(t *testing.T) {
	// Two of three study activities run over 90 minutes: completion 100
	// plus the bonus, clamped at 100.
	snap := ExtractActivity([]record.ScheduledActivity{
		activity("study", record.StatusCompleted, 120, "09:00", record.PriorityHigh),
		activity("study", record.StatusCompleted, 100, "09:00", record.PriorityHigh),
		activity("study", record.StatusCompleted, 30, "09:00", record.PriorityHigh),
	})
	assert.Equal(t, 100.0, snap.FocusScore)

	// Same shape but only partial completion: 2/3*100 + 10.
	snap = ExtractActivity([]record.ScheduledActivity{
		activity("study", record.StatusCompleted, 120, "09:00", record.PriorityHigh),
		activity("study", record.StatusCompleted, 100, "09:00", record.PriorityHigh),
		activity("study", record.StatusScheduled, 30, "09:00", record.PriorityHigh),
	})
	assert.InDelta(t, 76.666, snap.FocusScore, 0.01)
}

func TestDayPartBuckets(t *testing.T) {
	assert.Equal(t, Morning, dayPartOf(0))
	assert.Equal(t, Morning, dayPartOf(11))
	assert.Equal(t, Afternoon, dayPartOf(12))
	assert.Equal(t, Afternoon, dayPartOf(16))
	assert.Equal(t, Evening, dayPartOf(17))
	assert.Equal(t, Evening, dayPartOf(23))
}
