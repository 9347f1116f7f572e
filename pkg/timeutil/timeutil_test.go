package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 30, 0, 0, time.UTC)
}

func TestStartOfWeek(t *testing.T) {
	// Wednesday 2025-06-18 belongs to the week of Monday 2025-06-16.
	wed := date(2025, time.June, 18, 15)
	assert.Equal(t, time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC), StartOfWeek(wed))

	// Sunday rolls back to the previous Monday, not forward.
	sun := date(2025, time.June, 22, 9)
	assert.Equal(t, time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC), StartOfWeek(sun))

	mon := date(2025, time.June, 16, 0)
	assert.Equal(t, time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC), StartOfWeek(mon))
}

func TestSameDay(t *testing.T) {
	assert.True(t, SameDay(date(2025, time.June, 18, 1), date(2025, time.June, 18, 23)))
	assert.False(t, SameDay(date(2025, time.June, 18, 23), date(2025, time.June, 19, 0)))
}

func TestUniqueDays(t *testing.T) {
	days := UniqueDays([]time.Time{
		date(2025, time.June, 18, 9),
		date(2025, time.June, 18, 21),
		date(2025, time.June, 16, 12),
		date(2025, time.June, 17, 8),
	})

	assert.Len(t, days, 3)
	// Sorted most recent first.
	assert.Equal(t, 18, days[0].Day())
	assert.Equal(t, 17, days[1].Day())
	assert.Equal(t, 16, days[2].Day())
}

func TestConsecutiveDays(t *testing.T) {
	today := date(2025, time.June, 18, 20)

	times := []time.Time{
		date(2025, time.June, 18, 9),
		date(2025, time.June, 17, 9),
		date(2025, time.June, 16, 9),
		date(2025, time.June, 14, 9), // gap on the 15th breaks the run
	}
	assert.Equal(t, 3, ConsecutiveDays(times, today))
}

func TestConsecutiveDaysRequiresActivityToday(t *testing.T) {
	today := date(2025, time.June, 18, 20)

	times := []time.Time{
		date(2025, time.June, 17, 9),
		date(2025, time.June, 16, 9),
	}
	assert.Equal(t, 0, ConsecutiveDays(times, today))
	assert.Equal(t, 0, ConsecutiveDays(nil, today))
}
