package dashboard

import (
	"time"

	"github.com/edumaster/analytics-engine/internal/domain/record"
	"github.com/edumaster/analytics-engine/pkg/timeutil"
)

// ReadingAnalytics summarizes slide-reading behavior over the window.
type ReadingAnalytics struct {
	TotalReadingHours     float64
	AverageReadingSpeed   float64 // words per minute, zero speeds excluded
	AverageComprehension  float64 // 0..100
	TotalSlidesRead       int     // unique (course, filename) pairs
	AverageEfficiency     float64 // 0..100
	ReadingStreakDays     int
	TotalSessions         int
	AverageSessionMinutes float64
}

// BuildReadingAnalytics summarizes reading sessions. Sessions with a zero
// reading speed are excluded from the speed average only.
func BuildReadingAnalytics(sessions []record.ReadingSession, now time.Time) ReadingAnalytics {
	if len(sessions) == 0 {
		return ReadingAnalytics{}
	}

	var totalSeconds, speedSum, comprehensionSum, efficiencySum float64
	speedCount := 0
	type slide struct {
		course   record.CourseID
		filename string
	}
	slides := map[slide]bool{}
	times := make([]time.Time, 0, len(sessions))

	for _, s := range sessions {
		totalSeconds += s.ActiveReadingSeconds
		comprehensionSum += s.Comprehension
		efficiencySum += s.EfficiencyScore()
		times = append(times, s.StartedAt)
		slides[slide{course: s.CourseID, filename: s.Filename}] = true

		if s.SpeedWPM > 0 {
			speedSum += s.SpeedWPM
			speedCount++
		}
	}

	n := float64(len(sessions))
	avgSpeed := 0.0
	if speedCount > 0 {
		avgSpeed = speedSum / float64(speedCount)
	}

	return ReadingAnalytics{
		TotalReadingHours:     totalSeconds / 3600,
		AverageReadingSpeed:   avgSpeed,
		AverageComprehension:  comprehensionSum / n,
		TotalSlidesRead:       len(slides),
		AverageEfficiency:     efficiencySum / n,
		ReadingStreakDays:     timeutil.ConsecutiveDays(times, now),
		TotalSessions:         len(sessions),
		AverageSessionMinutes: totalSeconds / n / 60,
	}
}
