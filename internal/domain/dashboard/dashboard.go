// Package dashboard builds the unified dashboard projections from the
// merged session records. Builders are pure functions; the "now" used for
// windows and streaks is always passed in.
package dashboard

import (
	"fmt"
	"sort"
	"time"

	"github.com/edumaster/analytics-engine/internal/domain/metrics"
	"github.com/edumaster/analytics-engine/internal/domain/record"
	"github.com/edumaster/analytics-engine/pkg/timeutil"
)

// Goal targets.
const (
	WeeklyGoalHours       = 10.0
	MonthlyGoalHours      = 40.0
	ConsistencyTargetDays = 5
)

const (
	defaultSatisfaction = 5
	minSessionsForTrend = 4
	recentWeeksCompared = 2
)

// Overview is the top-line dashboard card.
type Overview struct {
	TotalStudyHours    float64
	SessionsThisWeek   int
	AverageEfficiency  float64
	StudyStreakDays    int
	WeeklyGoalProgress float64 // 0..100 against WeeklyGoalHours
}

// BuildOverview summarizes all session kinds over the window.
func BuildOverview(recs []record.ActivityRecord, now time.Time) Overview {
	if len(recs) == 0 {
		return Overview{}
	}

	weekStart := now.AddDate(0, 0, -7)

	var totalSeconds, weekSeconds, efficiencySum float64
	weekSessions := 0
	times := make([]time.Time, 0, len(recs))

	for _, r := range recs {
		seconds := r.ActiveDuration().Seconds()
		totalSeconds += seconds
		efficiencySum += r.EfficiencyScore()
		times = append(times, r.OccurredAt())

		if !r.OccurredAt().Before(weekStart) {
			weekSessions++
			weekSeconds += seconds
		}
	}

	progress := weekSeconds / 3600 / WeeklyGoalHours * 100
	if progress > 100 {
		progress = 100
	}

	return Overview{
		TotalStudyHours:    totalSeconds / 3600,
		SessionsThisWeek:   weekSessions,
		AverageEfficiency:  efficiencySum / float64(len(recs)),
		StudyStreakDays:    timeutil.ConsecutiveDays(times, now),
		WeeklyGoalProgress: progress,
	}
}

// KindBreakdown aggregates one session kind.
type KindBreakdown struct {
	SessionCount      int
	TotalTimeMinutes  float64
	AverageEfficiency float64
	PercentageOfTotal float64
}

// BuildBreakdown splits time and efficiency by session kind. All three kinds
// are always present, zero-valued when unused.
func BuildBreakdown(recs []record.ActivityRecord) map[record.Kind]KindBreakdown {
	breakdown := map[record.Kind]KindBreakdown{
		record.KindReading: {},
		record.KindStudy:   {},
		record.KindQuiz:    {},
	}
	efficiencySums := map[record.Kind]float64{}

	for _, r := range recs {
		b := breakdown[r.Kind()]
		b.SessionCount++
		b.TotalTimeMinutes += r.ActiveDuration().Minutes()
		breakdown[r.Kind()] = b
		efficiencySums[r.Kind()] += r.EfficiencyScore()
	}

	total := 0.0
	for _, b := range breakdown {
		total += b.TotalTimeMinutes
	}
	for kind, b := range breakdown {
		if b.SessionCount > 0 {
			b.AverageEfficiency = efficiencySums[kind] / float64(b.SessionCount)
		}
		if total > 0 {
			b.PercentageOfTotal = b.TotalTimeMinutes / total * 100
		}
		breakdown[kind] = b
	}
	return breakdown
}

// ProductivityInsights highlights when the user works best.
type ProductivityInsights struct {
	BestHour          string // "HH:00" or "N/A"
	EfficiencyTrend   metrics.Direction
	MostProductiveDay string // weekday name or "N/A"
}

// BuildProductivity finds the best hour and weekday by average efficiency and
// classifies the efficiency trend. Records must be ordered by time ascending;
// fewer than four sessions cannot support a trend.
func BuildProductivity(recs []record.ActivityRecord) ProductivityInsights {
	if len(recs) == 0 {
		return ProductivityInsights{
			BestHour:          "N/A",
			EfficiencyTrend:   metrics.TrendStable,
			MostProductiveDay: "N/A",
		}
	}

	hourSums := map[int]float64{}
	hourCounts := map[int]int{}
	daySums := map[time.Weekday]float64{}
	dayCounts := map[time.Weekday]int{}
	efficiencies := make([]float64, 0, len(recs))

	for _, r := range recs {
		e := r.EfficiencyScore()
		hour := r.OccurredAt().Hour()
		day := r.OccurredAt().Weekday()
		hourSums[hour] += e
		hourCounts[hour]++
		daySums[day] += e
		dayCounts[day]++
		efficiencies = append(efficiencies, e)
	}

	trend := metrics.TrendInsufficientData
	if len(recs) >= minSessionsForTrend {
		trend = metrics.DetectTrend(efficiencies)
	}

	return ProductivityInsights{
		BestHour:          bestHour(hourSums, hourCounts),
		EfficiencyTrend:   trend,
		MostProductiveDay: bestDay(daySums, dayCounts),
	}
}

// bestHour picks the hour with the highest average efficiency, lowest hour
// winning ties for determinism.
func bestHour(sums map[int]float64, counts map[int]int) string {
	best := -1
	bestAvg := -1.0
	for hour := 0; hour < 24; hour++ {
		if counts[hour] == 0 {
			continue
		}
		avg := sums[hour] / float64(counts[hour])
		if avg > bestAvg {
			bestAvg = avg
			best = hour
		}
	}
	if best < 0 {
		return "N/A"
	}
	return fmt.Sprintf("%02d:00", best)
}

func bestDay(sums map[time.Weekday]float64, counts map[time.Weekday]int) string {
	best := time.Weekday(-1)
	bestAvg := -1.0
	for day := time.Sunday; day <= time.Saturday; day++ {
		if counts[day] == 0 {
			continue
		}
		avg := sums[day] / float64(counts[day])
		if avg > bestAvg {
			bestAvg = avg
			best = day
		}
	}
	if best < 0 {
		return "N/A"
	}
	return best.String()
}

// DailyRollup is one day's time by kind.
type DailyRollup struct {
	Date             string // "2006-01-02"
	TotalTimeMinutes float64
	ByKind           map[record.Kind]float64
}

// BuildDailyDistribution groups time per calendar day, sorted ascending.
func BuildDailyDistribution(recs []record.ActivityRecord) []DailyRollup {
	byDate := map[string]*DailyRollup{}
	for _, r := range recs {
		key := r.OccurredAt().Format("2006-01-02")
		roll, ok := byDate[key]
		if !ok {
			roll = &DailyRollup{
				Date: key,
				ByKind: map[record.Kind]float64{
					record.KindReading: 0,
					record.KindStudy:   0,
					record.KindQuiz:    0,
				},
			}
			byDate[key] = roll
		}
		minutes := r.ActiveDuration().Minutes()
		roll.TotalTimeMinutes += minutes
		roll.ByKind[r.Kind()] += minutes
	}

	rollups := make([]DailyRollup, 0, len(byDate))
	for _, roll := range byDate {
		rollups = append(rollups, *roll)
	}
	sort.Slice(rollups, func(i, j int) bool { return rollups[i].Date < rollups[j].Date })
	return rollups
}

// WeekRollup is one calendar week's totals.
type WeekRollup struct {
	WeekStart         string // Monday, "2006-01-02"
	TotalTimeMinutes  float64
	SessionCount      int
	AverageEfficiency float64
}

// WeeklyTrends is the weekly rollup series plus its overall direction.
type WeeklyTrends struct {
	Weeks     []WeekRollup
	Direction metrics.Direction
}

// BuildWeeklyTrends groups sessions by Monday-start week and compares the
// last two weeks' efficiency against the earlier ones.
func BuildWeeklyTrends(recs []record.ActivityRecord) WeeklyTrends {
	if len(recs) == 0 {
		return WeeklyTrends{Weeks: []WeekRollup{}, Direction: metrics.TrendStable}
	}

	type weekAgg struct {
		rollup        WeekRollup
		efficiencySum float64
	}
	byWeek := map[string]*weekAgg{}

	for _, r := range recs {
		key := timeutil.StartOfWeek(r.OccurredAt()).Format("2006-01-02")
		agg, ok := byWeek[key]
		if !ok {
			agg = &weekAgg{rollup: WeekRollup{WeekStart: key}}
			byWeek[key] = agg
		}
		agg.rollup.TotalTimeMinutes += r.ActiveDuration().Minutes()
		agg.rollup.SessionCount++
		agg.efficiencySum += r.EfficiencyScore()
	}

	weeks := make([]WeekRollup, 0, len(byWeek))
	for _, agg := range byWeek {
		agg.rollup.AverageEfficiency = agg.efficiencySum / float64(agg.rollup.SessionCount)
		weeks = append(weeks, agg.rollup)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].WeekStart < weeks[j].WeekStart })

	return WeeklyTrends{Weeks: weeks, Direction: weeklyDirection(weeks)}
}

func weeklyDirection(weeks []WeekRollup) metrics.Direction {
	if len(weeks) < recentWeeksCompared {
		return metrics.TrendStable
	}

	recentSum := 0.0
	for _, w := range weeks[len(weeks)-recentWeeksCompared:] {
		recentSum += w.AverageEfficiency
	}
	recentAvg := recentSum / recentWeeksCompared

	olderSum := 0.0
	for _, w := range weeks[:len(weeks)-recentWeeksCompared] {
		olderSum += w.AverageEfficiency
	}
	olderCount := len(weeks) - recentWeeksCompared
	if olderCount < 1 {
		olderCount = 1
	}
	olderAvg := olderSum / float64(olderCount)

	switch {
	case recentAvg > olderAvg+5:
		return metrics.TrendImproving
	case recentAvg < olderAvg-5:
		return metrics.TrendDeclining
	default:
		return metrics.TrendStable
	}
}

// CourseStats is the per-course performance rollup.
type CourseStats struct {
	CourseID            record.CourseID
	CourseName          string
	TotalTimeMinutes    float64
	SessionCount        int
	AverageEfficiency   float64
	AverageSatisfaction float64
	LastStudied         time.Time
}

// BuildCoursePerformance rolls sessions up per course, most studied first.
func BuildCoursePerformance(recs []record.ActivityRecord) []CourseStats {
	type courseAgg struct {
		stats           CourseStats
		efficiencySum   float64
		satisfactionSum float64
	}
	byCourse := map[record.CourseID]*courseAgg{}

	for _, r := range recs {
		agg, ok := byCourse[r.Course()]
		if !ok {
			agg = &courseAgg{stats: CourseStats{
				CourseID:   r.Course(),
				CourseName: r.CourseTitle(),
			}}
			byCourse[r.Course()] = agg
		}
		agg.stats.TotalTimeMinutes += r.ActiveDuration().Minutes()
		agg.stats.SessionCount++
		agg.efficiencySum += r.EfficiencyScore()
		agg.satisfactionSum += satisfactionOf(r)
		if r.OccurredAt().After(agg.stats.LastStudied) {
			agg.stats.LastStudied = r.OccurredAt()
		}
	}

	courses := make([]CourseStats, 0, len(byCourse))
	for _, agg := range byCourse {
		n := float64(agg.stats.SessionCount)
		agg.stats.AverageEfficiency = agg.efficiencySum / n
		agg.stats.AverageSatisfaction = agg.satisfactionSum / n
		courses = append(courses, agg.stats)
	}
	sort.Slice(courses, func(i, j int) bool {
		if courses[i].TotalTimeMinutes != courses[j].TotalTimeMinutes {
			return courses[i].TotalTimeMinutes > courses[j].TotalTimeMinutes
		}
		return courses[i].CourseID < courses[j].CourseID
	})
	return courses
}

// satisfactionOf reads the reported satisfaction where the kind carries one,
// defaulting to a neutral 5 elsewhere.
func satisfactionOf(r record.ActivityRecord) float64 {
	if s, ok := r.(record.StudySession); ok && s.Satisfaction > 0 {
		return float64(s.Satisfaction)
	}
	return defaultSatisfaction
}

// GoalProgress is progress toward one time-based goal.
type GoalProgress struct {
	TargetHours        float64
	CurrentHours       float64
	ProgressPercentage float64 // 0..100
}

// ConsistencyProgress is progress toward the days-per-week goal.
type ConsistencyProgress struct {
	TargetDaysPerWeek   int
	CurrentDaysThisWeek int
	ProgressPercentage  float64 // 0..100
}

// GoalsProgress bundles the three standing goals.
type GoalsProgress struct {
	Weekly      GoalProgress
	Monthly     GoalProgress
	Consistency ConsistencyProgress
}

// BuildGoals measures the window's sessions against the standing goals.
func BuildGoals(recs []record.ActivityRecord, now time.Time) GoalsProgress {
	weekStart := now.AddDate(0, 0, -7)
	monthStart := now.AddDate(0, 0, -30)

	var weekHours, monthHours float64
	weekDays := map[time.Time]bool{}

	for _, r := range recs {
		hours := r.ActiveDuration().Hours()
		if !r.OccurredAt().Before(monthStart) {
			monthHours += hours
		}
		if !r.OccurredAt().Before(weekStart) {
			weekHours += hours
			weekDays[timeutil.StartOfDay(r.OccurredAt())] = true
		}
	}

	consistency := float64(len(weekDays)) / ConsistencyTargetDays * 100
	if consistency > 100 {
		consistency = 100
	}

	return GoalsProgress{
		Weekly: GoalProgress{
			TargetHours:        WeeklyGoalHours,
			CurrentHours:       weekHours,
			ProgressPercentage: cappedShare(weekHours, WeeklyGoalHours),
		},
		Monthly: GoalProgress{
			TargetHours:        MonthlyGoalHours,
			CurrentHours:       monthHours,
			ProgressPercentage: cappedShare(monthHours, MonthlyGoalHours),
		},
		Consistency: ConsistencyProgress{
			TargetDaysPerWeek:   ConsistencyTargetDays,
			CurrentDaysThisWeek: len(weekDays),
			ProgressPercentage:  consistency,
		},
	}
}

func cappedShare(value, target float64) float64 {
	share := value / target * 100
	if share > 100 {
		return 100
	}
	return share
}
