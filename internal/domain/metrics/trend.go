package metrics

import "math"

// Direction classifies how a metric series is moving.
type Direction string

const (
	TrendImproving Direction = "improving"
	TrendDeclining Direction = "declining"
	TrendStable    Direction = "stable"
	TrendNoData    Direction = "no_data"

	// TrendInsufficientData is used by callers that require a minimum series
	// length before trusting the detector (e.g. the dashboard efficiency
	// trend needs 4 sessions).
	TrendInsufficientData Direction = "insufficient_data"
)

const (
	recentWindowSize = 5
	fullSplitMinimum = 10
	trendDelta       = 5.0
)

// DetectTrend classifies a chronologically ordered series. The recent slice
// is the last 5 values (or all of them when fewer); the older slice is the
// remainder, or the first half when the series is shorter than 10. The
// comparison is strict: a difference of exactly trendDelta is stable.
func DetectTrend(values []float64) Direction {
	if len(values) == 0 {
		return TrendNoData
	}

	recent := values
	if len(values) >= recentWindowSize {
		recent = values[len(values)-recentWindowSize:]
	}

	var older []float64
	if len(values) >= fullSplitMinimum {
		older = values[:len(values)-recentWindowSize]
	} else {
		older = values[:len(values)/2]
	}

	recentAvg := mean(recent)
	olderAvg := recentAvg
	if len(older) > 0 {
		olderAvg = mean(older)
	}

	switch {
	case recentAvg > olderAvg+trendDelta:
		return TrendImproving
	case recentAvg < olderAvg-trendDelta:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stddev is the population standard deviation.
func stddev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}
