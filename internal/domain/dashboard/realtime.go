package dashboard

import (
	"time"

	"github.com/edumaster/analytics-engine/internal/domain/record"
)

// LiveSession is a currently running session reported by the presence
// tracker. The tracker is written by the ingestion endpoints; the engine
// only reads it.
type LiveSession struct {
	SessionID       string
	Kind            record.Kind
	CourseName      string
	Filename        string
	StartedAt       time.Time
	LastActivity    time.Time
	DurationMinutes float64
	ReadingProgress float64 // 0..100, reading sessions only
	Efficiency      float64 // 0..100
}

// TodayTotals is today's time by session kind.
type TodayTotals struct {
	TotalMinutes float64
	ByKind       map[record.Kind]float64
}

// RealTimeStatus combines live presence with today's recorded totals.
type RealTimeStatus struct {
	HasActiveSession   bool
	ActiveSessionCount int
	CurrentSessions    []LiveSession
	Today              TodayTotals
}

// BuildRealTimeStatus merges tracker sessions with today's records.
func BuildRealTimeStatus(live []LiveSession, today []record.ActivityRecord) RealTimeStatus {
	totals := TodayTotals{
		ByKind: map[record.Kind]float64{
			record.KindReading: 0,
			record.KindStudy:   0,
			record.KindQuiz:    0,
		},
	}
	for _, r := range today {
		minutes := r.ActiveDuration().Minutes()
		totals.TotalMinutes += minutes
		totals.ByKind[r.Kind()] += minutes
	}

	if live == nil {
		live = []LiveSession{}
	}
	return RealTimeStatus{
		HasActiveSession:   len(live) > 0,
		ActiveSessionCount: len(live),
		CurrentSessions:    live,
		Today:              totals,
	}
}
