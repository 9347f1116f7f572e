package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/edumaster/analytics-engine/internal/domain/record"
)

func TestBuildRealTimeStatusNoActivity(t *testing.T) {
	status := BuildRealTimeStatus(nil, nil)

	assert.False(t, status.HasActiveSession)
	assert.Equal(t, 0, status.ActiveSessionCount)
	// Nil tracker input still serializes as an empty list, not null.
	assert.NotNil(t, status.CurrentSessions)
	assert.Empty(t, status.CurrentSessions)
	assert.Equal(t, 0.0, status.Today.TotalMinutes)
	assert.Len(t, status.Today.ByKind, 3)
}

func TestBuildRealTimeStatus(t *testing.T) {
	live := []LiveSession{
		{
			SessionID:       "s1",
			Kind:            record.KindReading,
			CourseName:      "Databases",
			DurationMinutes: 12,
			LastActivity:    now,
		},
	}
	today := []record.ActivityRecord{
		study(now.Add(-3*time.Hour), 60, 80),
		reading(now.Add(-time.Hour), 1800, 90),
	}

	status := BuildRealTimeStatus(live, today)

	assert.True(t, status.HasActiveSession)
	assert.Equal(t, 1, status.ActiveSessionCount)
	assert.Equal(t, "s1", status.CurrentSessions[0].SessionID)
	assert.InDelta(t, 90.0, status.Today.TotalMinutes, 1e-9)
	assert.InDelta(t, 60.0, status.Today.ByKind[record.KindStudy], 1e-9)
	assert.InDelta(t, 30.0, status.Today.ByKind[record.KindReading], 1e-9)
}
