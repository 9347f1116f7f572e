package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/edumaster/analytics-engine/internal/domain/dashboard"
	"github.com/edumaster/analytics-engine/internal/domain/record"
)

const (
	liveSessionKeyPrefix = "live_sessions:"

	// liveSessionTTL bounds how long a user's presence hash survives without
	// any touch; individual sessions go stale earlier via staleCutoff.
	liveSessionTTL = 2 * time.Hour
	staleCutoff    = 30 * time.Minute
)

// SessionTracker stores currently running sessions in a per-user hash. The
// ingestion endpoints call Touch on every heartbeat and End on completion;
// the engine reads via ActiveSessions.
type SessionTracker struct {
	client *redis.Client
	now    func() time.Time
}

// NewSessionTracker creates the tracker.
func NewSessionTracker(client *redis.Client, now func() time.Time) *SessionTracker {
	return &SessionTracker{client: client, now: now}
}

// liveSessionDoc is the wire layout of one tracked session.
type liveSessionDoc struct {
	SessionID    string    `json:"sessionId"`
	Kind         string    `json:"kind"`
	CourseName   string    `json:"courseName"`
	Filename     string    `json:"filename,omitempty"`
	StartedAt    time.Time `json:"startedAt"`
	LastActivity time.Time `json:"lastActivity"`
	Progress     float64   `json:"readingProgress"`
	Efficiency   float64   `json:"efficiency"`
}

func userKey(id record.UserID) string {
	return liveSessionKeyPrefix + id.String()
}

// Touch upserts a running session and refreshes the key TTL.
func (t *SessionTracker) Touch(ctx context.Context, id record.UserID, session dashboard.LiveSession) error {
	doc := liveSessionDoc{
		SessionID:    session.SessionID,
		Kind:         string(session.Kind),
		CourseName:   session.CourseName,
		Filename:     session.Filename,
		StartedAt:    session.StartedAt,
		LastActivity: t.now(),
		Progress:     session.ReadingProgress,
		Efficiency:   session.Efficiency,
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("redis: marshal live session: %w", err)
	}

	key := userKey(id)
	pipe := t.client.Pipeline()
	pipe.HSet(ctx, key, session.SessionID, payload)
	pipe.Expire(ctx, key, liveSessionTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis: touch live session: %w", err)
	}
	return nil
}

// End removes a session from the user's presence hash.
func (t *SessionTracker) End(ctx context.Context, id record.UserID, sessionID string) error {
	if err := t.client.HDel(ctx, userKey(id), sessionID).Err(); err != nil {
		return fmt.Errorf("redis: end live session: %w", err)
	}
	return nil
}

// ActiveSessions returns the user's sessions touched within the staleness
// cutoff, most recently active first.
func (t *SessionTracker) ActiveSessions(ctx context.Context, id record.UserID) ([]dashboard.LiveSession, error) {
	entries, err := t.client.HGetAll(ctx, userKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis: read live sessions: %w", err)
	}

	now := t.now()
	cutoff := now.Add(-staleCutoff)

	var live []dashboard.LiveSession
	for _, raw := range entries {
		var doc liveSessionDoc
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			continue // skip malformed entries, they age out via the TTL
		}
		if doc.LastActivity.Before(cutoff) {
			continue
		}
		live = append(live, dashboard.LiveSession{
			SessionID:       doc.SessionID,
			Kind:            record.Kind(doc.Kind),
			CourseName:      doc.CourseName,
			Filename:        doc.Filename,
			StartedAt:       doc.StartedAt,
			LastActivity:    doc.LastActivity,
			DurationMinutes: now.Sub(doc.StartedAt).Minutes(),
			ReadingProgress: doc.Progress,
			Efficiency:      doc.Efficiency,
		})
	}

	sort.Slice(live, func(i, j int) bool {
		return live[i].LastActivity.After(live[j].LastActivity)
	})
	return live, nil
}
