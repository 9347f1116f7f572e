package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumaster/analytics-engine/config"
	"github.com/edumaster/analytics-engine/internal/application/query"
	"github.com/edumaster/analytics-engine/internal/domain/record"
	"github.com/edumaster/analytics-engine/pkg/logger"
)

var testNow = time.Date(2025, time.June, 18, 20, 0, 0, 0, time.UTC)

// memStore is a minimal record.Store for routing tests.
type memStore struct {
	users   map[record.UserID]bool
	study   []record.StudySession
	quizzes []record.QuizSession
}

func (s *memStore) UserExists(_ context.Context, id record.UserID) (bool, error) {
	return s.users[id], nil
}

func (s *memStore) StudySessions(_ context.Context, id record.UserID, window record.DateRange) ([]record.StudySession, error) {
	var out []record.StudySession
	for _, r := range s.study {
		if r.UserID == id && window.Contains(r.StartedAt) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memStore) ReadingSessions(context.Context, record.UserID, record.DateRange) ([]record.ReadingSession, error) {
	return nil, nil
}

func (s *memStore) QuizSessions(_ context.Context, id record.UserID, window record.DateRange) ([]record.QuizSession, error) {
	var out []record.QuizSession
	for _, r := range s.quizzes {
		if r.UserID == id && window.Contains(r.CompletedAt) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memStore) ScheduledActivities(context.Context, record.UserID, record.DateRange) ([]record.ScheduledActivity, error) {
	return nil, nil
}

func (s *memStore) Schedules(context.Context, record.UserID, record.DateRange) ([]record.Schedule, error) {
	return nil, nil
}

type stubPinger struct{ err error }

func (p stubPinger) HealthCheck(context.Context) error { return p.err }

func testServer(t *testing.T, store *memStore, db Pinger) *Server {
	t.Helper()

	log := logger.NewNop()
	pipeline := query.NewPipeline(store, log)
	clock := func() time.Time { return testNow }

	handlers := NewHandlers(
		query.NewGetBehavioralAnalyticsHandler(pipeline, clock),
		query.NewGetAcademicPredictionHandler(pipeline, clock),
		query.NewGetDashboardHandler(pipeline, store, nil, log, clock),
		query.NewGetReadingAnalyticsHandler(pipeline, store, clock),
		query.NewGetQuizStatsHandler(pipeline, store, clock),
		db,
		nil,
		"test",
		log,
	)

	cfg := config.HTTPConfig{Port: 8080}
	return NewServer(cfg, handlers, nil, nil, log)
}

func get(server *Server, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	server.engine.ServeHTTP(rec, req)
	return rec
}

func seededStore() *memStore {
	return &memStore{
		users: map[record.UserID]bool{"u1": true},
		study: []record.StudySession{
			{UserID: "u1", CourseID: "c1", CourseName: "Algorithms", StartedAt: testNow.Add(-2 * time.Hour), ActiveMinutes: 90, Efficiency: 80, Satisfaction: 4},
		},
		quizzes: []record.QuizSession{
			{UserID: "u1", CourseID: "c1", CompletedAt: testNow.AddDate(0, 0, -1), Percentage: 85, TotalQuestions: 10, CorrectAnswers: 8, AttemptsUsed: 1, Difficulty: record.DifficultyMedium, TimeSpentSeconds: 600, Efficiency: 85},
		},
	}
}

func TestBehavioralAnalyticsRoute(t *testing.T) {
	server := testServer(t, seededStore(), stubPinger{})

	rec := get(server, "/api/v1/users/u1/behavioral-analytics?days=14")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "success", body["status"])
	assert.Equal(t, float64(14), body["period_days"])

	analytics := body["analytics"].(map[string]interface{})
	quiz := analytics["quiz_performance"].(map[string]interface{})
	assert.Equal(t, float64(1), quiz["total_quizzes"])
	assert.Equal(t, 85.0, quiz["average_score"])
	assert.Contains(t, analytics, "behavioral_insights")
	assert.Contains(t, analytics, "summary")
}

func TestPredictionRoute(t *testing.T) {
	server := testServer(t, seededStore(), stubPinger{})

	rec := get(server, "/api/v1/users/u1/prediction")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	prediction := body["prediction"].(map[string]interface{})
	assert.Contains(t, prediction, "performance_percentage")
	assert.Contains(t, prediction, "gpa")
	assert.Contains(t, prediction, "grade")
	assert.Contains(t, body, "recommendations")
	assert.Contains(t, body, "risks")
}

func TestDashboardRoute(t *testing.T) {
	server := testServer(t, seededStore(), stubPinger{})

	rec := get(server, "/api/v1/users/u1/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	dash := body["dashboard"].(map[string]interface{})
	assert.Contains(t, dash, "overview")
	assert.Contains(t, dash, "activity_breakdown")
	assert.Contains(t, dash, "real_time_status")

	rt := dash["real_time_status"].(map[string]interface{})
	// No tracker wired: live sessions serialize as an empty list.
	assert.Equal(t, []interface{}{}, rt["current_sessions"])
}

func TestQuizStatsRoute(t *testing.T) {
	server := testServer(t, seededStore(), stubPinger{})

	rec := get(server, "/api/v1/users/u1/quiz-stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	stats := body["stats"].(map[string]interface{})
	assert.Equal(t, 80.0, stats["overall_accuracy"])
	assert.Equal(t, "Very Good", stats["performance_level"])
}

func TestUnknownUserReturns404(t *testing.T) {
	server := testServer(t, seededStore(), stubPinger{})

	rec := get(server, "/api/v1/users/ghost/dashboard")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMalformedDaysReturns400(t *testing.T) {
	server := testServer(t, seededStore(), stubPinger{})

	rec := get(server, "/api/v1/users/u1/behavioral-analytics?days=soon")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "days must be an integer")
}

func TestHealthEndpoint(t *testing.T) {
	server := testServer(t, seededStore(), stubPinger{})

	rec := get(server, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestHealthEndpointDegraded(t *testing.T) {
	server := testServer(t, seededStore(), stubPinger{err: errors.New("down")})

	rec := get(server, "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "degraded")
}

func TestRequestIDHeaderEchoed(t *testing.T) {
	server := testServer(t, seededStore(), stubPinger{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "fixed-id")
	rec := httptest.NewRecorder()
	server.engine.ServeHTTP(rec, req)

	assert.Equal(t, "fixed-id", rec.Header().Get(requestIDHeader))

	// A missing request ID is generated.
	rec = get(server, "/healthz")
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}
