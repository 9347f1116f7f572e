package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/edumaster/analytics-engine/internal/domain/record"
)

// RecordStore implements record.Store against the platform's session tables.
// All queries are bounded by the caller's window and ordered ascending.
type RecordStore struct {
	conn *Connection
}

// NewRecordStore creates the store.
func NewRecordStore(conn *Connection) *RecordStore {
	return &RecordStore{conn: conn}
}

const queryUserExists = `
	SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`

// UserExists implements record.Store.
func (s *RecordStore) UserExists(ctx context.Context, id record.UserID) (bool, error) {
	var exists bool
	err := s.conn.Pool().QueryRow(ctx, queryUserExists, id.String()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("postgres: check user exists: %w", err)
	}
	return exists, nil
}

const queryStudySessions = `
	SELECT user_id, course_id, COALESCE(course_name, ''), started_at,
	       active_minutes, COALESCE(satisfaction, 5), COALESCE(methods, '{}'),
	       COALESCE(efficiency, 100)
	FROM study_sessions
	WHERE user_id = $1 AND started_at >= $2 AND started_at <= $3
	ORDER BY started_at ASC`

// StudySessions implements record.Store.
func (s *RecordStore) StudySessions(ctx context.Context, id record.UserID, window record.DateRange) ([]record.StudySession, error) {
	rows, err := s.conn.Pool().Query(ctx, queryStudySessions, id.String(), window.From, window.To)
	if err != nil {
		return nil, fmt.Errorf("postgres: query study sessions: %w", err)
	}
	defer rows.Close()

	var sessions []record.StudySession
	for rows.Next() {
		var sess record.StudySession
		if err := rows.Scan(
			&sess.UserID,
			&sess.CourseID,
			&sess.CourseName,
			&sess.StartedAt,
			&sess.ActiveMinutes,
			&sess.Satisfaction,
			&sess.Methods,
			&sess.Efficiency,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan study session: %w", err)
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterate study sessions: %w", err)
	}
	return sessions, nil
}

const queryReadingSessions = `
	SELECT user_id, course_id, COALESCE(course_name, ''), COALESCE(filename, ''),
	       started_at, active_reading_seconds, COALESCE(progress_percent, 0),
	       COALESCE(reading_speed_wpm, 0), COALESCE(comprehension_score, 0),
	       COALESCE(efficiency, 100)
	FROM reading_sessions
	WHERE user_id = $1 AND started_at >= $2 AND started_at <= $3
	ORDER BY started_at ASC`

// ReadingSessions implements record.Store.
func (s *RecordStore) ReadingSessions(ctx context.Context, id record.UserID, window record.DateRange) ([]record.ReadingSession, error) {
	rows, err := s.conn.Pool().Query(ctx, queryReadingSessions, id.String(), window.From, window.To)
	if err != nil {
		return nil, fmt.Errorf("postgres: query reading sessions: %w", err)
	}
	defer rows.Close()

	var sessions []record.ReadingSession
	for rows.Next() {
		var sess record.ReadingSession
		if err := rows.Scan(
			&sess.UserID,
			&sess.CourseID,
			&sess.CourseName,
			&sess.Filename,
			&sess.StartedAt,
			&sess.ActiveReadingSeconds,
			&sess.ProgressPercent,
			&sess.SpeedWPM,
			&sess.Comprehension,
			&sess.Efficiency,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan reading session: %w", err)
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterate reading sessions: %w", err)
	}
	return sessions, nil
}

const queryQuizSessions = `
	SELECT user_id, course_id, COALESCE(course_name, ''), completed_at,
	       total_questions, correct_answers, percentage,
	       COALESCE(difficulty, 'medium'), COALESCE(attempts_used, 1),
	       COALESCE(time_spent_seconds, 0), COALESCE(tags, '{}'),
	       COALESCE(efficiency, 100)
	FROM quiz_sessions
	WHERE user_id = $1 AND completed_at >= $2 AND completed_at <= $3
	ORDER BY completed_at ASC`

// QuizSessions implements record.Store.
func (s *RecordStore) QuizSessions(ctx context.Context, id record.UserID, window record.DateRange) ([]record.QuizSession, error) {
	rows, err := s.conn.Pool().Query(ctx, queryQuizSessions, id.String(), window.From, window.To)
	if err != nil {
		return nil, fmt.Errorf("postgres: query quiz sessions: %w", err)
	}
	defer rows.Close()

	var sessions []record.QuizSession
	for rows.Next() {
		var sess record.QuizSession
		if err := rows.Scan(
			&sess.UserID,
			&sess.CourseID,
			&sess.CourseName,
			&sess.CompletedAt,
			&sess.TotalQuestions,
			&sess.CorrectAnswers,
			&sess.Percentage,
			&sess.Difficulty,
			&sess.AttemptsUsed,
			&sess.TimeSpentSeconds,
			&sess.Tags,
			&sess.Efficiency,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan quiz session: %w", err)
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterate quiz sessions: %w", err)
	}
	return sessions, nil
}

const queryScheduledActivities = `
	SELECT user_id, course_id, COALESCE(title, ''), COALESCE(category, 'general'),
	       COALESCE(priority, 'medium'), status, COALESCE(duration_minutes, 0),
	       COALESCE(start_time, ''), scheduled_at
	FROM scheduled_activities
	WHERE user_id = $1 AND scheduled_at >= $2 AND scheduled_at <= $3
	ORDER BY scheduled_at ASC`

// ScheduledActivities implements record.Store.
func (s *RecordStore) ScheduledActivities(ctx context.Context, id record.UserID, window record.DateRange) ([]record.ScheduledActivity, error) {
	rows, err := s.conn.Pool().Query(ctx, queryScheduledActivities, id.String(), window.From, window.To)
	if err != nil {
		return nil, fmt.Errorf("postgres: query scheduled activities: %w", err)
	}
	defer rows.Close()

	var activities []record.ScheduledActivity
	for rows.Next() {
		var act record.ScheduledActivity
		if err := rows.Scan(
			&act.UserID,
			&act.CourseID,
			&act.Title,
			&act.Category,
			&act.Priority,
			&act.Status,
			&act.DurationMinutes,
			&act.StartTime,
			&act.ScheduledAt,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan scheduled activity: %w", err)
		}
		activities = append(activities, act)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterate scheduled activities: %w", err)
	}
	return activities, nil
}

const querySchedules = `
	SELECT user_id, created_at, updated_at, COALESCE(sessions, '[]')
	FROM schedules
	WHERE user_id = $1 AND created_at >= $2 AND created_at <= $3
	ORDER BY created_at ASC`

// plannedSessionRow mirrors the JSONB layout of one planned slot.
type plannedSessionRow struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Subject   string `json:"subject"`
}

// Schedules implements record.Store. Planned sessions are stored as a JSONB
// array on the schedule row.
func (s *RecordStore) Schedules(ctx context.Context, id record.UserID, window record.DateRange) ([]record.Schedule, error) {
	rows, err := s.conn.Pool().Query(ctx, querySchedules, id.String(), window.From, window.To)
	if err != nil {
		return nil, fmt.Errorf("postgres: query schedules: %w", err)
	}
	defer rows.Close()

	var schedules []record.Schedule
	for rows.Next() {
		var (
			sched     record.Schedule
			updatedAt *time.Time
			raw       []byte
		)
		if err := rows.Scan(&sched.UserID, &sched.CreatedAt, &updatedAt, &raw); err != nil {
			return nil, fmt.Errorf("postgres: scan schedule: %w", err)
		}
		sched.UpdatedAt = updatedAt

		var slots []plannedSessionRow
		if err := json.Unmarshal(raw, &slots); err != nil {
			return nil, fmt.Errorf("postgres: decode schedule sessions: %w", err)
		}
		for _, slot := range slots {
			sched.Sessions = append(sched.Sessions, record.PlannedSession{
				Day:       slot.Day,
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
				Subject:   slot.Subject,
			})
		}
		schedules = append(schedules, sched)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterate schedules: %w", err)
	}
	return schedules, nil
}
