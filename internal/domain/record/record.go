// Package record defines the durable activity records the analytics engine
// reads. Records are produced by the platform's ingestion endpoints and are
// treated as immutable facts here; the engine never writes them back.
package record

import (
	"strings"
	"time"
)

// UserID identifies a platform user.
type UserID string

// IsValid checks if the user ID is non-empty.
func (id UserID) IsValid() bool {
	return strings.TrimSpace(string(id)) != ""
}

// String returns the string representation.
func (id UserID) String() string {
	return string(id)
}

// CourseID identifies a course. Records without a course carry an empty ID.
type CourseID string

// String returns the string representation.
func (id CourseID) String() string {
	return string(id)
}

// Kind discriminates the session record variants.
type Kind string

const (
	KindStudy    Kind = "general_study"
	KindReading  Kind = "slide_reading"
	KindQuiz     Kind = "quiz_taking"
	KindActivity Kind = "scheduled_activity"
	KindSchedule Kind = "schedule"
)

// Difficulty is the declared difficulty of a quiz.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// IsValid checks if the difficulty is one of the known levels.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Priority of a scheduled activity.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ActivityStatus is the lifecycle state of a scheduled activity. Transitions
// are owned by the scheduling endpoints; the engine only reads the state.
type ActivityStatus string

const (
	StatusScheduled  ActivityStatus = "scheduled"
	StatusInProgress ActivityStatus = "in-progress"
	StatusCompleted  ActivityStatus = "completed"
	StatusCancelled  ActivityStatus = "cancelled"
)

// ClampPercent bounds a percentage-like value to [0, 100].
func ClampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ActivityRecord is the uniform view of the session variants used by the
// dashboard rollups. Efficiency defaults to 100 when the record carries none;
// the store applies that default at load time.
type ActivityRecord interface {
	Kind() Kind
	User() UserID
	Course() CourseID
	CourseTitle() string
	OccurredAt() time.Time
	ActiveDuration() time.Duration
	EfficiencyScore() float64
}

// StudySession is a general study session.
type StudySession struct {
	UserID        UserID
	CourseID      CourseID
	CourseName    string
	StartedAt     time.Time
	ActiveMinutes float64
	Satisfaction  int // 1..5, store defaults to 5 when not reported
	Methods       []string
	Efficiency    float64 // 0..100, store defaults to 100 when not reported
}

// Kind implements ActivityRecord.
func (s StudySession) Kind() Kind { return KindStudy }

// User implements ActivityRecord.
func (s StudySession) User() UserID { return s.UserID }

// Course implements ActivityRecord.
func (s StudySession) Course() CourseID { return s.CourseID }

// CourseTitle implements ActivityRecord.
func (s StudySession) CourseTitle() string { return s.CourseName }

// OccurredAt implements ActivityRecord.
func (s StudySession) OccurredAt() time.Time { return s.StartedAt }

// ActiveDuration implements ActivityRecord.
func (s StudySession) ActiveDuration() time.Duration {
	return time.Duration(s.ActiveMinutes * float64(time.Minute))
}

// EfficiencyScore implements ActivityRecord.
func (s StudySession) EfficiencyScore() float64 { return ClampPercent(s.Efficiency) }

// ReadingSession is a slide-reading session.
type ReadingSession struct {
	UserID               UserID
	CourseID             CourseID
	CourseName           string
	Filename             string
	StartedAt            time.Time
	ActiveReadingSeconds float64
	ProgressPercent      float64
	SpeedWPM             float64
	Comprehension        float64 // 0..100
	Efficiency           float64 // 0..100, store defaults to 100
}

// Kind implements ActivityRecord.
func (s ReadingSession) Kind() Kind { return KindReading }

// User implements ActivityRecord.
func (s ReadingSession) User() UserID { return s.UserID }

// Course implements ActivityRecord.
func (s ReadingSession) Course() CourseID { return s.CourseID }

// CourseTitle implements ActivityRecord.
func (s ReadingSession) CourseTitle() string { return s.CourseName }

// OccurredAt implements ActivityRecord.
func (s ReadingSession) OccurredAt() time.Time { return s.StartedAt }

// ActiveDuration implements ActivityRecord. Reading time is tracked in
// seconds, unlike the other session kinds.
func (s ReadingSession) ActiveDuration() time.Duration {
	return time.Duration(s.ActiveReadingSeconds * float64(time.Second))
}

// EfficiencyScore implements ActivityRecord.
func (s ReadingSession) EfficiencyScore() float64 { return ClampPercent(s.Efficiency) }

// QuizSession is a completed quiz attempt.
type QuizSession struct {
	UserID           UserID
	CourseID         CourseID
	CourseName       string
	CompletedAt      time.Time
	TotalQuestions   int
	CorrectAnswers   int
	Percentage       float64 // 0..100
	Difficulty       Difficulty
	AttemptsUsed     int // store defaults to 1
	TimeSpentSeconds float64
	Tags             []string
	Efficiency       float64 // 0..100, store defaults to 100
}

// Kind implements ActivityRecord.
func (s QuizSession) Kind() Kind { return KindQuiz }

// User implements ActivityRecord.
func (s QuizSession) User() UserID { return s.UserID }

// Course implements ActivityRecord.
func (s QuizSession) Course() CourseID { return s.CourseID }

// CourseTitle implements ActivityRecord.
func (s QuizSession) CourseTitle() string { return s.CourseName }

// OccurredAt implements ActivityRecord.
func (s QuizSession) OccurredAt() time.Time { return s.CompletedAt }

// ActiveDuration implements ActivityRecord.
func (s QuizSession) ActiveDuration() time.Duration {
	return time.Duration(s.TimeSpentSeconds * float64(time.Second))
}

// EfficiencyScore implements ActivityRecord.
func (s QuizSession) EfficiencyScore() float64 { return ClampPercent(s.Efficiency) }

// Score returns the quiz percentage clamped to [0, 100].
func (s QuizSession) Score() float64 { return ClampPercent(s.Percentage) }

// Attempts returns the attempts used, treating missing values as 1.
func (s QuizSession) Attempts() int {
	if s.AttemptsUsed < 1 {
		return 1
	}
	return s.AttemptsUsed
}

// ScheduledActivity is a planned task on the user's schedule.
type ScheduledActivity struct {
	UserID          UserID
	CourseID        CourseID
	Title           string
	Category        string // free-form; "study", "review" and "assignment" count as study work
	Priority        Priority
	Status          ActivityStatus
	DurationMinutes float64 // 0 means not set
	StartTime       string  // "HH:MM", empty means not set
	ScheduledAt     time.Time
}

// IsCompleted reports whether the activity was finished.
func (a ScheduledActivity) IsCompleted() bool {
	return a.Status == StatusCompleted
}

// StartHour parses the planned start hour, falling back to midday when the
// time is absent or malformed.
func (a ScheduledActivity) StartHour() int {
	const fallback = 12
	parts := strings.SplitN(a.StartTime, ":", 2)
	if len(parts) == 0 || parts[0] == "" {
		return fallback
	}
	hour := 0
	for _, r := range parts[0] {
		if r < '0' || r > '9' {
			return fallback
		}
		hour = hour*10 + int(r-'0')
	}
	if hour > 23 {
		return fallback
	}
	return hour
}

// PlannedSession is one slot inside a schedule.
type PlannedSession struct {
	Day       string
	StartTime string
	EndTime   string
	Subject   string
}

// Schedule is a user-authored study plan.
type Schedule struct {
	UserID    UserID
	CreatedAt time.Time
	UpdatedAt *time.Time
	Sessions  []PlannedSession
}

// WasUpdated reports whether the schedule was revised after creation.
func (s Schedule) WasUpdated() bool {
	return s.UpdatedAt != nil
}
