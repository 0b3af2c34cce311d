package model

import "time"

// Task statuses.
const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Journal moods.
const (
	MoodHappy    = "happy"
	MoodSad      = "sad"
	MoodNeutral  = "neutral"
	MoodStressed = "stressed"
)

// Focus session statuses.
const (
	SessionCompleted = "completed"
	SessionSkipped   = "skipped"
)

// User represents an account in the system. PasswordHash is never
// serialized; responses carry only the public identity fields.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreationTime time.Time `json:"creationTime"`
}

// Task is a to-do item owned by a single user.
type Task struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	Task         string     `json:"task"`
	DueDate      time.Time  `json:"dueDate"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	CreationTime time.Time  `json:"creationTime"`
	UpdateTime   *time.Time `json:"updateTime,omitempty"`
}

// JournalEntry is a dated note with an optional title and mood.
type JournalEntry struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	Title        *string    `json:"title,omitempty"`
	Content      string     `json:"content"`
	Mood         string     `json:"mood"`
	CreationTime time.Time  `json:"creationTime"`
	UpdateTime   *time.Time `json:"updateTime,omitempty"`
}

// FocusSession records one completed or skipped Pomodoro cycle.
// Sessions are append-only; there is no update or delete path.
type FocusSession struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Duration     int       `json:"duration"`
	Status       string    `json:"status"`
	CreationTime time.Time `json:"creationTime"`
}

// MeditationSession records one meditation sitting. Append-only.
type MeditationSession struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Duration     int       `json:"duration"`
	CreationTime time.Time `json:"creationTime"`
}

// TaskUpdate carries the fields a task PATCH may change.
type TaskUpdate struct {
	Status *string `json:"status,omitempty"`
}

// JournalUpdate carries the fields a journal PATCH may change.
type JournalUpdate struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Mood    *string `json:"mood,omitempty"`
}

// ValidPriority reports whether p is a recognized task priority.
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// ValidTaskStatus reports whether s is a recognized task status.
func ValidTaskStatus(s string) bool {
	return s == TaskStatusPending || s == TaskStatusCompleted
}

// ValidMood reports whether m is a recognized journal mood.
func ValidMood(m string) bool {
	return m == MoodHappy || m == MoodSad || m == MoodNeutral || m == MoodStressed
}

// ValidSessionStatus reports whether s is a recognized focus session status.
func ValidSessionStatus(s string) bool {
	return s == SessionCompleted || s == SessionSkipped
}
