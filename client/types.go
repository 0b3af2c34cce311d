package client

import "time"

// Identity is the decoded public identity carried by a bearer token.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Task mirrors the server's task resource.
type Task struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId,omitempty"`
	Task         string     `json:"task"`
	DueDate      time.Time  `json:"dueDate"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	CreationTime time.Time  `json:"creationTime"`
	UpdateTime   *time.Time `json:"updateTime,omitempty"`
}

// JournalEntry mirrors the server's journal resource.
type JournalEntry struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId,omitempty"`
	Title        *string    `json:"title,omitempty"`
	Content      string     `json:"content"`
	Mood         string     `json:"mood"`
	CreationTime time.Time  `json:"creationTime"`
	UpdateTime   *time.Time `json:"updateTime,omitempty"`
}

// FocusSession mirrors the server's pomodoro resource.
type FocusSession struct {
	ID           string    `json:"id"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Duration     int       `json:"duration"`
	Status       string    `json:"status"`
	CreationTime time.Time `json:"creationTime"`
}

// MeditationSession mirrors the server's meditation resource.
type MeditationSession struct {
	ID           string    `json:"id"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Duration     int       `json:"duration"`
	CreationTime time.Time `json:"creationTime"`
}

// JournalEntryUpdate carries the fields a journal PATCH may change.
// Nil fields keep their stored values.
type JournalEntryUpdate struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Mood    *string `json:"mood,omitempty"`
}

// WeekTrend is one bucket of /analytics/weekly-trends.
type WeekTrend struct {
	Week       string `json:"week"`
	Focus      int    `json:"focus"`
	Meditation int    `json:"meditation"`
}

// CategoryCount is one slice of /analytics/productivity-distribution.
type CategoryCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// MoodPoint is one point of /analytics/daily-mood.
type MoodPoint struct {
	Day    string `json:"day"`
	Mood   int    `json:"mood"`
	Energy int    `json:"energy"`
}

// Stats is the dashboard summary returned by /analytics/stats.
type Stats struct {
	TotalFocusTime    string `json:"totalFocusTime"`
	CompletedSessions int    `json:"completedSessions"`
	MeditationMinutes int    `json:"meditationMinutes"`
	TasksCompleted    int    `json:"tasksCompleted"`
}

// Achievement is one earned badge from /analytics/achievements.
type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	Date        string `json:"date"`
}
