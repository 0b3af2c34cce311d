package services

import (
	"context"
	"fmt"

	"github.com/focusflow/focusflow/internal/model"
	"github.com/focusflow/focusflow/internal/store"
)

// AnalyticsService derives dashboard aggregates from a user's records.
type AnalyticsService struct {
	store store.Store
}

func NewAnalyticsService(s store.Store) *AnalyticsService { return &AnalyticsService{store: s} }

// WeekTrend is one bucket of the weekly-trends chart.
type WeekTrend struct {
	Week       string `json:"week"`
	Focus      int    `json:"focus"`
	Meditation int    `json:"meditation"`
}

// CategoryCount is one slice of the productivity-distribution chart.
type CategoryCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// MoodPoint maps one journal entry onto the daily-mood chart. Mood is a
// 1-4 scale (sad..happy); energy has no backing data yet and is fixed.
type MoodPoint struct {
	Day    string `json:"day"`
	Mood   int    `json:"mood"`
	Energy int    `json:"energy"`
}

// Stats is the dashboard summary card.
type Stats struct {
	TotalFocusTime    string `json:"totalFocusTime"`
	CompletedSessions int    `json:"completedSessions"`
	MeditationMinutes int    `json:"meditationMinutes"`
	TasksCompleted    int    `json:"tasksCompleted"`
}

// Achievement is one earned badge.
type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	Date        string `json:"date"`
}

// WeeklyTrends returns two week buckets carrying the user's focus and
// meditation session counts.
func (s *AnalyticsService) WeeklyTrends(ctx context.Context, userID string) ([]WeekTrend, error) {
	focus, err := s.store.FocusSessions().List(ctx, userID)
	if err != nil {
		return nil, err
	}
	meditation, err := s.store.MeditationSessions().List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return []WeekTrend{
		{Week: "Week 1", Focus: len(focus), Meditation: len(meditation)},
		{Week: "Week 2", Focus: len(focus), Meditation: len(meditation)},
	}, nil
}

// ProductivityDistribution returns per-category record counts with
// their fixed display colors.
func (s *AnalyticsService) ProductivityDistribution(ctx context.Context, userID string) ([]CategoryCount, error) {
	focus, err := s.store.FocusSessions().List(ctx, userID)
	if err != nil {
		return nil, err
	}
	meditation, err := s.store.MeditationSessions().List(ctx, userID)
	if err != nil {
		return nil, err
	}
	taskCount, err := s.store.Tasks().Count(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	return []CategoryCount{
		{Name: "Focus", Value: len(focus), Color: "#3b82f6"},
		{Name: "Meditation", Value: len(meditation), Color: "#10b981"},
		{Name: "Tasks", Value: taskCount, Color: "#f59e0b"},
	}, nil
}

// moodScale orders moods from low to high for the daily-mood chart.
var moodScale = map[string]int{
	model.MoodSad:      1,
	model.MoodNeutral:  2,
	model.MoodStressed: 3,
	model.MoodHappy:    4,
}

// DailyMood maps each journal entry to a chart point.
func (s *AnalyticsService) DailyMood(ctx context.Context, userID string) ([]MoodPoint, error) {
	entries, err := s.store.Journal().List(ctx, userID)
	if err != nil {
		return nil, err
	}
	points := make([]MoodPoint, 0, len(entries))
	for _, e := range entries {
		points = append(points, MoodPoint{
			Day:    e.CreationTime.Format("2006-01-02"),
			Mood:   moodScale[e.Mood],
			Energy: 5,
		})
	}
	return points, nil
}

// UserStats computes the dashboard summary: total focus hours (one
// decimal), session count, meditation minutes, completed tasks.
func (s *AnalyticsService) UserStats(ctx context.Context, userID string) (*Stats, error) {
	focus, err := s.store.FocusSessions().List(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalFocusMinutes := 0
	for _, f := range focus {
		totalFocusMinutes += f.Duration
	}

	meditation, err := s.store.MeditationSessions().List(ctx, userID)
	if err != nil {
		return nil, err
	}
	meditationMinutes := 0
	for _, m := range meditation {
		meditationMinutes += m.Duration
	}

	tasksCompleted, err := s.store.Tasks().Count(ctx, userID, model.TaskStatusCompleted)
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalFocusTime:    fmt.Sprintf("%.1f", float64(totalFocusMinutes)/60),
		CompletedSessions: len(focus),
		MeditationMinutes: meditationMinutes,
		TasksCompleted:    tasksCompleted,
	}, nil
}

// Achievements evaluates the badge rules over the user's records.
func (s *AnalyticsService) Achievements(ctx context.Context, userID string) ([]Achievement, error) {
	focus, err := s.store.FocusSessions().List(ctx, userID)
	if err != nil {
		return nil, err
	}
	meditation, err := s.store.MeditationSessions().List(ctx, userID)
	if err != nil {
		return nil, err
	}
	tasksCompleted, err := s.store.Tasks().Count(ctx, userID, model.TaskStatusCompleted)
	if err != nil {
		return nil, err
	}

	achievements := []Achievement{}

	if len(focus) >= 50 {
		achievements = append(achievements, Achievement{
			Title:       "Focus Master",
			Description: "Completed 50 focus sessions",
			Emoji:       "🎯",
			Date:        "Recently",
		})
	}
	if len(meditation) >= 7 {
		achievements = append(achievements, Achievement{
			Title:       "Mindful Week",
			Description: "Meditated 7 days in a row",
			Emoji:       "🧘",
			Date:        "Recently",
		})
	}
	if tasksCompleted >= 100 {
		achievements = append(achievements, Achievement{
			Title:       "Task Crusher",
			Description: "Completed 100 tasks",
			Emoji:       "✅",
			Date:        "Recently",
		})
	}
	for _, f := range focus {
		if f.StartTime.Hour() < 9 {
			achievements = append(achievements, Achievement{
				Title:       "Early Bird",
				Description: "Started 5 morning sessions",
				Emoji:       "🌅",
				Date:        "Recently",
			})
			break
		}
	}

	return achievements, nil
}
