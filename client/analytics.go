package client

import "context"

// GetStats fetches the dashboard summary card.
func (c *Client) GetStats(ctx context.Context) (*Stats, error) {
	var out Stats
	if err := c.doJSON(ctx, "GET", "/analytics/stats", nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAchievements fetches the earned badges.
func (c *Client) GetAchievements(ctx context.Context) ([]Achievement, error) {
	var out []Achievement
	if err := c.doJSON(ctx, "GET", "/analytics/achievements", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// GetWeeklyTrends fetches the weekly focus/meditation chart buckets.
func (c *Client) GetWeeklyTrends(ctx context.Context) ([]WeekTrend, error) {
	var out []WeekTrend
	if err := c.doJSON(ctx, "GET", "/analytics/weekly-trends", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProductivityDistribution fetches the per-category record counts.
func (c *Client) GetProductivityDistribution(ctx context.Context) ([]CategoryCount, error) {
	var out []CategoryCount
	if err := c.doJSON(ctx, "GET", "/analytics/productivity-distribution", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDailyMood fetches one chart point per journal entry.
func (c *Client) GetDailyMood(ctx context.Context) ([]MoodPoint, error) {
	var out []MoodPoint
	if err := c.doJSON(ctx, "GET", "/analytics/daily-mood", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}
