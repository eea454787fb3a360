package database

import (
	"context"
	"database/sql"
	"time"
)

// PoolStats is a condensed view of the connection pool.
type PoolStats struct {
	Open  int `json:"open"`
	InUse int `json:"in_use"`
	Idle  int `json:"idle"`
}

// HealthStatus reports reachability of the settings store. StoredSettings
// doubles as a liveness probe for the site_settings table itself, not just
// the connection.
type HealthStatus struct {
	Status         string    `json:"status"`
	ResponseTime   int64     `json:"response_time_ms"`
	StoredSettings int       `json:"stored_settings"`
	Pool           PoolStats `json:"pool"`
}

// Health pings the database and counts stored site settings.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	start := time.Now()

	if err := c.db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}

	count, err := c.SiteSetting.Query().Count(ctx)
	if err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
			Pool:         poolStats(c.db.Stats()),
		}, err
	}

	return &HealthStatus{
		Status:         "healthy",
		ResponseTime:   time.Since(start).Milliseconds(),
		StoredSettings: count,
		Pool:           poolStats(c.db.Stats()),
	}, nil
}

func poolStats(s sql.DBStats) PoolStats {
	return PoolStats{
		Open:  s.OpenConnections,
		InUse: s.InUse,
		Idle:  s.Idle,
	}
}
