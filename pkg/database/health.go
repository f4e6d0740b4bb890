package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"time"
)

// HealthStatus describes the database connection state.
type HealthStatus struct {
	Reachable bool          `json:"reachable"`
	Latency   time.Duration `json:"latency_ns"`
	OpenConns int           `json:"open_conns"`
	InUse     int           `json:"in_use"`
}

// Health pings the database and reports pool statistics.
func Health(ctx context.Context, db *stdsql.DB) (HealthStatus, error) {
	start := time.Now()
	if err := db.PingContext(ctx); err != nil {
		return HealthStatus{}, fmt.Errorf("database ping failed: %w", err)
	}
	stats := db.Stats()
	return HealthStatus{
		Reachable: true,
		Latency:   time.Since(start),
		OpenConns: stats.OpenConnections,
		InUse:     stats.InUse,
	}, nil
}
