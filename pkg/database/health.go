package database

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// ErrOutboxMissing reports a database whose migrations have not created the
// events outbox table.
var ErrOutboxMissing = errors.New("events outbox table missing")

// PoolStats is a snapshot of the connection pool.
type PoolStats struct {
	OpenConnections int   `json:"open_connections"`
	InUse           int   `json:"in_use"`
	Idle            int   `json:"idle"`
	WaitCount       int64 `json:"wait_count"`
	WaitDuration    int64 `json:"wait_duration_ms"`
	MaxOpenConns    int   `json:"max_open_conns"`
}

// HealthStatus represents database health, including whether the
// migration-owned event outbox is present.
type HealthStatus struct {
	Status       string    `json:"status"`
	ResponseTime int64     `json:"response_time_ms"`
	OutboxReady  bool      `json:"outbox_ready"`
	Pool         PoolStats `json:"pool"`
}

// Health checks database connectivity and that the events outbox table
// exists. A reachable database without the outbox means the SQL migrations
// never ran, so task events would be lost; that is reported as unhealthy.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()

	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}

	var outboxReady bool
	if err := db.QueryRowContext(ctx,
		"SELECT to_regclass('events') IS NOT NULL").Scan(&outboxReady); err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}
	if !outboxReady {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}, ErrOutboxMissing
	}

	stats := db.Stats()
	return &HealthStatus{
		Status:       "healthy",
		ResponseTime: time.Since(start).Milliseconds(),
		OutboxReady:  true,
		Pool: PoolStats{
			OpenConnections: stats.OpenConnections,
			InUse:           stats.InUse,
			Idle:            stats.Idle,
			WaitCount:       stats.WaitCount,
			WaitDuration:    stats.WaitDuration.Milliseconds(),
			MaxOpenConns:    stats.MaxOpenConnections,
		},
	}, nil
}
