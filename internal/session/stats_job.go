package session

import (
	"context"

	"github.com/osse101/BadgerShop_Go/internal/logger"
)

// StatsJob periodically logs session counts. Scheduled from main as an
// operational heartbeat; the demo has no dashboard beyond logs and
// Prometheus.
type StatsJob struct {
	manager *Manager
}

// NewStatsJob creates a stats job for the given manager
func NewStatsJob(manager *Manager) *StatsJob {
	return &StatsJob{manager: manager}
}

// Process logs the current session count
func (j *StatsJob) Process(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgSessionStats, "sessions", j.manager.Len())
	return nil
}
