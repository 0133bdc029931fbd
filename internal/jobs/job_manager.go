package jobs

import (
	"fmt"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderReportJob *OrderReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(listOrdersHandler queries.ListOrdersQueryHandler, logger *slog.Logger) *JobManager {
	return &JobManager{
		orderReportJob: NewOrderReportJob(listOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start order report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderReportJob.Stop()
}
