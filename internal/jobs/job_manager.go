package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	inventoryAlertJob *InventoryAlertJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	alerts inventoryAlertsReader,
	publisher AlertPublisher,
	alertSchedule string,
	logger *slog.Logger,
) (*JobManager, error) {
	alertJob, err := NewInventoryAlertJob(alerts, publisher, alertSchedule, logger)
	if err != nil {
		return nil, err
	}

	return &JobManager{inventoryAlertJob: alertJob}, nil
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.inventoryAlertJob.Start(); err != nil {
		return fmt.Errorf("failed to start inventory alert job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.inventoryAlertJob.Stop()
}
