package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	directoryRefreshJob *DirectoryRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	refreshHandler DirectoryRefreshCommandHandler,
	refreshSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		directoryRefreshJob: NewDirectoryRefreshJob(refreshHandler, refreshSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.directoryRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start directory refresh job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.directoryRefreshJob.Stop()
}
