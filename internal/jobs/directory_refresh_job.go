package jobs

import (
	"context"
	"log/slog"

	"trading/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultDirectoryRefreshSpec refreshes the counterparty names every five minutes.
const DefaultDirectoryRefreshSpec = "@every 5m"

// DirectoryRefreshCommandHandler is the handler the job drives.
type DirectoryRefreshCommandHandler interface {
	Handle(ctx context.Context, cmd commands.RefreshCounterpartyNamesCommand) error
}

// DirectoryRefreshJob keeps the counterparty name cache warm.
type DirectoryRefreshJob struct {
	handler DirectoryRefreshCommandHandler
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDirectoryRefreshJob creates a job running handler on spec, a standard
// cron expression or a descriptor such as "@every 5m". An empty spec means
// DefaultDirectoryRefreshSpec.
func NewDirectoryRefreshJob(handler DirectoryRefreshCommandHandler, spec string, logger *slog.Logger) *DirectoryRefreshJob {
	if spec == "" {
		spec = DefaultDirectoryRefreshSpec
	}
	return &DirectoryRefreshJob{
		handler: handler,
		spec:    spec,
		cron:    cron.New(),
		logger:  logger.With("component", "directory_refresh_job"),
	}
}

// Start schedules the refresh and runs it once right away so the cache is
// filled before the first tick.
func (j *DirectoryRefreshJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, j.Run); err != nil {
		return err
	}

	j.Run()
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Directory refresh job started", "spec", j.spec)
	return nil
}

// Run refreshes both directories once.
func (j *DirectoryRefreshJob) Run() {
	ctx := context.Background()
	cmd, err := commands.NewRefreshCounterpartyNamesCommand()
	if err != nil {
		j.logger.ErrorContext(ctx, "Directory refresh job failed", "error", err)
		return
	}

	if err = j.handler.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "Directory refresh job failed", "error", err)
	}
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (j *DirectoryRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Directory refresh job stopped")
}
