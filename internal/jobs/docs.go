// Package jobs provides scheduled background tasks for the trading service.
//
// Jobs are cron-based, using github.com/robfig/cron/v3, and each one drives a
// command handler.
//
// # Available Jobs
//
// DirectoryRefreshJob reloads the supplier and customer name lists into the
// in-memory name cache. It runs once on start and then on the configured
// schedule (DIRECTORY_REFRESH_SPEC, "@every 5m" by default).
//
// # Usage
//
//	jobManager := jobs.NewJobManager(refreshHandler, config.DirectoryRefreshSpec, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh is logged and the previous names stay cached. The next
// tick tries again.
package jobs
