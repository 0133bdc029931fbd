// Package jobs provides scheduled background tasks for the restaurant
// backend, implemented with github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderReportJob - Periodically logs the count of open (not yet delivered)
// orders per status, giving the kitchen operational visibility without
// touching the request path.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(listOrdersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Report failures are logged and the next tick retries; a broken report never
// affects order processing.
package jobs
