// Package jobs provides scheduled background tasks for the load lifecycle
// service, implemented with github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StalledLoadMonitorJob - Periodically sweeps for loads that should be
// moving but have not been touched for longer than a configured threshold,
// and logs them for dispatch follow-up.
//
// # Usage
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(stalledJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
