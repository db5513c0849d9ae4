// Package jobs provides scheduled background tasks for the bakery service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. InventoryAlertJob - scans the inventory and reports low-stock and expiring lines
//
// # Usage
//
//	jobManager, err := jobs.NewJobManager(alertsHandler, collector, "@every 1h", logger)
//	if err != nil {
//		log.Fatal("Failed to create jobs:", err)
//	}
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the standard five-field cron syntax or a descriptor such as
// "@hourly" or "@every 30m".
//
// # Error Handling
//
// Jobs only read. A failed scan is logged and counted; the next tick retries.
package jobs
