// Package jobs provides scheduled background watchers for the parcel service.
//
// The watchers use github.com/robfig/cron/v3 with a seconds field and only
// read: they log parcels that need attention and never change state.
//
// # Available Jobs
//
// 1. OverdueDeliveriesJob - parcels On The Way past their approximate delivery date
// 2. StalePendingJob - Pending parcels past their requested delivery date
//
// # Usage
//
//	jobManager := jobs.NewJobManager(findLateParcelsHandler, jobs.Schedules{
//		OverdueDeliveries: "0 */15 * * * *",
//		StalePending:      "0 0 * * * *",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed scan is logged and retried on the next tick.
// A failed job start stops any already running jobs.
package jobs
