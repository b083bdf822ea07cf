package jobs

import (
	"context"
	"log/slog"
	"time"

	"parcelhub/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StalePendingJob reports Pending parcels whose requested delivery date has
// passed, usually because no driver was assigned in time.
type StalePendingJob struct {
	finder   LateParcelsFinder
	schedule string
	cron     *cron.Cron
	now      func() time.Time
	logger   *slog.Logger
}

func NewStalePendingJob(finder LateParcelsFinder, schedule string, logger *slog.Logger) *StalePendingJob {
	return &StalePendingJob{
		finder:   finder,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		now:      time.Now,
		logger:   logger.With("component", "stale_pending_job"),
	}
}

func (j *StalePendingJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale pending job started", "schedule", j.schedule)
	return nil
}

// Run performs one scan and returns how many stale parcels it reported.
func (j *StalePendingJob) Run(ctx context.Context) int {
	asOf := j.now().UTC()
	stale, err := j.finder.Handle(ctx, queries.NewFindStalePendingParcelsQuery(asOf, scanLimit))
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale pending scan failed", "error", err)
		return 0
	}

	for _, p := range stale {
		j.logger.WarnContext(ctx, "Package still pending after its requested date",
			"package_id", p.ID.String(),
			"customer_id", p.CustomerID.String(),
			"requested_delivery_date", p.RequestedDeliveryDate.Format(time.DateOnly),
		)
	}
	return len(stale)
}

func (j *StalePendingJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stale pending job stopped")
}
