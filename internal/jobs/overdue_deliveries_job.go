package jobs

import (
	"context"
	"log/slog"
	"time"

	"parcelhub/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueDeliveriesJob reports parcels that are On The Way past their
// approximate delivery date. It never changes them.
type OverdueDeliveriesJob struct {
	finder   LateParcelsFinder
	schedule string
	cron     *cron.Cron
	now      func() time.Time
	logger   *slog.Logger
}

func NewOverdueDeliveriesJob(finder LateParcelsFinder, schedule string, logger *slog.Logger) *OverdueDeliveriesJob {
	return &OverdueDeliveriesJob{
		finder:   finder,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		now:      time.Now,
		logger:   logger.With("component", "overdue_deliveries_job"),
	}
}

func (j *OverdueDeliveriesJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue deliveries job started", "schedule", j.schedule)
	return nil
}

// Run performs one scan and returns how many overdue parcels it reported.
func (j *OverdueDeliveriesJob) Run(ctx context.Context) int {
	asOf := j.now().UTC()
	late, err := j.finder.Handle(ctx, queries.NewFindOverdueParcelsQuery(asOf, scanLimit))
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue deliveries scan failed", "error", err)
		return 0
	}

	for _, p := range late {
		attrs := []any{
			"package_id", p.ID.String(),
			"customer_id", p.CustomerID.String(),
			"overdue_by", asOf.Sub(*p.ApproximateDeliveryDate).Round(time.Minute).String(),
		}
		if p.DriverID != nil {
			attrs = append(attrs, "driver_id", p.DriverID.String())
		}
		j.logger.WarnContext(ctx, "Delivery is overdue", attrs...)
	}
	return len(late)
}

func (j *OverdueDeliveriesJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Overdue deliveries job stopped")
}
