package queries

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrGetDeliveryStatsQueryIsNotConstructed = errors.New(
		"GetDeliveryStatsQuery must be created via NewGetDeliveryStatsQuery constructor",
	)
)

// GetDeliveryStatsQuery builds the dashboard chart series: per creation day (UTC),
// how many parcels were booked, how many are still in flight and how many were delivered.
type GetDeliveryStatsQuery struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

func NewGetDeliveryStatsQuery(actor kernel.Actor) (GetDeliveryStatsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetDeliveryStatsQuery{}, err
	}
	return GetDeliveryStatsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryStatsQueryIsNotConstructed)
}

func (q GetDeliveryStatsQuery) Actor() kernel.Actor {
	return q.actor
}

// DayStats is one day bucket. Date is formatted YYYY-MM-DD.
type DayStats struct {
	Date           string
	TotalAppointed int64
	Appointed      int64
	Delivered      int64
}

// DeliveryStats holds the day buckets in ascending date order.
type DeliveryStats struct {
	Days []DayStats
}
