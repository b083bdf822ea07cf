package queries

import (
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

// DriverCut is the share of successful payments on a driver's delivered parcels
// credited to the driver.
const DriverCut = 0.10

var (
	ErrListDeliveryDriversQueryIsNotConstructed = errors.New(
		"ListDeliveryDriversQuery must be created via NewListDeliveryDriversQuery constructor",
	)
)

// ListDeliveryDriversQuery is the agent's driver roster, newest accounts first.
type ListDeliveryDriversQuery struct {
	actor kernel.Actor
	page  Page

	guard guard.ConstructorGuard
}

func NewListDeliveryDriversQuery(actor kernel.Actor, page Page) (ListDeliveryDriversQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListDeliveryDriversQuery{}, err
	}
	return ListDeliveryDriversQuery{actor: actor, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q ListDeliveryDriversQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveryDriversQueryIsNotConstructed)
}

func (q ListDeliveryDriversQuery) Actor() kernel.Actor {
	return q.actor
}

func (q ListDeliveryDriversQuery) Page() Page {
	return q.page
}

type DriverView struct {
	ID          kernel.UUID
	Name        string
	Email       string
	Photo       string
	CreatedAt   time.Time
	Deliveries  int64
	TotalEarned float64
}

// DriverRoster is one page of drivers plus the total number of drivers.
type DriverRoster struct {
	Total   int64
	Drivers []DriverView
}
