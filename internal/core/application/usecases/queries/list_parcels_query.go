package queries

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrListParcelsQueryIsNotConstructed = errors.New(
		"ListParcelsQuery must be created via NewListParcelsQuery constructor",
	)
)

// ParcelFilter narrows ListParcelsQuery. Nil fields match everything.
type ParcelFilter struct {
	Status        *parcel.Status
	PaymentStatus *parcel.PaymentStatus
	DriverID      *kernel.UUID
	CustomerID    *kernel.UUID
}

// ListParcelsQuery is the agent's view over every parcel.
//
// Example:
//
//	delivered := parcel.Delivered
//	query, err := NewListParcelsQuery(agent, ParcelFilter{Status: &delivered}, Page{Number: 1, Size: 20})
type ListParcelsQuery struct {
	actor  kernel.Actor
	filter ParcelFilter
	page   Page

	guard guard.ConstructorGuard
}

func NewListParcelsQuery(actor kernel.Actor, filter ParcelFilter, page Page) (ListParcelsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListParcelsQuery{}, err
	}
	if filter.Status != nil {
		if err := filter.Status.Validate(); err != nil {
			return ListParcelsQuery{}, err
		}
	}
	if filter.PaymentStatus != nil {
		if err := filter.PaymentStatus.Validate(); err != nil {
			return ListParcelsQuery{}, err
		}
	}

	return ListParcelsQuery{
		actor:  actor,
		filter: filter,
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListParcelsQueryIsNotConstructed)
}

func (q ListParcelsQuery) Actor() kernel.Actor {
	return q.actor
}

func (q ListParcelsQuery) Filter() ParcelFilter {
	return q.filter
}

func (q ListParcelsQuery) Page() Page {
	return q.page
}
