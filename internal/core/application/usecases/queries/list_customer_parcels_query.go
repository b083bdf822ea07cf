package queries

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrListCustomerParcelsQueryIsNotConstructed = errors.New(
		"ListCustomerParcelsQuery must be created via NewListCustomerParcelsQuery constructor",
	)
)

// ListCustomerParcelsQuery lists the parcels booked by one customer, newest first.
// An empty list is a valid result.
type ListCustomerParcelsQuery struct {
	actor      kernel.Actor
	customerID kernel.UUID
	page       Page

	guard guard.ConstructorGuard
}

func NewListCustomerParcelsQuery(actor kernel.Actor, customerID kernel.UUID, page Page) (ListCustomerParcelsQuery, error) {
	if err := errors.Join(actor.Validate(), customerID.Validate()); err != nil {
		return ListCustomerParcelsQuery{}, err
	}

	return ListCustomerParcelsQuery{
		actor:      actor,
		customerID: customerID,
		page:       page,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListCustomerParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerParcelsQueryIsNotConstructed)
}

func (q ListCustomerParcelsQuery) Actor() kernel.Actor {
	return q.actor
}

func (q ListCustomerParcelsQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q ListCustomerParcelsQuery) Page() Page {
	return q.page
}
