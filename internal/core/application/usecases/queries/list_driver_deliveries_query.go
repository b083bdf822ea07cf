package queries

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrListDriverDeliveriesQueryIsNotConstructed = errors.New(
		"ListDriverDeliveriesQuery must be created via NewListDriverDeliveriesQuery constructor",
	)
)

// ListDriverDeliveriesQuery lists the parcels assigned to the calling driver, newest first.
// Pagination is offset based: skip = (page-1) * size.
type ListDriverDeliveriesQuery struct {
	actor kernel.Actor
	page  Page

	guard guard.ConstructorGuard
}

func NewListDriverDeliveriesQuery(actor kernel.Actor, page Page) (ListDriverDeliveriesQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListDriverDeliveriesQuery{}, err
	}

	return ListDriverDeliveriesQuery{
		actor: actor,
		page:  page,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q ListDriverDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDriverDeliveriesQueryIsNotConstructed)
}

func (q ListDriverDeliveriesQuery) Actor() kernel.Actor {
	return q.actor
}

func (q ListDriverDeliveriesQuery) Page() Page {
	return q.page
}
