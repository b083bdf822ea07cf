package queries

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrGetParcelQueryIsNotConstructed = errors.New(
		"GetParcelQuery must be created via NewGetParcelQuery constructor",
	)
)

// GetParcelQuery reads one parcel on behalf of an actor. Customers see their own
// parcels, drivers the parcels assigned to them, agents everything.
//
// Example:
//
//	query, err := NewGetParcelQuery(actor, parcelID)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
type GetParcelQuery struct {
	actor    kernel.Actor
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetParcelQuery(actor kernel.Actor, parcelID kernel.UUID) (GetParcelQuery, error) {
	if err := errors.Join(actor.Validate(), parcelID.Validate()); err != nil {
		return GetParcelQuery{}, err
	}

	return GetParcelQuery{
		actor:    actor,
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

func (q GetParcelQuery) Actor() kernel.Actor {
	return q.actor
}

func (q GetParcelQuery) ParcelID() kernel.UUID {
	return q.parcelID
}
