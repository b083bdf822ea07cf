package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var ErrCancelParcelCommandIsNotConstructed = errors.New(
	"CancelParcelCommand must be created via NewCancelParcelCommand constructor",
)

// CancelParcelCommand cancels a parcel on behalf of the customer who booked it.
type CancelParcelCommand struct {
	actor    kernel.Actor
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelParcelCommand(actor kernel.Actor, parcelID kernel.UUID) (CancelParcelCommand, error) {
	if err := errors.Join(actor.Validate(), parcelID.Validate()); err != nil {
		return CancelParcelCommand{}, err
	}

	return CancelParcelCommand{
		actor:    actor,
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CancelParcelCommand) Validate() error {
	return c.guard.Validate(ErrCancelParcelCommandIsNotConstructed)
}

func (c CancelParcelCommand) Actor() kernel.Actor {
	return c.actor
}

func (c CancelParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}
