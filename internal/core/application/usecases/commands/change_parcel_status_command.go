package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/guard"
)

var ErrChangeParcelStatusCommandIsNotConstructed = errors.New(
	"ChangeParcelStatusCommand must be created via NewChangeParcelStatusCommand constructor",
)

// ChangeParcelStatusCommand requests a move along the transition table.
type ChangeParcelStatusCommand struct {
	actor    kernel.Actor
	parcelID kernel.UUID
	target   parcel.Status

	guard guard.ConstructorGuard
}

func NewChangeParcelStatusCommand(
	actor kernel.Actor,
	parcelID kernel.UUID,
	target parcel.Status,
) (ChangeParcelStatusCommand, error) {
	if err := errors.Join(actor.Validate(), parcelID.Validate(), target.Validate()); err != nil {
		return ChangeParcelStatusCommand{}, err
	}

	return ChangeParcelStatusCommand{
		actor:    actor,
		parcelID: parcelID,
		target:   target,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeParcelStatusCommandIsNotConstructed)
}

func (c ChangeParcelStatusCommand) Actor() kernel.Actor {
	return c.actor
}

func (c ChangeParcelStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c ChangeParcelStatusCommand) Target() parcel.Status {
	return c.target
}
