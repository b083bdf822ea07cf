package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/guard"
)

var ErrEditParcelCommandIsNotConstructed = errors.New(
	"EditParcelCommand must be created via NewEditParcelCommand constructor",
)

// EditParcelCommand applies an allow-listed patch to a Pending parcel.
// An empty patch is accepted and still subject to the Pending check.
type EditParcelCommand struct {
	actor    kernel.Actor
	parcelID kernel.UUID
	patch    parcel.Patch

	guard guard.ConstructorGuard
}

func NewEditParcelCommand(actor kernel.Actor, parcelID kernel.UUID, patch parcel.Patch) (EditParcelCommand, error) {
	if err := errors.Join(actor.Validate(), parcelID.Validate()); err != nil {
		return EditParcelCommand{}, err
	}

	return EditParcelCommand{
		actor:    actor,
		parcelID: parcelID,
		patch:    patch,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c EditParcelCommand) Validate() error {
	return c.guard.Validate(ErrEditParcelCommandIsNotConstructed)
}

func (c EditParcelCommand) Actor() kernel.Actor {
	return c.actor
}

func (c EditParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c EditParcelCommand) Patch() parcel.Patch {
	return c.patch
}
