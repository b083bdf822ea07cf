package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/payment"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrInitiatePaymentCommandIsNotConstructed = errors.New(
	"InitiatePaymentCommand must be created via NewInitiatePaymentCommand constructor",
)

// InitiatePaymentCommand reserves an amount with the payment processor.
type InitiatePaymentCommand struct {
	actor       kernel.Actor
	parcelID    kernel.UUID
	amountMinor int64

	guard guard.ConstructorGuard
}

// NewInitiatePaymentCommand rejects a missing, non-finite or non-positive price
// and converts it to minor units.
func NewInitiatePaymentCommand(actor kernel.Actor, parcelID string, price *float64) (InitiatePaymentCommand, error) {
	if err := actor.Validate(); err != nil {
		return InitiatePaymentCommand{}, err
	}

	id, err := parseID("packageId", parcelID)
	if err != nil {
		return InitiatePaymentCommand{}, err
	}
	if price == nil {
		return InitiatePaymentCommand{}, errs.NewValueIsRequiredError("price")
	}

	minor, err := payment.ToMinorUnits(*price)
	if err != nil {
		return InitiatePaymentCommand{}, err
	}

	return InitiatePaymentCommand{
		actor:       actor,
		parcelID:    id,
		amountMinor: minor,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c InitiatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrInitiatePaymentCommandIsNotConstructed)
}

func (c InitiatePaymentCommand) Actor() kernel.Actor {
	return c.actor
}

func (c InitiatePaymentCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c InitiatePaymentCommand) AmountMinor() int64 {
	return c.amountMinor
}
