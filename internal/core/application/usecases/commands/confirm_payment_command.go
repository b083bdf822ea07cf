package commands

import (
	"errors"
	"strings"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrConfirmPaymentCommandIsNotConstructed = errors.New(
	"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
)

// ConfirmPaymentCommand reconciles a processor confirmation token with a parcel.
type ConfirmPaymentCommand struct {
	actor    kernel.Actor
	parcelID kernel.UUID
	token    string

	guard guard.ConstructorGuard
}

func NewConfirmPaymentCommand(actor kernel.Actor, parcelID kernel.UUID, token string) (ConfirmPaymentCommand, error) {
	if err := errors.Join(actor.Validate(), parcelID.Validate()); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return ConfirmPaymentCommand{}, errs.NewValueIsRequiredError("paymentId")
	}

	return ConfirmPaymentCommand{
		actor:    actor,
		parcelID: parcelID,
		token:    token,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

func (c ConfirmPaymentCommand) Actor() kernel.Actor {
	return c.actor
}

func (c ConfirmPaymentCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c ConfirmPaymentCommand) Token() string {
	return c.token
}
