package commands

import (
	"context"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/payment"
	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"
)

// ErrPaymentNotConfirmed is returned when verification finds the intent
// not captured or tagged with another parcel.
var ErrPaymentNotConfirmed = errs.NewInvalidStateError(
	"Payment has not been confirmed by the payment processor.",
)

// ConfirmPaymentCommandHandler marks a parcel paid and upserts its ledger row in
// one transaction: if the ledger write fails the parcel stays unpaid.
//
// By default the client's token is trusted as is. With VerifyConfirmations the
// intent is fetched first and must be succeeded and tagged with this parcel.
//
// Example:
//
//	cmd, _ := NewConfirmPaymentCommand(customer, parcelID, "pi_3Nk...")
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type ConfirmPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	gateway    ports.PaymentGateway
	settings   PaymentSettings
	policy     services.AccessPolicy
}

func NewConfirmPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	gateway ports.PaymentGateway,
	settings PaymentSettings,
) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		settings:   settings,
		policy:     services.NewAccessPolicy(),
	}
}

func (h ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.OpConfirmPayment); err != nil {
		return err
	}

	if h.settings.VerifyConfirmations {
		if err := h.verify(ctx, cmd.ParcelID(), cmd.Token()); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcels := uow.ParcelRepository()
	p, err := parcels.GetForUpdate(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = h.policy.AuthorizeOnParcel(cmd.Actor(), services.OpConfirmPayment, p); err != nil {
		return err
	}

	if err = p.MarkPaid(cmd.Token()); err != nil {
		return err
	}

	if err = parcels.Update(ctx, p); err != nil {
		return err
	}

	entry, err := payment.NewPayment(
		kernel.NewUUID(),
		p.CustomerID(),
		p.ID(),
		p.Details().Cost(),
		payment.Success,
		cmd.Token(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.PaymentRepository().Upsert(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h ConfirmPaymentCommandHandler) verify(ctx context.Context, parcelID kernel.UUID, token string) error {
	callCtx, cancel := context.WithTimeout(ctx, h.settings.timeout())
	defer cancel()

	intent, err := h.gateway.GetIntent(callCtx, token)
	if err != nil {
		return asDependencyError(err)
	}
	if intent.Status != ports.IntentSucceeded || intent.ParcelID != parcelID.String() {
		return ErrPaymentNotConfirmed
	}
	return nil
}
