package commands

import (
	"context"

	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/core/ports"
)

// InitiatePaymentResult is what the client needs to complete capture with the processor.
type InitiatePaymentResult struct {
	ClientSecret    string
	PaymentIntentID string
}

// InitiatePaymentCommandHandler creates a pending intent tagged with the parcel id.
// It never touches local state, so a failed or timed-out call leaves nothing behind.
type InitiatePaymentCommandHandler struct {
	gateway  ports.PaymentGateway
	settings PaymentSettings
	policy   services.AccessPolicy
}

func NewInitiatePaymentCommandHandler(gateway ports.PaymentGateway, settings PaymentSettings) InitiatePaymentCommandHandler {
	return InitiatePaymentCommandHandler{
		gateway:  gateway,
		settings: settings,
		policy:   services.NewAccessPolicy(),
	}
}

func (h InitiatePaymentCommandHandler) Handle(
	ctx context.Context,
	cmd InitiatePaymentCommand,
) (InitiatePaymentResult, error) {
	if err := cmd.Validate(); err != nil {
		return InitiatePaymentResult{}, err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.OpInitiatePayment); err != nil {
		return InitiatePaymentResult{}, err
	}

	callCtx, cancel := context.WithTimeout(ctx, h.settings.timeout())
	defer cancel()

	intent, err := h.gateway.CreateIntent(callCtx, ports.IntentRequest{
		ParcelID:    cmd.ParcelID(),
		AmountMinor: cmd.AmountMinor(),
		Currency:    h.settings.Currency,
	})
	if err != nil {
		return InitiatePaymentResult{}, asDependencyError(err)
	}

	return InitiatePaymentResult{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	}, nil
}
