package ports

import (
	"context"

	"parcelhub/internal/core/domain/model/kernel"
)

// IntentSucceeded is the processor status of a captured intent.
const IntentSucceeded = "succeeded"

// IntentRequest asks the processor to reserve an amount for a parcel.
type IntentRequest struct {
	ParcelID    kernel.UUID
	AmountMinor int64
	Currency    string
}

// Intent is the processor's view of a payment intent.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
	ParcelID     string
}

// PaymentGateway is the external payment processor. Implementations must honour
// the context deadline and return errs.DependencyError on failure.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, req IntentRequest) (Intent, error)
	GetIntent(ctx context.Context, id string) (Intent, error)
}
