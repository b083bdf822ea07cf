package ports

import (
	"context"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for the payment ledger.
type PaymentRepository interface {
	// Upsert writes the ledger row for (customer, parcel). An existing row keeps its id
	// and has amount, status, token and timestamp overwritten.
	Upsert(ctx context.Context, aggregate *payment.Payment) error

	// GetByCustomerParcel returns the ledger row for the pair or errs.ObjectNotFoundError.
	GetByCustomerParcel(ctx context.Context, customerID, parcelID kernel.UUID) (*payment.Payment, error)
}
