// Package payment holds the payment ledger and the amount arithmetic used when
// talking to the external payment processor.
package payment

import (
	"errors"
	"math"
	"strings"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment is a ledger row keyed by (customer, parcel). Reconciling the same pair
// again overwrites amount, status, token and timestamp in place.
type Payment struct {
	id         kernel.UUID
	customerID kernel.UUID
	parcelID   kernel.UUID
	amount     float64
	status     Status
	token      string
	paidAt     time.Time

	isConstructed bool
}

// NewPayment builds a ledger row. amount is copied from the parcel cost at
// reconciliation time and must be finite and >= 0.
func NewPayment(
	id, customerID, parcelID kernel.UUID,
	amount float64,
	status Status,
	token string,
	paidAt time.Time,
) (*Payment, error) {
	token = strings.TrimSpace(token)

	var amountErr, tokenErr, dateErr error
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		amountErr = errs.NewValueIsOutOfRangeError("amount", amount, 0, math.MaxFloat64)
	}
	if token == "" {
		tokenErr = errs.NewValueIsRequiredError("paymentId")
	}
	if paidAt.IsZero() {
		dateErr = errs.NewValueIsRequiredError("paymentDate")
	}

	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		parcelID.Validate(),
		status.Validate(),
		amountErr,
		tokenErr,
		dateErr,
	); err != nil {
		return nil, err
	}

	return &Payment{
		id:            id,
		customerID:    customerID,
		parcelID:      parcelID,
		amount:        amount,
		status:        status,
		token:         token,
		paidAt:        paidAt.UTC(),
		isConstructed: true,
	}, nil
}

func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

func (p *Payment) ID() kernel.UUID {
	return p.id
}

func (p *Payment) CustomerID() kernel.UUID {
	return p.customerID
}

func (p *Payment) ParcelID() kernel.UUID {
	return p.parcelID
}

func (p *Payment) Amount() float64 {
	return p.amount
}

func (p *Payment) Status() Status {
	return p.status
}

func (p *Payment) Token() string {
	return p.token
}

func (p *Payment) PaidAt() time.Time {
	return p.paidAt
}
