// Package paymentrepo persists the payment ledger.
package paymentrepo

import (
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO is a ledger row. (customer_id, parcel_id) is unique and is the
// conflict target of Upsert.
type PaymentDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_payments_customer_parcel"`
	ParcelID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_payments_customer_parcel"`
	Amount      float64   `gorm:"not null"`
	Status      int       `gorm:"not null"`
	PaymentID   string    `gorm:"not null"`
	PaymentDate time.Time `gorm:"not null"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:          p.ID().Bytes(),
		CustomerID:  p.CustomerID().Bytes(),
		ParcelID:    p.ParcelID().Bytes(),
		Amount:      p.Amount(),
		Status:      int(p.Status()),
		PaymentID:   p.Token(),
		PaymentDate: p.PaidAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	return payment.NewPayment(id, customerID, parcelID, dto.Amount, payment.Status(dto.Status), dto.PaymentID, dto.PaymentDate)
}
