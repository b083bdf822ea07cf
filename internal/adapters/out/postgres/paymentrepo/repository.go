package paymentrepo

import (
	"context"
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/payment"
	"parcelhub/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Upsert inserts the ledger row or, on a (customer, parcel) conflict, overwrites
// amount, status, token and date of the existing row.
func (r *GormPaymentRepository) Upsert(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "customer_id"}, {Name: "parcel_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "status", "payment_id", "payment_date"}),
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPaymentRepository) GetByCustomerParcel(
	ctx context.Context,
	customerID, parcelID kernel.UUID,
) (*payment.Payment, error) {
	var dto PaymentDTO
	err := r.db.WithContext(ctx).
		First(&dto, "customer_id = ? AND parcel_id = ?", customerID.Bytes(), parcelID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", parcelID.String())
		}
		return nil, err
	}
	return toDomain(dto)
}
