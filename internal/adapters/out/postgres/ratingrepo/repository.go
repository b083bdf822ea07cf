package ratingrepo

import (
	"context"
	"errors"

	"parcelhub/internal/adapters/out/postgres/pgerr"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/rating"
	"parcelhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRatingRepository implements RatingRepository using GORM.
type GormRatingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormRatingRepository(db *gorm.DB, tracker aggregateTracker) *GormRatingRepository {
	return &GormRatingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a rating. The unique index backs up the handler's probe: a
// concurrent duplicate still surfaces as DuplicateError, not a driver error.
func (r *GormRatingRepository) Add(ctx context.Context, aggregate *rating.Rating) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewDuplicateError("rating", aggregate.ParcelID().String())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRatingRepository) ExistsForCustomerParcel(
	ctx context.Context,
	customerID, parcelID kernel.UUID,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&RatingDTO{}).
		Where("customer_id = ? AND parcel_id = ?", customerID.Bytes(), parcelID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Get retrieves a rating by id.
func (r *GormRatingRepository) Get(ctx context.Context, id kernel.UUID) (*rating.Rating, error) {
	var dto RatingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rating", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}
