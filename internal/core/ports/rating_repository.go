package ports

import (
	"context"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/rating"
)

// RatingRepository defines the persistence contract for driver ratings.
type RatingRepository interface {
	// Add persists a rating. A second rating for the same (customer, parcel)
	// pair fails with errs.DuplicateError.
	Add(ctx context.Context, aggregate *rating.Rating) error

	// ExistsForCustomerParcel is the uniqueness probe used before Add.
	ExistsForCustomerParcel(ctx context.Context, customerID, parcelID kernel.UUID) (bool, error)
}
