// Package ratingrepo persists driver ratings.
package ratingrepo

import (
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/rating"

	"github.com/google/uuid"
)

// RatingDTO is a row of the ratings table. (customer_id, parcel_id) is unique.
type RatingDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_customer_parcel"`
	ParcelID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_customer_parcel"`
	DriverID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating     int       `gorm:"not null"`
	Comment    string    `gorm:"not null;default:''"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime:false"`
}

func (RatingDTO) TableName() string {
	return "ratings"
}

func fromDomain(r *rating.Rating) RatingDTO {
	return RatingDTO{
		ID:         r.ID().Bytes(),
		CustomerID: r.CustomerID().Bytes(),
		ParcelID:   r.ParcelID().Bytes(),
		DriverID:   r.DriverID().Bytes(),
		Rating:     r.Score(),
		Comment:    r.Comment(),
		CreatedAt:  r.RatedAt(),
	}
}

func toDomain(dto RatingDTO) (*rating.Rating, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.CustomerID, dto.DriverID, dto.ParcelID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return rating.RestoreRating(ids[0], ids[1], ids[2], ids[3], dto.Rating, dto.Comment, dto.CreatedAt.UTC())
}
