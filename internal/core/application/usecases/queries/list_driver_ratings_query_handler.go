package queries

import (
	"context"
	"database/sql"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListDriverRatingsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListDriverRatingsQueryHandler(db *gorm.DB) ListDriverRatingsQueryHandler {
	return ListDriverRatingsQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle returns the driver's ratings, or NotFound when the driver has none.
func (h ListDriverRatingsQueryHandler) Handle(
	ctx context.Context,
	query ListDriverRatingsQuery,
) ([]RatingView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.Actor(), services.OpListDriverRatings); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.parcel_id,
			r.customer_id,
			u.name,
			u.photo_url,
			r.rating,
			r.comment,
			r.created_at
		FROM ratings r
		LEFT JOIN users u ON u.id = r.customer_id
		WHERE r.driver_id = ?
		ORDER BY r.created_at DESC
	`, query.Actor().ID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := make([]RatingView, 0)
	for rows.Next() {
		var (
			id, parcelID, customerID uuid.UUID
			name, photo              sql.NullString
			score                    int
			comment                  string
			createdAt                time.Time
		)
		if err = rows.Scan(&id, &parcelID, &customerID, &name, &photo, &score, &comment, &createdAt); err != nil {
			return nil, err
		}

		view := RatingView{
			CustomerName:  name.String,
			CustomerPhoto: photo.String,
			Rating:        score,
			Comment:       comment,
			CreatedAt:     createdAt,
		}
		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.ParcelID, err = kernel.UUIDFromBytes(parcelID[:]); err != nil {
			return nil, err
		}
		if view.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		ratings = append(ratings, view)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(ratings) == 0 {
		return nil, noResults("ratings", "none for this delivery driver")
	}
	return ratings, nil
}
