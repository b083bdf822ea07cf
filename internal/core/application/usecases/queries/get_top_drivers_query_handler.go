package queries

import (
	"context"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetTopDriversQueryHandler struct {
	db *gorm.DB
}

func NewGetTopDriversQueryHandler(db *gorm.DB) GetTopDriversQueryHandler {
	return GetTopDriversQueryHandler{db: db}
}

// Handle returns at most TopDriversLimit drivers, or NotFound when nobody has delivered yet.
func (h GetTopDriversQueryHandler) Handle(ctx context.Context, query GetTopDriversQuery) ([]TopDriverView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []struct {
		DriverID      uuid.UUID
		Name          string
		PhotoURL      string
		Delivered     int64
		AverageRating float64
	}
	err := h.db.WithContext(ctx).Raw(`
		WITH delivered AS (
			SELECT driver_id, COUNT(*) AS total
			FROM parcels
			WHERE status = ? AND driver_id IS NOT NULL
			GROUP BY driver_id
		), averages AS (
			SELECT driver_id, AVG(rating)::float8 AS average
			FROM ratings
			GROUP BY driver_id
		)
		SELECT
			d.driver_id,
			u.name,
			u.photo_url,
			d.total AS delivered,
			COALESCE(a.average, 0) AS average_rating
		FROM delivered d
		JOIN users u ON u.id = d.driver_id
		LEFT JOIN averages a ON a.driver_id = d.driver_id
		ORDER BY d.total DESC, average_rating DESC, d.driver_id
		LIMIT ?
	`, int(parcel.Delivered), TopDriversLimit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, noResults("deliveryDrivers", "no delivery drivers found")
	}

	drivers := make([]TopDriverView, 0, len(rows))
	for _, row := range rows {
		id, idErr := kernel.UUIDFromBytes(row.DriverID[:])
		if idErr != nil {
			return nil, idErr
		}
		drivers = append(drivers, TopDriverView{
			DriverID:               id,
			Name:                   row.Name,
			Photo:                  row.PhotoURL,
			TotalPackagesDelivered: row.Delivered,
			AverageRating:          row.AverageRating,
		})
	}
	return drivers, nil
}
