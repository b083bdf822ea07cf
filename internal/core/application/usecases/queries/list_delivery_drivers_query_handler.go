package queries

import (
	"context"
	"math"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/model/payment"
	"parcelhub/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListDeliveryDriversQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListDeliveryDriversQueryHandler(db *gorm.DB) ListDeliveryDriversQueryHandler {
	return ListDeliveryDriversQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle returns the roster page with delivered counts and earnings, or NotFound
// when the page is empty.
func (h ListDeliveryDriversQueryHandler) Handle(
	ctx context.Context,
	query ListDeliveryDriversQuery,
) (DriverRoster, error) {
	if err := query.Validate(); err != nil {
		return DriverRoster{}, err
	}
	if err := h.policy.Authorize(query.Actor(), services.OpListDrivers); err != nil {
		return DriverRoster{}, err
	}

	db := h.db.WithContext(ctx)
	role := kernel.DeliveryDriver.String()

	var total int64
	if err := db.Table("users").Where("role = ?", role).Count(&total).Error; err != nil {
		return DriverRoster{}, err
	}

	var rows []struct {
		ID         uuid.UUID
		Name       string
		Email      string
		PhotoURL   string
		CreatedAt  time.Time
		Deliveries int64
		Paid       float64
	}
	delivered := int(parcel.Delivered)
	err := query.Page().apply(db.Table("users AS u").
		Select(`u.id, u.name, u.email, u.photo_url, u.created_at,
			(SELECT COUNT(*) FROM parcels p WHERE p.driver_id = u.id AND p.status = ?) AS deliveries,
			(SELECT COALESCE(SUM(pay.amount), 0)::float8
				FROM payments pay
				JOIN parcels p ON p.id = pay.parcel_id
				WHERE p.driver_id = u.id AND p.status = ? AND pay.status = ?) AS paid`,
			delivered, delivered, int(payment.Success)).
		Where("u.role = ?", role).
		Order("u.created_at DESC, u.id")).
		Scan(&rows).Error
	if err != nil {
		return DriverRoster{}, err
	}
	if len(rows) == 0 {
		return DriverRoster{}, noResults("deliveryDrivers", "no delivery drivers found")
	}

	roster := DriverRoster{Total: total, Drivers: make([]DriverView, 0, len(rows))}
	for _, row := range rows {
		id, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return DriverRoster{}, idErr
		}
		roster.Drivers = append(roster.Drivers, DriverView{
			ID:          id,
			Name:        row.Name,
			Email:       row.Email,
			Photo:       row.PhotoURL,
			CreatedAt:   row.CreatedAt,
			Deliveries:  row.Deliveries,
			TotalEarned: math.Round(row.Paid*DriverCut*100) / 100,
		})
	}
	return roster, nil
}
