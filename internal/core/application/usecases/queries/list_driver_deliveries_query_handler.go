package queries

import (
	"context"

	"parcelhub/internal/core/domain/services"

	"gorm.io/gorm"
)

type ListDriverDeliveriesQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListDriverDeliveriesQueryHandler(db *gorm.DB) ListDriverDeliveriesQueryHandler {
	return ListDriverDeliveriesQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle returns the driver's page of deliveries, or NotFound when the page is empty.
func (h ListDriverDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListDriverDeliveriesQuery,
) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.Actor(), services.OpListDeliveries); err != nil {
		return nil, err
	}

	db := parcelViews(h.db.WithContext(ctx)).
		Where("p.driver_id = ?", query.Actor().ID().Bytes()).
		Order(newestFirst)
	views, err := scanParcelViews(query.Page().apply(db))
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, noResults("packages", "none assigned to the delivery driver")
	}
	return views, nil
}
