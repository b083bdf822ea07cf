package queries

import (
	"context"

	"parcelhub/internal/core/domain/services"

	"gorm.io/gorm"
)

type ListParcelsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListParcelsQueryHandler(db *gorm.DB) ListParcelsQueryHandler {
	return ListParcelsQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle returns the filtered page, or NotFound when nothing matches.
func (h ListParcelsQueryHandler) Handle(ctx context.Context, query ListParcelsQuery) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.Actor(), services.OpListAllParcels); err != nil {
		return nil, err
	}

	db := parcelViews(h.db.WithContext(ctx)).Order(newestFirst)
	filter := query.Filter()
	if filter.Status != nil {
		db = db.Where("p.status = ?", int(*filter.Status))
	}
	if filter.PaymentStatus != nil {
		db = db.Where("p.payment_status = ?", int(*filter.PaymentStatus))
	}
	if filter.DriverID != nil {
		db = db.Where("p.driver_id = ?", filter.DriverID.Bytes())
	}
	if filter.CustomerID != nil {
		db = db.Where("p.customer_id = ?", filter.CustomerID.Bytes())
	}

	views, err := scanParcelViews(query.Page().apply(db))
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, noResults("packages", "none match the filter")
	}
	return views, nil
}
