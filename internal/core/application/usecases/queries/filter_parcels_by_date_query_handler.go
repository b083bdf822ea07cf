package queries

import (
	"context"

	"parcelhub/internal/core/domain/services"

	"gorm.io/gorm"
)

type FilterParcelsByDateQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewFilterParcelsByDateQueryHandler(db *gorm.DB) FilterParcelsByDateQueryHandler {
	return FilterParcelsByDateQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle returns the parcels created in range, or NotFound when there are none.
func (h FilterParcelsByDateQueryHandler) Handle(
	ctx context.Context,
	query FilterParcelsByDateQuery,
) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.Actor(), services.OpFilterParcels); err != nil {
		return nil, err
	}

	views, err := scanParcelViews(parcelViews(h.db.WithContext(ctx)).
		Where("p.created_at BETWEEN ? AND ?", query.From(), query.To()).
		Order(newestFirst))
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, noResults("packages", "none in the specified date range")
	}
	return views, nil
}
