package queries

import (
	"context"

	"parcelhub/internal/core/domain/services"

	"gorm.io/gorm"
)

type ListCustomerParcelsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListCustomerParcelsQueryHandler(db *gorm.DB) ListCustomerParcelsQueryHandler {
	return ListCustomerParcelsQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle returns the customer's parcels. Customers may list only themselves.
func (h ListCustomerParcelsQueryHandler) Handle(
	ctx context.Context,
	query ListCustomerParcelsQuery,
) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.AuthorizeCustomerScope(query.Actor(), services.OpListOwnParcels, query.CustomerID()); err != nil {
		return nil, err
	}

	db := parcelViews(h.db.WithContext(ctx)).
		Where("p.customer_id = ?", query.CustomerID().Bytes()).
		Order(newestFirst)
	return scanParcelViews(query.Page().apply(db))
}
