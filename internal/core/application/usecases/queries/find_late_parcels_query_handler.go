package queries

import (
	"context"

	"parcelhub/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

type FindLateParcelsQueryHandler struct {
	db *gorm.DB
}

func NewFindLateParcelsQueryHandler(db *gorm.DB) FindLateParcelsQueryHandler {
	return FindLateParcelsQueryHandler{db: db}
}

// Handle returns late parcels, most overdue first. An empty result is not an error.
func (h FindLateParcelsQueryHandler) Handle(ctx context.Context, query FindLateParcelsQuery) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := parcelViews(h.db.WithContext(ctx))
	switch query.kind {
	case overdueDelivery:
		db = db.Where("p.status = ? AND p.approximate_delivery_date < ?", int(parcel.OnTheWay), query.asOf).
			Order("p.approximate_delivery_date")
	case stalePending:
		db = db.Where("p.status = ? AND p.requested_delivery_date < ?", int(parcel.Pending), query.asOf).
			Order("p.requested_delivery_date")
	}

	return scanParcelViews(Page{Number: 1, Size: query.limit}.apply(db))
}
