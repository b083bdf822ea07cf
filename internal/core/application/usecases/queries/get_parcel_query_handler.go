package queries

import (
	"context"

	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetParcelQueryHandler serves GetParcelQuery from the parcels table.
// Missing parcels are NotFound; parcels outside the actor's scope are Forbidden.
type GetParcelQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h GetParcelQueryHandler) Handle(ctx context.Context, query GetParcelQuery) (ParcelView, error) {
	if err := query.Validate(); err != nil {
		return ParcelView{}, err
	}
	if err := h.policy.Authorize(query.Actor(), services.OpViewParcel); err != nil {
		return ParcelView{}, err
	}

	views, err := scanParcelViews(parcelViews(h.db.WithContext(ctx)).
		Where("p.id = ?", query.ParcelID().Bytes()).
		Limit(1))
	if err != nil {
		return ParcelView{}, err
	}
	if len(views) == 0 {
		return ParcelView{}, errs.NewObjectNotFoundError("packageId", query.ParcelID())
	}

	view := views[0]
	if err = h.policy.AuthorizeView(query.Actor(), view.CustomerID, view.DriverID); err != nil {
		return ParcelView{}, err
	}
	return view, nil
}
