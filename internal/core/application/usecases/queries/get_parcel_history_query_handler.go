package queries

import (
	"context"
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetParcelHistoryQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetParcelHistoryQueryHandler(db *gorm.DB) GetParcelHistoryQueryHandler {
	return GetParcelHistoryQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h GetParcelHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetParcelHistoryQuery,
) ([]StatusEventView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.Actor(), services.OpViewParcel); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var parties struct {
		CustomerID uuid.UUID
		DriverID   *uuid.UUID
	}
	err := db.Table("parcels").
		Select("customer_id, driver_id").
		Where("id = ?", query.ParcelID().Bytes()).
		Take(&parties).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("packageId", query.ParcelID())
	}
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(parties.CustomerID[:])
	if err != nil {
		return nil, err
	}
	var driverID *kernel.UUID
	if parties.DriverID != nil {
		id, idErr := kernel.UUIDFromBytes(parties.DriverID[:])
		if idErr != nil {
			return nil, idErr
		}
		driverID = &id
	}
	if err = h.policy.AuthorizeView(query.Actor(), customerID, driverID); err != nil {
		return nil, err
	}

	var rows []struct {
		FromStatus int
		ToStatus   int
		ChangedBy  uuid.UUID
		ChangedAt  time.Time
	}
	err = db.Table("parcel_status_events").
		Select("from_status, to_status, changed_by, changed_at").
		Where("parcel_id = ?", query.ParcelID().Bytes()).
		Order("changed_at, to_status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	events := make([]StatusEventView, 0, len(rows))
	for _, row := range rows {
		changedBy, idErr := kernel.UUIDFromBytes(row.ChangedBy[:])
		if idErr != nil {
			return nil, idErr
		}
		events = append(events, StatusEventView{
			From:      parcel.Status(row.FromStatus),
			To:        parcel.Status(row.ToStatus),
			ChangedBy: changedBy,
			ChangedAt: row.ChangedAt,
		})
	}
	return events, nil
}
