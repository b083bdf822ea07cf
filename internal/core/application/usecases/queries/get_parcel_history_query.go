package queries

import (
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrGetParcelHistoryQueryIsNotConstructed = errors.New(
		"GetParcelHistoryQuery must be created via NewGetParcelHistoryQuery constructor",
	)
)

// GetParcelHistoryQuery reads the status history of one parcel, oldest first.
// Visibility follows GetParcelQuery.
type GetParcelHistoryQuery struct {
	actor    kernel.Actor
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetParcelHistoryQuery(actor kernel.Actor, parcelID kernel.UUID) (GetParcelHistoryQuery, error) {
	if err := errors.Join(actor.Validate(), parcelID.Validate()); err != nil {
		return GetParcelHistoryQuery{}, err
	}
	return GetParcelHistoryQuery{
		actor:    actor,
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetParcelHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelHistoryQueryIsNotConstructed)
}

func (q GetParcelHistoryQuery) Actor() kernel.Actor {
	return q.actor
}

func (q GetParcelHistoryQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

// StatusEventView is one entry of a parcel's history. From is Unknown for the booking.
type StatusEventView struct {
	From      parcel.Status
	To        parcel.Status
	ChangedBy kernel.UUID
	ChangedAt time.Time
}
