package commands

import (
	"context"
	"errors"

	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/model/rating"
	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/pkg/errs"
)

// ErrRatingRequiresDelivered is returned when no Delivered parcel matches the
// rated (parcel, driver) pair.
var ErrRatingRequiresDelivered = errs.NewInvalidStateError(
	"Cannot add a rating. Package status must be Delivered.",
)

// SubmitRatingCommandHandler stores a customer's rating of a delivery.
// The parcel row is locked for the duration, so the Delivered check and the
// insert see the same state even if the parcel is being changed concurrently.
//
// Example:
//
//	score := 5
//	cmd, _ := NewSubmitRatingCommand(customer, driverID, parcelID, &score, "great")
//	stored, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrDuplicate) {
//	    // already rated
//	}
type SubmitRatingCommandHandler struct {
	uowFactory RatingUoWFactory
	policy     services.AccessPolicy
}

func NewSubmitRatingCommandHandler(uowFactory RatingUoWFactory) SubmitRatingCommandHandler {
	return SubmitRatingCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h SubmitRatingCommandHandler) Handle(ctx context.Context, cmd SubmitRatingCommand) (*rating.Rating, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.OpSubmitRating); err != nil {
		return nil, err
	}

	r := cmd.Rating()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := uow.ParcelRepository().GetForUpdate(ctx, r.ParcelID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrRatingRequiresDelivered
	}
	if err != nil {
		return nil, err
	}
	if p.Status() != parcel.Delivered || !p.IsAssignedTo(r.DriverID()) {
		return nil, ErrRatingRequiresDelivered
	}

	ratings := uow.RatingRepository()
	exists, err := ratings.ExistsForCustomerParcel(ctx, r.CustomerID(), r.ParcelID())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewDuplicateError("rating", r.ParcelID().String())
	}

	if err = ratings.Add(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
