package commands

import (
	"context"

	"parcelhub/internal/core/domain/services"
)

// ChangeParcelStatusCommandHandler is the sole path for status progression.
// Agents may move any parcel; drivers only the parcels assigned to them.
// A rejected transition writes nothing, so repeating it fails the same way.
//
// Example:
//
//	cmd, _ := NewChangeParcelStatusCommand(driver, parcelID, parcel.Delivered)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // "Cannot transition from 'Pending' to 'Delivered'."
//	}
type ChangeParcelStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
	policy     services.AccessPolicy
}

func NewChangeParcelStatusCommandHandler(uowFactory ParcelUoWFactory) ChangeParcelStatusCommandHandler {
	return ChangeParcelStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h ChangeParcelStatusCommandHandler) Handle(ctx context.Context, cmd ChangeParcelStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.OpTransitionParcel); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ParcelRepository()
	p, err := repo.GetForUpdate(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = h.policy.AuthorizeOnParcel(cmd.Actor(), services.OpTransitionParcel, p); err != nil {
		return err
	}

	if err = p.TransitionTo(cmd.Target(), cmd.Actor().ID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
