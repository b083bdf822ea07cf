package commands

import (
	"context"

	"parcelhub/internal/core/domain/services"
)

// EditParcelCommandHandler runs the generic edit path. Customers edit only their
// own parcels, agents edit any, drivers are refused.
type EditParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	policy     services.AccessPolicy
}

func NewEditParcelCommandHandler(uowFactory ParcelUoWFactory) EditParcelCommandHandler {
	return EditParcelCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h EditParcelCommandHandler) Handle(ctx context.Context, cmd EditParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.OpEditParcel); err != nil {
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

	if err = h.policy.AuthorizeOnParcel(cmd.Actor(), services.OpEditParcel, p); err != nil {
		return err
	}

	if err = p.Edit(cmd.Patch()); err != nil {
		return err
	}

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
