package commands

import (
	"context"

	"parcelhub/internal/core/domain/services"
)

type CancelParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	policy     services.AccessPolicy
}

func NewCancelParcelCommandHandler(uowFactory ParcelUoWFactory) CancelParcelCommandHandler {
	return CancelParcelCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle refuses non-customers up front; the aggregate then refuses customers
// who do not own the parcel before it looks at the status.
func (h CancelParcelCommandHandler) Handle(ctx context.Context, cmd CancelParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.OpCancelParcel); err != nil {
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

	if err = p.Cancel(cmd.Actor().ID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
