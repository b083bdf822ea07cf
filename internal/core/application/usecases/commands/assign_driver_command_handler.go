package commands

import (
	"context"

	"parcelhub/internal/core/domain/services"
)

// AssignDriverCommandHandler is the assignment service: agents only. The lifecycle
// rules (terminal parcels refuse assignment) live in the aggregate.
type AssignDriverCommandHandler struct {
	uowFactory ParcelUoWFactory
	policy     services.AccessPolicy
}

func NewAssignDriverCommandHandler(uowFactory ParcelUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.OpAssignDriver); err != nil {
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

	if err = p.AssignDriver(cmd.DriverID(), cmd.DeliveryDate(), cmd.Actor().ID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
