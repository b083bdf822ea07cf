package commands

import (
	"context"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/pkg/errs"
)

// CreateParcelCommandHandler books parcels. Customers book for themselves;
// agents book on behalf of a named customer.
//
// Example:
//
//	handler := NewCreateParcelCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("booking failed: %w", err)
//	}
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	policy     services.AccessPolicy
}

func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if err := h.policy.Authorize(actor, services.OpCreateParcel); err != nil {
		return err
	}

	customerID, err := h.resolveCustomer(actor, cmd.CustomerID())
	if err != nil {
		return err
	}

	p, err := parcel.NewParcel(cmd.ParcelID(), customerID, cmd.Details(), cmd.ApproximateDeliveryDate(), actor.ID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h CreateParcelCommandHandler) resolveCustomer(actor kernel.Actor, requested *kernel.UUID) (kernel.UUID, error) {
	if requested == nil {
		if actor.Is(kernel.Customer) {
			return actor.ID(), nil
		}
		return kernel.UUID{}, errs.NewValueIsRequiredError("customerId")
	}

	if err := h.policy.AuthorizeCustomerScope(actor, services.OpCreateParcel, *requested); err != nil {
		return kernel.UUID{}, err
	}
	return *requested, nil
}
