package commands

import (
	"errors"
	"strings"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand binds a delivery driver and an expected delivery date to a parcel.
//
// Example:
//
//	cmd, err := NewAssignDriverCommand(agent, parcelID, req.DriverID, req.DeliveryDate)
//	if err != nil {
//	    return err // missing driverId or deliveryDate
//	}
//	err = handler.Handle(ctx, cmd)
type AssignDriverCommand struct {
	actor        kernel.Actor
	parcelID     kernel.UUID
	driverID     kernel.UUID
	deliveryDate time.Time

	guard guard.ConstructorGuard
}

func NewAssignDriverCommand(
	actor kernel.Actor,
	parcelID kernel.UUID,
	driverID string,
	deliveryDate string,
) (AssignDriverCommand, error) {
	if err := errors.Join(actor.Validate(), parcelID.Validate()); err != nil {
		return AssignDriverCommand{}, err
	}

	if strings.TrimSpace(driverID) == "" {
		return AssignDriverCommand{}, errs.NewValueIsRequiredError("driverId")
	}
	if strings.TrimSpace(deliveryDate) == "" {
		return AssignDriverCommand{}, errs.NewValueIsRequiredError("deliveryDate")
	}

	driver, err := parseID("driverId", driverID)
	if err != nil {
		return AssignDriverCommand{}, err
	}

	date, err := parcel.ParseDate("deliveryDate", deliveryDate)
	if err != nil {
		return AssignDriverCommand{}, err
	}

	return AssignDriverCommand{
		actor:        actor,
		parcelID:     parcelID,
		driverID:     driver,
		deliveryDate: date,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

func (c AssignDriverCommand) Actor() kernel.Actor {
	return c.actor
}

func (c AssignDriverCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c AssignDriverCommand) DeliveryDate() time.Time {
	return c.deliveryDate
}
