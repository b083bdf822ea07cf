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

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelInput carries the raw booking fields as received from the client.
// Pointers distinguish an absent number from zero.
type CreateParcelInput struct {
	CustomerID string

	Sender   parcel.Contact
	Receiver parcel.Contact

	PackageType     string
	PackageWeight   *float64
	DeliveryAddress string
	DeliveryLat     *float64
	DeliveryLng     *float64
	Cost            *float64

	RequestedDeliveryDate   string
	ApproximateDeliveryDate string
}

// CreateParcelCommand books a new parcel in Pending.
//
// Example:
//
//	cmd, err := NewCreateParcelCommand(actor, kernel.NewUUID(), input)
//	if err != nil {
//	    return err // first failing field
//	}
//	err = handler.Handle(ctx, cmd)
type CreateParcelCommand struct {
	actor      kernel.Actor
	parcelID   kernel.UUID
	customerID *kernel.UUID
	details    parcel.Details
	approx     *time.Time

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand parses and validates the input. Validation stops at the
// first failing field; nothing is persisted on failure.
func NewCreateParcelCommand(
	actor kernel.Actor,
	parcelID kernel.UUID,
	input CreateParcelInput,
) (CreateParcelCommand, error) {
	if err := errors.Join(actor.Validate(), parcelID.Validate()); err != nil {
		return CreateParcelCommand{}, err
	}

	var customerID *kernel.UUID
	if raw := strings.TrimSpace(input.CustomerID); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return CreateParcelCommand{}, errs.NewValueIsInvalidErrorWithCause("customerId", err)
		}
		customerID = &id
	}

	details, err := parseDetails(input)
	if err != nil {
		return CreateParcelCommand{}, err
	}

	var approx *time.Time
	if strings.TrimSpace(input.ApproximateDeliveryDate) != "" {
		t, parseErr := parcel.ParseDate("approximateDeliveryDate", input.ApproximateDeliveryDate)
		if parseErr != nil {
			return CreateParcelCommand{}, parseErr
		}
		approx = &t
	}

	return CreateParcelCommand{
		actor:      actor,
		parcelID:   parcelID,
		customerID: customerID,
		details:    details,
		approx:     approx,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func parseDetails(input CreateParcelInput) (parcel.Details, error) {
	for _, field := range []struct {
		name  string
		value *float64
	}{
		{"packageWeight", input.PackageWeight},
		{"deliveryLat", input.DeliveryLat},
		{"deliveryLng", input.DeliveryLng},
		{"cost", input.Cost},
	} {
		if field.value == nil {
			return parcel.Details{}, errs.NewValueIsRequiredError(field.name)
		}
	}

	destination, err := kernel.NewGeoPoint(*input.DeliveryLat, *input.DeliveryLng)
	if err != nil {
		return parcel.Details{}, err
	}

	requested, err := parcel.ParseDate("requestedDeliveryDate", input.RequestedDeliveryDate)
	if err != nil {
		return parcel.Details{}, err
	}

	return parcel.NewDetails(
		input.Sender,
		input.Receiver,
		input.PackageType,
		*input.PackageWeight,
		input.DeliveryAddress,
		destination,
		*input.Cost,
		requested,
	)
}

func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

func (c CreateParcelCommand) Actor() kernel.Actor {
	return c.actor
}

func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// CustomerID is the explicitly requested owner, nil when the client sent none.
func (c CreateParcelCommand) CustomerID() *kernel.UUID {
	return c.customerID
}

func (c CreateParcelCommand) Details() parcel.Details {
	return c.details
}

func (c CreateParcelCommand) ApproximateDeliveryDate() *time.Time {
	return c.approx
}
