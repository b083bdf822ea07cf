package parcel

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

// Contact is a sender or receiver as printed on the label.
type Contact struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// FullName joins first and last name.
func (c Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

func (c Contact) validate(prefix string) error {
	for _, field := range []struct {
		name  string
		value string
	}{
		{prefix + "FirstName", c.FirstName},
		{prefix + "LastName", c.LastName},
		{prefix + "Email", c.Email},
		{prefix + "Phone", c.Phone},
	} {
		if strings.TrimSpace(field.value) == "" {
			return errs.NewValueIsRequiredError(field.name)
		}
	}
	return nil
}

// Details are the descriptive fields captured when a parcel is booked.
// Validation stops at the first failing field so the caller sees one reason.
type Details struct {
	sender                Contact
	receiver              Contact
	packageType           string
	weight                float64
	deliveryAddress       string
	destination           kernel.GeoPoint
	cost                  float64
	requestedDeliveryDate time.Time
}

// NewDetails validates every descriptive field: contacts and address present,
// weight finite and > 0, cost finite and >= 0, destination constructed,
// requested delivery date set.
func NewDetails(
	sender, receiver Contact,
	packageType string,
	weight float64,
	deliveryAddress string,
	destination kernel.GeoPoint,
	cost float64,
	requestedDeliveryDate time.Time,
) (Details, error) {
	d := Details{
		sender:                sender,
		receiver:              receiver,
		packageType:           strings.TrimSpace(packageType),
		weight:                weight,
		deliveryAddress:       strings.TrimSpace(deliveryAddress),
		destination:           destination,
		cost:                  cost,
		requestedDeliveryDate: requestedDeliveryDate,
	}

	if err := d.validate(); err != nil {
		return Details{}, err
	}
	return d, nil
}

func (d Details) validate() error {
	if err := d.sender.validate("sender"); err != nil {
		return err
	}
	if err := d.receiver.validate("receiver"); err != nil {
		return err
	}
	if d.packageType == "" {
		return errs.NewValueIsRequiredError("packageType")
	}
	if d.deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	if math.IsNaN(d.weight) || math.IsInf(d.weight, 0) || d.weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("packageWeight",
			fmt.Errorf("%v is not a finite number greater than 0", d.weight))
	}
	if err := d.destination.Validate(); err != nil {
		return err
	}
	if math.IsNaN(d.cost) || math.IsInf(d.cost, 0) || d.cost < 0 {
		return errs.NewValueIsInvalidErrorWithCause("cost",
			fmt.Errorf("%v is not a finite number of at least 0", d.cost))
	}
	if d.requestedDeliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("requestedDeliveryDate")
	}
	return nil
}

func (d Details) Sender() Contact {
	return d.sender
}

func (d Details) Receiver() Contact {
	return d.receiver
}

func (d Details) PackageType() string {
	return d.packageType
}

func (d Details) Weight() float64 {
	return d.weight
}

func (d Details) DeliveryAddress() string {
	return d.deliveryAddress
}

func (d Details) Destination() kernel.GeoPoint {
	return d.destination
}

func (d Details) Cost() float64 {
	return d.cost
}

func (d Details) RequestedDeliveryDate() time.Time {
	return d.requestedDeliveryDate
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

// ParseDate parses a client-supplied instant. RFC 3339 timestamps keep their
// offset; bare dates and local timestamps are read as UTC.
func ParseDate(field, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errs.NewValueIsRequiredError(field)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errs.NewValueIsInvalidErrorWithCause(field, errors.New("not a valid date"))
}

// IsDateOnly reports whether raw carries no time-of-day component.
func IsDateOnly(raw string) bool {
	_, err := time.Parse(time.DateOnly, strings.TrimSpace(raw))
	return err == nil
}
