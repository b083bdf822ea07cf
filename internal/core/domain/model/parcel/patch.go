package parcel

import (
	"time"

	"parcelhub/internal/core/domain/model/kernel"
)

// Patch lists the fields the generic edit path may change. Status, assignment,
// ownership and payment fields are deliberately absent; they move only through
// their dedicated operations. A nil field is left untouched.
type Patch struct {
	SenderFirstName   *string
	SenderLastName    *string
	SenderEmail       *string
	SenderPhone       *string
	ReceiverFirstName *string
	ReceiverLastName  *string
	ReceiverEmail     *string
	ReceiverPhone     *string

	PackageType     *string
	PackageWeight   *float64
	DeliveryAddress *string
	DeliveryLat     *float64
	DeliveryLng     *float64
	Cost            *float64

	RequestedDeliveryDate   *time.Time
	ApproximateDeliveryDate *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

// applyTo overlays the patch on d and revalidates the result as a whole.
func (p Patch) applyTo(d Details) (Details, error) {
	sender, receiver := d.sender, d.receiver
	setString(&sender.FirstName, p.SenderFirstName)
	setString(&sender.LastName, p.SenderLastName)
	setString(&sender.Email, p.SenderEmail)
	setString(&sender.Phone, p.SenderPhone)
	setString(&receiver.FirstName, p.ReceiverFirstName)
	setString(&receiver.LastName, p.ReceiverLastName)
	setString(&receiver.Email, p.ReceiverEmail)
	setString(&receiver.Phone, p.ReceiverPhone)

	packageType, address := d.packageType, d.deliveryAddress
	setString(&packageType, p.PackageType)
	setString(&address, p.DeliveryAddress)

	weight, cost := d.weight, d.cost
	if p.PackageWeight != nil {
		weight = *p.PackageWeight
	}
	if p.Cost != nil {
		cost = *p.Cost
	}

	destination := d.destination
	if p.DeliveryLat != nil || p.DeliveryLng != nil {
		lat, lng := destination.Lat(), destination.Lng()
		if p.DeliveryLat != nil {
			lat = *p.DeliveryLat
		}
		if p.DeliveryLng != nil {
			lng = *p.DeliveryLng
		}
		point, err := kernel.NewGeoPoint(lat, lng)
		if err != nil {
			return Details{}, err
		}
		destination = point
	}

	requested := d.requestedDeliveryDate
	if p.RequestedDeliveryDate != nil {
		requested = *p.RequestedDeliveryDate
	}

	return NewDetails(sender, receiver, packageType, weight, address, destination, cost, requested)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
