// Package parcelrepo persists parcel aggregates and their status history.
// It converts between the aggregate and its relational representation.
package parcelrepo

import (
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO is the row stored in the parcels table. Status columns hold the
// domain enum values; version drives optimistic concurrency.
type ParcelDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID  `gorm:"type:uuid;not null;index"`
	DriverID   *uuid.UUID `gorm:"type:uuid;index"`

	Sender   ContactDTO `gorm:"embedded;embeddedPrefix:sender_"`
	Receiver ContactDTO `gorm:"embedded;embeddedPrefix:receiver_"`

	PackageType     string  `gorm:"not null"`
	PackageWeight   float64 `gorm:"not null"`
	DeliveryAddress string  `gorm:"not null"`
	DeliveryLat     float64 `gorm:"not null"`
	DeliveryLng     float64 `gorm:"not null"`
	Cost            float64 `gorm:"not null"`

	RequestedDeliveryDate   time.Time `gorm:"not null"`
	ApproximateDeliveryDate *time.Time

	Status        int    `gorm:"not null;index"`
	PaymentStatus int    `gorm:"not null"`
	PaymentID     string `gorm:"not null;default:''"`

	CreatedAt time.Time `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
	Version   int       `gorm:"not null;default:0"`
}

func (ParcelDTO) TableName() string {
	return "parcels"
}

// ContactDTO is a sender or receiver embedded in the parcel row.
type ContactDTO struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// StatusEventDTO is one row of the append-only status history.
type StatusEventDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID   uuid.UUID `gorm:"type:uuid;not null;index"`
	FromStatus int       `gorm:"not null"`
	ToStatus   int       `gorm:"not null"`
	ChangedBy  uuid.UUID `gorm:"type:uuid;not null"`
	ChangedAt  time.Time `gorm:"not null"`
}

func (StatusEventDTO) TableName() string {
	return "parcel_status_events"
}

func contactFromDomain(c parcel.Contact) ContactDTO {
	return ContactDTO{FirstName: c.FirstName, LastName: c.LastName, Email: c.Email, Phone: c.Phone}
}

func (c ContactDTO) toDomain() parcel.Contact {
	return parcel.Contact{FirstName: c.FirstName, LastName: c.LastName, Email: c.Email, Phone: c.Phone}
}

// fromDomain maps the aggregate to a row carrying the aggregate's current version.
func fromDomain(p *parcel.Parcel) ParcelDTO {
	var driverID *uuid.UUID
	if id := p.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	d := p.Details()
	return ParcelDTO{
		ID:                      p.ID().Bytes(),
		CustomerID:              p.CustomerID().Bytes(),
		DriverID:                driverID,
		Sender:                  contactFromDomain(d.Sender()),
		Receiver:                contactFromDomain(d.Receiver()),
		PackageType:             d.PackageType(),
		PackageWeight:           d.Weight(),
		DeliveryAddress:         d.DeliveryAddress(),
		DeliveryLat:             d.Destination().Lat(),
		DeliveryLng:             d.Destination().Lng(),
		Cost:                    d.Cost(),
		RequestedDeliveryDate:   d.RequestedDeliveryDate(),
		ApproximateDeliveryDate: p.ApproximateDeliveryDate(),
		Status:                  int(p.Status()),
		PaymentStatus:           int(p.PaymentStatus()),
		PaymentID:               p.PaymentID(),
		CreatedAt:               p.CreatedAt(),
		UpdatedAt:               p.UpdatedAt(),
		Version:                 p.Version(),
	}
}

// toDomain reconstructs the aggregate with RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	destination, err := kernel.NewGeoPoint(dto.DeliveryLat, dto.DeliveryLng)
	if err != nil {
		return nil, err
	}

	details, err := parcel.NewDetails(
		dto.Sender.toDomain(),
		dto.Receiver.toDomain(),
		dto.PackageType,
		dto.PackageWeight,
		dto.DeliveryAddress,
		destination,
		dto.Cost,
		dto.RequestedDeliveryDate.UTC(),
	)
	if err != nil {
		return nil, err
	}

	var approx *time.Time
	if dto.ApproximateDeliveryDate != nil {
		t := dto.ApproximateDeliveryDate.UTC()
		approx = &t
	}

	return parcel.RestoreParcel(parcel.Snapshot{
		ID:                      id,
		CustomerID:              customerID,
		DriverID:                driverID,
		Details:                 details,
		ApproximateDeliveryDate: approx,
		Status:                  parcel.Status(dto.Status),
		PaymentStatus:           parcel.PaymentStatus(dto.PaymentStatus),
		PaymentID:               dto.PaymentID,
		CreatedAt:               dto.CreatedAt.UTC(),
		UpdatedAt:               dto.UpdatedAt.UTC(),
		Version:                 dto.Version,
	})
}

func statusEventFromDomain(c parcel.StatusChange) StatusEventDTO {
	return StatusEventDTO{
		ID:         uuid.New(),
		ParcelID:   c.ParcelID.Bytes(),
		FromStatus: int(c.From),
		ToStatus:   int(c.To),
		ChangedBy:  c.ChangedBy.Bytes(),
		ChangedAt:  c.ChangedAt,
	}
}
