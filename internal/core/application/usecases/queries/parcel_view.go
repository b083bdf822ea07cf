// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models built with gorm directly against the tables;
// they never load aggregates and never take locks.
package queries

import (
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParcelView is the read model of a parcel with the display names of its parties.
type ParcelView struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	CustomerName string
	DriverID     *kernel.UUID
	DriverName   string

	Sender   parcel.Contact
	Receiver parcel.Contact

	PackageType     string
	PackageWeight   float64
	DeliveryAddress string
	DeliveryLat     float64
	DeliveryLng     float64
	Cost            float64

	RequestedDeliveryDate   time.Time
	ApproximateDeliveryDate *time.Time

	Status        parcel.Status
	PaymentStatus parcel.PaymentStatus
	PaymentID     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Page selects a window of a newest-first listing. Number starts at 1.
// A Size of zero or less disables pagination and returns everything.
type Page struct {
	Number int
	Size   int
}

// AllRows is the Page that disables pagination.
var AllRows = Page{}

func (p Page) apply(db *gorm.DB) *gorm.DB {
	if p.Size <= 0 {
		return db
	}
	number := max(p.Number, 1)
	return db.Offset((number - 1) * p.Size).Limit(p.Size)
}

// parcelRow is the flat scan target of parcelViews.
type parcelRow struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	CustomerName *string
	DriverID     *uuid.UUID
	DriverName   *string

	SenderFirstName   string
	SenderLastName    string
	SenderEmail       string
	SenderPhone       string
	ReceiverFirstName string
	ReceiverLastName  string
	ReceiverEmail     string
	ReceiverPhone     string

	PackageType     string
	PackageWeight   float64
	DeliveryAddress string
	DeliveryLat     float64
	DeliveryLng     float64
	Cost            float64

	RequestedDeliveryDate   time.Time
	ApproximateDeliveryDate *time.Time

	Status        int
	PaymentStatus int
	PaymentID     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// parcelViews starts a select of parcels joined with the users projection.
// Parties missing from the projection keep an empty display name.
func parcelViews(db *gorm.DB) *gorm.DB {
	return db.Table("parcels AS p").
		Select(`p.id, p.customer_id, c.name AS customer_name, p.driver_id, d.name AS driver_name,
			p.sender_first_name, p.sender_last_name, p.sender_email, p.sender_phone,
			p.receiver_first_name, p.receiver_last_name, p.receiver_email, p.receiver_phone,
			p.package_type, p.package_weight, p.delivery_address, p.delivery_lat, p.delivery_lng, p.cost,
			p.requested_delivery_date, p.approximate_delivery_date,
			p.status, p.payment_status, p.payment_id, p.created_at, p.updated_at`).
		Joins("LEFT JOIN users AS c ON c.id = p.customer_id").
		Joins("LEFT JOIN users AS d ON d.id = p.driver_id")
}

// newestFirst is the listing order of every parcel listing.
const newestFirst = "p.created_at DESC, p.id"

func scanParcelViews(db *gorm.DB) ([]ParcelView, error) {
	var rows []parcelRow
	if err := db.Scan(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]ParcelView, 0, len(rows))
	for _, row := range rows {
		view, err := row.toView()
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (r parcelRow) toView() (ParcelView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return ParcelView{}, err
	}
	customerID, err := kernel.UUIDFromBytes(r.CustomerID[:])
	if err != nil {
		return ParcelView{}, err
	}

	view := ParcelView{
		ID:           id,
		CustomerID:   customerID,
		CustomerName: deref(r.CustomerName),
		DriverName:   deref(r.DriverName),
		Sender: parcel.Contact{
			FirstName: r.SenderFirstName,
			LastName:  r.SenderLastName,
			Email:     r.SenderEmail,
			Phone:     r.SenderPhone,
		},
		Receiver: parcel.Contact{
			FirstName: r.ReceiverFirstName,
			LastName:  r.ReceiverLastName,
			Email:     r.ReceiverEmail,
			Phone:     r.ReceiverPhone,
		},
		PackageType:             r.PackageType,
		PackageWeight:           r.PackageWeight,
		DeliveryAddress:         r.DeliveryAddress,
		DeliveryLat:             r.DeliveryLat,
		DeliveryLng:             r.DeliveryLng,
		Cost:                    r.Cost,
		RequestedDeliveryDate:   r.RequestedDeliveryDate,
		ApproximateDeliveryDate: r.ApproximateDeliveryDate,
		Status:                  parcel.Status(r.Status),
		PaymentStatus:           parcel.PaymentStatus(r.PaymentStatus),
		PaymentID:               r.PaymentID,
		CreatedAt:               r.CreatedAt,
		UpdatedAt:               r.UpdatedAt,
	}

	if r.DriverID != nil {
		driverID, idErr := kernel.UUIDFromBytes(r.DriverID[:])
		if idErr != nil {
			return ParcelView{}, idErr
		}
		view.DriverID = &driverID
	}
	return view, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// noResults is the NotFound reported by listings that treat an empty result as missing.
func noResults(what, scope string) error {
	return errs.NewObjectNotFoundError(what, scope)
}
