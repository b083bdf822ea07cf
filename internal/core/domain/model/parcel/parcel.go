package parcel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel bypassed NewParcel/RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

	// ErrEditRequiresPending is the message customers see when editing a parcel in flight.
	ErrEditRequiresPending = errs.NewInvalidStateError("Package can only be updated when status is Pending")
)

// Parcel is the aggregate root of the delivery lifecycle. All mutations go through
// its methods so that the transition table and state guards always apply.
//
// Invariants:
//   - status changes only along the transition table
//   - descriptive fields change only while Pending
//   - a terminal parcel accepts no status change and no edit
//   - driverID is set once the parcel has been assigned
type Parcel struct {
	id         kernel.UUID
	customerID kernel.UUID
	driverID   *kernel.UUID

	details                 Details
	approximateDeliveryDate *time.Time

	status        Status
	paymentStatus PaymentStatus
	paymentID     string

	createdAt time.Time
	updatedAt time.Time

	// version is the persisted revision the aggregate was loaded at.
	version int

	changes       []StatusChange
	isConstructed bool
}

// NewParcel books a parcel for customerID in Pending with payment Pending.
// createdBy is the actor recorded in the status history: the customer
// or the agent booking on their behalf.
//
// Example:
//
//	details, _ := parcel.NewDetails(sender, receiver, "Box", 2.5, "Main St 1", pin, 13, requested)
//	p, err := parcel.NewParcel(kernel.NewUUID(), customerID, details, nil, actor.ID())
func NewParcel(
	id kernel.UUID,
	customerID kernel.UUID,
	details Details,
	approximateDeliveryDate *time.Time,
	createdBy kernel.UUID,
) (*Parcel, error) {
	if err := errors.Join(id.Validate(), customerID.Validate(), details.validate()); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &Parcel{
		id:                      id,
		customerID:              customerID,
		details:                 details,
		approximateDeliveryDate: approximateDeliveryDate,
		status:                  Pending,
		paymentStatus:           PaymentPending,
		createdAt:               now,
		updatedAt:               now,
		isConstructed:           true,
	}
	p.record(Unknown, Pending, createdBy, now)

	return p, nil
}

// Snapshot carries persisted state into RestoreParcel.
type Snapshot struct {
	ID                      kernel.UUID
	CustomerID              kernel.UUID
	DriverID                *kernel.UUID
	Details                 Details
	ApproximateDeliveryDate *time.Time
	Status                  Status
	PaymentStatus           PaymentStatus
	PaymentID               string
	CreatedAt               time.Time
	UpdatedAt               time.Time
	Version                 int
}

// RestoreParcel rebuilds a parcel from storage without recording history.
func RestoreParcel(s Snapshot) (*Parcel, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.CustomerID.Validate(),
		s.Details.validate(),
		s.Status.Validate(),
		s.PaymentStatus.Validate(),
	); err != nil {
		return nil, err
	}
	if s.DriverID != nil {
		if err := s.DriverID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Parcel{
		id:                      s.ID,
		customerID:              s.CustomerID,
		driverID:                s.DriverID,
		details:                 s.Details,
		approximateDeliveryDate: s.ApproximateDeliveryDate,
		status:                  s.Status,
		paymentStatus:           s.PaymentStatus,
		paymentID:               s.PaymentID,
		createdAt:               s.CreatedAt,
		updatedAt:               s.UpdatedAt,
		version:                 s.Version,
		isConstructed:           true,
	}, nil
}

func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

func (p *Parcel) ID() kernel.UUID {
	return p.id
}

func (p *Parcel) CustomerID() kernel.UUID {
	return p.customerID
}

func (p *Parcel) DriverID() *kernel.UUID {
	return p.driverID
}

func (p *Parcel) Details() Details {
	return p.details
}

func (p *Parcel) ApproximateDeliveryDate() *time.Time {
	return p.approximateDeliveryDate
}

func (p *Parcel) Status() Status {
	return p.status
}

func (p *Parcel) PaymentStatus() PaymentStatus {
	return p.paymentStatus
}

func (p *Parcel) PaymentID() string {
	return p.paymentID
}

func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Parcel) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Parcel) Version() int {
	return p.version
}

func (p *Parcel) IsOwnedBy(customerID kernel.UUID) bool {
	return p.customerID.IsEqual(customerID)
}

// IsAssignedTo reports whether driverID is the parcel's current driver.
func (p *Parcel) IsAssignedTo(driverID kernel.UUID) bool {
	return p.driverID != nil && p.driverID.IsEqual(driverID)
}

// Edit applies an allow-listed patch. Only Pending parcels are editable;
// every other status fails with the same InvalidStateError whatever the patch holds.
func (p *Parcel) Edit(patch Patch) error {
	if p.status != Pending {
		return ErrEditRequiresPending
	}

	details, err := patch.applyTo(p.details)
	if err != nil {
		return err
	}

	p.details = details
	if patch.ApproximateDeliveryDate != nil {
		approx := *patch.ApproximateDeliveryDate
		p.approximateDeliveryDate = &approx
	}
	p.touch()
	return nil
}

// TransitionTo moves the parcel to target if the transition table allows it.
// A rejected move changes nothing, so repeating it fails identically.
func (p *Parcel) TransitionTo(target Status, by kernel.UUID) error {
	if err := target.Validate(); err != nil {
		return err
	}

	next, err := p.status.TransitionTo(target)
	if err != nil {
		return err
	}

	p.apply(next, by)
	return nil
}

// AssignDriver binds a driver and expected delivery date and puts the parcel
// On The Way. Reassigning a parcel already On The Way keeps its status.
func (p *Parcel) AssignDriver(driverID kernel.UUID, deliveryDate time.Time, by kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driverId", err)
	}
	if deliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("deliveryDate")
	}
	if p.status.IsTerminal() {
		return errs.NewInvalidStateError(
			fmt.Sprintf("Cannot assign a driver to a package that is %s.", p.status))
	}

	from := p.status
	if from != OnTheWay {
		if _, err := from.TransitionTo(OnTheWay); err != nil {
			return err
		}
	}

	id := driverID
	date := deliveryDate
	p.driverID = &id
	p.approximateDeliveryDate = &date

	if from == OnTheWay {
		p.touch()
		return nil
	}
	p.apply(OnTheWay, by)
	return nil
}

// Cancel is reserved for the owning customer and allowed from Pending or On The Way.
// Ownership is checked first: a stranger is refused even when the state would allow it.
func (p *Parcel) Cancel(by kernel.UUID) error {
	if !p.IsOwnedBy(by) {
		return errs.NewForbiddenError("cancel package", "only the customer who booked it may cancel")
	}
	if p.status != Pending && p.status != OnTheWay {
		return errs.NewInvalidStateError(
			fmt.Sprintf("Package cannot be cancelled when status is %s.", p.status))
	}

	p.apply(Cancelled, by)
	return nil
}

// MarkPaid records an external confirmation token. Repeating it with a new token
// overwrites the previous one.
func (p *Parcel) MarkPaid(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errs.NewValueIsRequiredError("paymentId")
	}

	p.paymentStatus = PaymentCompleted
	p.paymentID = token
	p.touch()
	return nil
}

// PopStatusChanges returns and clears the changes recorded since load.
func (p *Parcel) PopStatusChanges() []StatusChange {
	changes := p.changes
	p.changes = nil
	return changes
}

func (p *Parcel) apply(next Status, by kernel.UUID) {
	from := p.status
	p.status = next
	p.touch()
	p.record(from, next, by, p.updatedAt)
}

func (p *Parcel) record(from, to Status, by kernel.UUID, at time.Time) {
	p.changes = append(p.changes, StatusChange{
		ParcelID:  p.id,
		From:      from,
		To:        to,
		ChangedBy: by,
		ChangedAt: at,
	})
}

func (p *Parcel) touch() {
	p.updatedAt = time.Now().UTC()
}
