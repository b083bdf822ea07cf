package services

import (
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/errs"
)

// Operation names an action subject to authorization.
type Operation string

const (
	OpCreateParcel      Operation = "create package"
	OpEditParcel        Operation = "edit package"
	OpTransitionParcel  Operation = "change package status"
	OpAssignDriver      Operation = "assign driver"
	OpCancelParcel      Operation = "cancel package"
	OpSubmitRating      Operation = "submit rating"
	OpInitiatePayment   Operation = "initiate payment"
	OpConfirmPayment    Operation = "confirm payment"
	OpViewParcel        Operation = "view package"
	OpListOwnParcels    Operation = "list customer packages"
	OpListAllParcels    Operation = "list all packages"
	OpFilterParcels     Operation = "filter packages by date"
	OpListDeliveries    Operation = "list driver deliveries"
	OpListDriverRatings Operation = "list driver ratings"
	OpListDrivers       Operation = "list delivery drivers"
	OpViewStatsSeries   Operation = "view delivery statistics"
)

type roleSet map[kernel.Role]bool

func roles(rs ...kernel.Role) roleSet {
	set := make(roleSet, len(rs))
	for _, r := range rs {
		set[r] = true
	}
	return set
}

// permissions is the authorization table. An operation missing here is denied to everyone.
var permissions = map[Operation]roleSet{
	OpCreateParcel:      roles(kernel.Customer, kernel.Agent),
	OpEditParcel:        roles(kernel.Customer, kernel.Agent),
	OpTransitionParcel:  roles(kernel.Agent, kernel.DeliveryDriver),
	OpAssignDriver:      roles(kernel.Agent),
	OpCancelParcel:      roles(kernel.Customer),
	OpSubmitRating:      roles(kernel.Customer),
	OpInitiatePayment:   roles(kernel.Customer),
	OpConfirmPayment:    roles(kernel.Customer, kernel.Agent),
	OpViewParcel:        roles(kernel.Customer, kernel.Agent, kernel.DeliveryDriver),
	OpListOwnParcels:    roles(kernel.Customer, kernel.Agent),
	OpListAllParcels:    roles(kernel.Agent),
	OpFilterParcels:     roles(kernel.Agent),
	OpListDeliveries:    roles(kernel.DeliveryDriver),
	OpListDriverRatings: roles(kernel.DeliveryDriver),
	OpListDrivers:       roles(kernel.Agent),
	OpViewStatsSeries:   roles(kernel.Agent),
}

// AccessPolicy answers role and ownership questions. It is stateless.
//
// Example:
//
//	policy := services.NewAccessPolicy()
//	if err := policy.Authorize(actor, services.OpAssignDriver); err != nil {
//	    return err // *errs.ForbiddenError
//	}
type AccessPolicy struct{}

func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// Allows reports whether role may perform op according to the table.
func (AccessPolicy) Allows(role kernel.Role, op Operation) bool {
	return permissions[op][role]
}

// Authorize returns a ForbiddenError unless the actor's role may perform op.
func (p AccessPolicy) Authorize(actor kernel.Actor, op Operation) error {
	if err := actor.Validate(); err != nil {
		return errs.NewForbiddenError(string(op), "no authenticated actor")
	}
	if !p.Allows(actor.Role(), op) {
		return errs.NewForbiddenError(string(op), "role "+actor.Role().String()+" is not allowed")
	}
	return nil
}

// AuthorizeOnParcel applies Authorize and then the ownership rule for op:
// customers act on parcels they booked, drivers on parcels assigned to them,
// agents on any parcel. Cancel ownership is enforced by the aggregate itself.
func (p AccessPolicy) AuthorizeOnParcel(actor kernel.Actor, op Operation, target *parcel.Parcel) error {
	if err := p.Authorize(actor, op); err != nil {
		return err
	}
	return p.checkOwnership(actor, op, target.CustomerID(), target.DriverID())
}

// AuthorizeView is AuthorizeOnParcel for read models that carry only the party ids.
func (p AccessPolicy) AuthorizeView(actor kernel.Actor, customerID kernel.UUID, driverID *kernel.UUID) error {
	if err := p.Authorize(actor, OpViewParcel); err != nil {
		return err
	}
	return p.checkOwnership(actor, OpViewParcel, customerID, driverID)
}

// AuthorizeCustomerScope lets a customer read only their own listings; agents read anyone's.
func (p AccessPolicy) AuthorizeCustomerScope(actor kernel.Actor, op Operation, customerID kernel.UUID) error {
	if err := p.Authorize(actor, op); err != nil {
		return err
	}
	if actor.Is(kernel.Customer) && !actor.IsSelf(customerID) {
		return errs.NewForbiddenError(string(op), "customers may only access their own packages")
	}
	return nil
}

func (AccessPolicy) checkOwnership(
	actor kernel.Actor,
	op Operation,
	customerID kernel.UUID,
	driverID *kernel.UUID,
) error {
	switch actor.Role() {
	case kernel.Customer:
		if !actor.IsSelf(customerID) {
			return errs.NewForbiddenError(string(op), "package belongs to another customer")
		}
	case kernel.DeliveryDriver:
		if driverID == nil || !actor.IsSelf(*driverID) {
			return errs.NewForbiddenError(string(op), "package is not assigned to this driver")
		}
	case kernel.Agent, kernel.UnknownRole:
	}
	return nil
}
