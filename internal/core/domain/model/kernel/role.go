package kernel

import (
	"fmt"
	"strings"

	"parcelhub/internal/pkg/errs"
)

// Role is the capability class an identity carries. It comes from the identity
// service and is never assigned by this system.
type Role int

const (
	UnknownRole Role = iota
	Customer
	Agent
	DeliveryDriver
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole:    "Unknown",
		Customer:       "Customer",
		Agent:          "Agent",
		DeliveryDriver: "DeliveryDriver",
	}
}

// RoleFromString parses a role name case-insensitively. "User" is the identity
// service's historical name for customers and maps to Customer.
func RoleFromString(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "customer", "user":
		return Customer, nil
	case "agent":
		return Agent, nil
	case "deliverydriver", "delivery_driver", "driver":
		return DeliveryDriver, nil
	default:
		return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
	}
}

func (r Role) Validate() error {
	if r != Customer && r != Agent && r != DeliveryDriver {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
