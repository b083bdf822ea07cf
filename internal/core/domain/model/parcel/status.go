package parcel

import (
	"fmt"
	"slices"
	"strings"

	"parcelhub/internal/pkg/errs"
)

// Status is the lifecycle state of a parcel.
//
// State transitions:
//
//	Pending ──┬──> OnTheWay ──┬──> Delivered
//	          │               ├──> Returned
//	          │               └──> Cancelled
//	          └──> Cancelled
//
// Delivered, Returned and Cancelled are terminal.
type Status int

const (
	// Unknown catches uninitialized values and is never persisted.
	Unknown Status = iota
	Pending
	OnTheWay
	Delivered
	Returned
	Cancelled
)

// transitions is the single source of truth for legal status moves.
// A state missing from the map, or mapped to an empty slice, has no way out.
var transitions = map[Status][]Status{
	Pending:   {OnTheWay, Cancelled},
	OnTheWay:  {Delivered, Returned, Cancelled},
	Delivered: {},
	Returned:  {},
	Cancelled: {},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		OnTheWay:  "On The Way",
		Delivered: "Delivered",
		Returned:  "Returned",
		Cancelled: "Cancelled",
	}
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, OnTheWay, Delivered, Returned, Cancelled}
}

// StatusFromString parses the wire name of a status. "OnTheWay" is accepted
// alongside "On The Way"; matching ignores case.
func StatusFromString(s string) (Status, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "")
	for _, status := range AllStatuses() {
		if strings.ReplaceAll(strings.ToLower(status.String()), " ", "") == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values, e.g. a corrupt database row.
func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name. It is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// CanTransitionTo reports whether next is listed for s in the transition table.
func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}

// TransitionTo returns next when the move is legal, or an InvalidTransitionError
// naming both statuses. The receiver is never changed.
func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return s, errs.NewInvalidTransitionError(s.String(), next.String())
	}
	return next, nil
}
