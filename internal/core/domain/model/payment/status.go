package payment

import (
	"fmt"

	"parcelhub/internal/pkg/errs"
)

// Status is the outcome recorded on a ledger row.
type Status int

const (
	Unknown Status = iota
	Success
	Failed
)

func (s Status) Validate() error {
	if s != Success && s != Failed {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	switch s {
	case Success:
		return "Success"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}
