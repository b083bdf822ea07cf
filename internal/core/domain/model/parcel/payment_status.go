package parcel

import (
	"fmt"
	"strings"

	"parcelhub/internal/pkg/errs"
)

// PaymentStatus tracks reconciliation of the parcel's cost with the payment processor.
// It moves independently of Status.
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	PaymentPending
	PaymentCompleted
	PaymentFailed
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:   "Unknown",
		PaymentPending:   "Pending",
		PaymentCompleted: "Completed",
		PaymentFailed:    "Failed",
	}
}

func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, name := range getPaymentStatusStrings() {
		if status != PaymentUnknown && strings.EqualFold(name, strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

func (s PaymentStatus) Validate() error {
	if s != PaymentPending && s != PaymentCompleted && s != PaymentFailed {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
