package commands

import (
	"context"
	"errors"
	"time"

	"parcelhub/internal/pkg/errs"
)

const (
	paymentProcessor      = "payment processor"
	defaultPaymentTimeout = 10 * time.Second
)

// PaymentSettings tune how payment commands talk to the external processor.
type PaymentSettings struct {
	Currency string
	// Timeout bounds every processor call.
	Timeout time.Duration
	// VerifyConfirmations makes ConfirmPayment fetch the intent before trusting
	// the client's token.
	VerifyConfirmations bool
}

func (s PaymentSettings) timeout() time.Duration {
	if s.Timeout <= 0 {
		return defaultPaymentTimeout
	}
	return s.Timeout
}

// asDependencyError classifies a processor failure. Errors the gateway already
// classified pass through.
func asDependencyError(err error) error {
	if errors.Is(err, errs.ErrDependency) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errs.NewDependencyTimeoutError(paymentProcessor, err)
	}
	return errs.NewDependencyError(paymentProcessor, err)
}
