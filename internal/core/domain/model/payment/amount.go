package payment

import (
	"errors"
	"fmt"
	"math"

	"parcelhub/internal/pkg/errs"
)

// maxMinorUnits is the largest amount the processor accepts (99,999,999.99 in major units).
const maxMinorUnits = 99_999_999_99

// ToMinorUnits converts a major-unit price to the processor's integer minor units,
// rounding half away from zero. Amounts that are not finite or that round to
// zero or less are rejected.
func ToMinorUnits(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, errs.NewValueIsInvalidErrorWithCause("price", errors.New("must be a finite number"))
	}

	minor := math.Round(amount * 100)
	if minor <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not greater than 0", amount))
	}
	if minor > maxMinorUnits {
		return 0, errs.NewValueIsOutOfRangeError("price", amount, 0.01, float64(maxMinorUnits)/100)
	}

	return int64(minor), nil
}
