package http

import (
	"errors"
	"reflect"
	"strings"

	"parcelhub/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// CustomValidator adapts validator/v10 to echo.Validator. Field errors are
// reported under their JSON names.
type CustomValidator struct {
	Validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{Validator: v}
}

func (cv *CustomValidator) Validate(i any) error {
	err := cv.Validator.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	first := fieldErrs[0]
	if first.Tag() == "required" {
		return errs.NewValueIsRequiredError(first.Field())
	}
	return errs.NewValueIsInvalidErrorWithCause(first.Field(), first)
}
