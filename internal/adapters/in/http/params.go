package http

import (
	"strings"

	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// queryParam binds an optional form-style query parameter. dest stays nil
// when the parameter is absent.
func queryParam[T any](c echo.Context, name string, dest **T) error {
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), dest); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return nil
}

// pageParams reads page and limit. Without a limit the listing is not paginated.
func pageParams(c echo.Context) (queries.Page, error) {
	var number, size *int
	if err := queryParam(c, "page", &number); err != nil {
		return queries.Page{}, err
	}
	if err := queryParam(c, "limit", &size); err != nil {
		return queries.Page{}, err
	}

	page := queries.AllRows
	if size != nil {
		page.Size = *size
	}
	if number != nil {
		page.Number = *number
	}
	return page, nil
}

func parcelFilterParams(c echo.Context) (queries.ParcelFilter, error) {
	var status, paymentStatus, driverID, customerID *string
	for name, dest := range map[string]**string{
		"status":        &status,
		"paymentStatus": &paymentStatus,
		"driverId":      &driverID,
		"customerId":    &customerID,
	} {
		if err := queryParam(c, name, dest); err != nil {
			return queries.ParcelFilter{}, err
		}
	}

	var filter queries.ParcelFilter
	if status != nil {
		s, err := parcel.StatusFromString(*status)
		if err != nil {
			return queries.ParcelFilter{}, err
		}
		filter.Status = &s
	}
	if paymentStatus != nil {
		s, err := parcel.PaymentStatusFromString(*paymentStatus)
		if err != nil {
			return queries.ParcelFilter{}, err
		}
		filter.PaymentStatus = &s
	}
	var err error
	if filter.DriverID, err = optionalID("driverId", driverID); err != nil {
		return queries.ParcelFilter{}, err
	}
	if filter.CustomerID, err = optionalID("customerId", customerID); err != nil {
		return queries.ParcelFilter{}, err
	}
	return filter, nil
}

func optionalID(name string, raw *string) (*kernel.UUID, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(strings.TrimSpace(*raw))
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return &id, nil
}

// pathID parses a UUID path parameter.
func pathID(c echo.Context, name string) (kernel.UUID, error) {
	raw := strings.TrimSpace(c.Param(name))
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(name)
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}
