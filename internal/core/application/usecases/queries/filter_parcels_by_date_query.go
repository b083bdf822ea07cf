package queries

import (
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/guard"

	"github.com/jinzhu/now"
)

var (
	ErrFilterParcelsByDateQueryIsNotConstructed = errors.New(
		"FilterParcelsByDateQuery must be created via NewFilterParcelsByDateQuery constructor",
	)
)

// FilterParcelsByDateQuery selects parcels created within [from, to], both ends inclusive.
// A date-only upper bound covers that whole day.
type FilterParcelsByDateQuery struct {
	actor kernel.Actor
	from  time.Time
	to    time.Time

	guard guard.ConstructorGuard
}

func NewFilterParcelsByDateQuery(actor kernel.Actor, dateFrom, dateTo string) (FilterParcelsByDateQuery, error) {
	if err := actor.Validate(); err != nil {
		return FilterParcelsByDateQuery{}, err
	}

	from, err := parcel.ParseDate("dateFrom", dateFrom)
	if err != nil {
		return FilterParcelsByDateQuery{}, err
	}
	to, err := parcel.ParseDate("dateTo", dateTo)
	if err != nil {
		return FilterParcelsByDateQuery{}, err
	}
	if parcel.IsDateOnly(dateTo) {
		to = now.With(to).EndOfDay()
	}

	return FilterParcelsByDateQuery{
		actor: actor,
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q FilterParcelsByDateQuery) Validate() error {
	return q.guard.Validate(ErrFilterParcelsByDateQueryIsNotConstructed)
}

func (q FilterParcelsByDateQuery) Actor() kernel.Actor {
	return q.actor
}

func (q FilterParcelsByDateQuery) From() time.Time {
	return q.from
}

func (q FilterParcelsByDateQuery) To() time.Time {
	return q.to
}
