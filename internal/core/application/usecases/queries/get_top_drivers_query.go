package queries

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

// TopDriversLimit is the size of the public leaderboard.
const TopDriversLimit = 3

var (
	ErrGetTopDriversQueryIsNotConstructed = errors.New(
		"GetTopDriversQuery must be created via NewGetTopDriversQuery constructor",
	)
)

// GetTopDriversQuery ranks drivers by delivered parcels, then by average rating.
// Drivers absent from the users projection are not ranked.
type GetTopDriversQuery struct {
	guard guard.ConstructorGuard
}

func NewGetTopDriversQuery() GetTopDriversQuery {
	return GetTopDriversQuery{guard: guard.NewConstructorGuard()}
}

func (q GetTopDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetTopDriversQueryIsNotConstructed)
}

type TopDriverView struct {
	DriverID               kernel.UUID
	Name                   string
	Photo                  string
	TotalPackagesDelivered int64
	AverageRating          float64
}
