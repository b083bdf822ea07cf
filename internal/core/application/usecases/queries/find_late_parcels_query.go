package queries

import (
	"errors"
	"time"

	"parcelhub/internal/pkg/guard"
)

var (
	ErrFindLateParcelsQueryIsNotConstructed = errors.New(
		"FindLateParcelsQuery must be created via NewFindOverdueParcelsQuery or NewFindStalePendingParcelsQuery",
	)
)

type lateness int

const (
	overdueDelivery lateness = iota + 1
	stalePending
)

// FindLateParcelsQuery is the system read behind the watchers. Overdue parcels are
// On The Way past their approximate delivery date; stale ones are still Pending
// past their requested delivery date.
type FindLateParcelsQuery struct {
	kind  lateness
	asOf  time.Time
	limit int

	guard guard.ConstructorGuard
}

// NewFindOverdueParcelsQuery selects up to limit On The Way parcels late as of asOf.
func NewFindOverdueParcelsQuery(asOf time.Time, limit int) FindLateParcelsQuery {
	return FindLateParcelsQuery{kind: overdueDelivery, asOf: asOf, limit: limit, guard: guard.NewConstructorGuard()}
}

// NewFindStalePendingParcelsQuery selects up to limit Pending parcels late as of asOf.
func NewFindStalePendingParcelsQuery(asOf time.Time, limit int) FindLateParcelsQuery {
	return FindLateParcelsQuery{kind: stalePending, asOf: asOf, limit: limit, guard: guard.NewConstructorGuard()}
}

func (q FindLateParcelsQuery) Validate() error {
	return q.guard.Validate(ErrFindLateParcelsQueryIsNotConstructed)
}

func (q FindLateParcelsQuery) AsOf() time.Time {
	return q.asOf
}
