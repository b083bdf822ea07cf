package jobs

import (
	"context"

	"parcelhub/internal/core/application/usecases/queries"
)

// scanLimit caps how many late parcels one tick reports.
const scanLimit = 100

// LateParcelsFinder is the read side the watchers poll.
type LateParcelsFinder interface {
	Handle(ctx context.Context, query queries.FindLateParcelsQuery) ([]queries.ParcelView, error)
}
