package parcel

import (
	"time"

	"parcelhub/internal/core/domain/model/kernel"
)

// StatusChange records one applied move. From is Unknown for the initial Pending.
// Parcels accumulate changes until the unit of work drains them into the history table.
type StatusChange struct {
	ParcelID  kernel.UUID
	From      Status
	To        Status
	ChangedBy kernel.UUID
	ChangedAt time.Time
}
