// Package ports defines the contracts between the core and its adapters:
// repositories, the unit of work and the external payment processor.
package ports

import (
	"context"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a newly booked parcel.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel. The write is conditioned on the
	// version the aggregate was loaded at; a concurrent writer causes
	// errs.VersionIsInvalidError and nothing is written.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel by id without locking.
	// Returns errs.ObjectNotFoundError when no such parcel exists.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetForUpdate retrieves a parcel and holds a row lock until the surrounding
	// transaction ends. Every read-modify-write on a parcel goes through it.
	//
	// Example:
	//   p, err := uow.ParcelRepository().GetForUpdate(ctx, id)
	//   if err != nil {
	//       return err
	//   }
	//   if err = p.Cancel(actor.ID()); err != nil {
	//       return err
	//   }
	//   return uow.ParcelRepository().Update(ctx, p)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)
}
