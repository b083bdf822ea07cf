package postgres

import (
	"parcelhub/internal/adapters/out/postgres/parcelrepo"
	"parcelhub/internal/adapters/out/postgres/paymentrepo"
	"parcelhub/internal/adapters/out/postgres/ratingrepo"
	"parcelhub/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every table the service owns or reads, in creation order.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&parcelrepo.ParcelDTO{},
		&parcelrepo.StatusEventDTO{},
		&ratingrepo.RatingDTO{},
		&paymentrepo.PaymentDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// TruncateAll empties every table. Used by integration tests and the seed tool's reset.
func TruncateAll(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE payments, ratings, parcel_status_events, parcels, users").Error
}
