package userrepo

import (
	"context"
	"time"

	"parcelhub/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed upserts users by id. Roles are normalised to their canonical names so
// reports can filter on them.
func Seed(ctx context.Context, db *gorm.DB, users []UserDTO) (int, error) {
	if len(users) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	for i := range users {
		role, err := kernel.RoleFromString(users[i].Role)
		if err != nil {
			return 0, err
		}
		users[i].Role = role.String()
		if users[i].CreatedAt.IsZero() {
			users[i].CreatedAt = now
		}
	}

	result := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "email", "role", "photo_url"}),
		}).
		Create(&users)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(result.RowsAffected), nil
}
