// Package userrepo owns the read-only identity projection joined by reports.
// Rows are written only by the seed tool; the service never mutates them.
package userrepo

import (
	"time"

	"github.com/google/uuid"
)

// UserDTO is a row of the users projection.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"_id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null;uniqueIndex" json:"email"`
	Role      string    `gorm:"not null;index" json:"role"`
	PhotoURL  string    `gorm:"not null;default:''" json:"photo"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

func (UserDTO) TableName() string {
	return "users"
}
