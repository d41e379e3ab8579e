package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PersonModel is the GORM-specific struct for the 'person' table.
// Column defaults (id, created_at, updated_at) are owned by the migration; the service
// always sends an id and lets GORM fill zero timestamps with the insert time.
type PersonModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name        string         `gorm:"type:text;not null"`
	Age         int            `gorm:"not null"`
	Address     string         `gorm:"type:text;not null"`
	PhoneNumber string         `gorm:"type:text;not null"`
	CreatedAt   time.Time      `gorm:"not null;index"`
	UpdatedAt   time.Time      `gorm:"not null"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PersonModel) TableName() string {
	return "person"
}
