// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Person is the only record kept by the benchmark service.
// Lifecycle is create-only: nothing updates or removes a person once stored.
type Person struct {
	ID          uuid.UUID  // Unique for the whole lifetime of the row.
	Name        string     // Full name.
	Age         int        // Age in years. No range is enforced by the schema.
	Address     string     // Postal address, single line.
	PhoneNumber string     // Phone number as displayed, not normalized.
	CreatedAt   time.Time  // Set once at insert.
	UpdatedAt   time.Time  // Equal to CreatedAt; no operation advances it.
	DeletedAt   *time.Time // Soft-delete marker. Never written by the service.
}

// IsDeleted reports whether the row carries a soft-delete marker.
func (p *Person) IsDeleted() bool {
	return p != nil && p.DeletedAt != nil
}
