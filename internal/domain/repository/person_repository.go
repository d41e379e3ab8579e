// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"personbench/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for person persistence.
var (
	// ErrPersonNotFound is returned when a person is not found.
	ErrPersonNotFound = errors.New("person not found")
	// ErrDuplicatePerson is returned when trying to create a person whose ID already exists.
	ErrDuplicatePerson = errors.New("person already exists")
)

// PersonRepository defines the interface for person-related database operations.
type PersonRepository interface {
	// CreatePerson inserts a single person row. The insert is atomic: on error no row is visible.
	CreatePerson(ctx context.Context, person *entity.Person) error

	// FindPersonByID re-reads a person by its unique ID, including server-defaulted columns.
	FindPersonByID(ctx context.Context, id uuid.UUID) (*entity.Person, error)

	// ListPersons returns every person that is not soft-deleted, ordered by created_at then id.
	ListPersons(ctx context.Context) ([]*entity.Person, error)
}
