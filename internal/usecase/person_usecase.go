// Package usecase declares the application entry points used by the transports.
package usecase

import (
	"context"

	"personbench/internal/domain/entity"
)

// PersonInput carries optional client-supplied values. Nil fields are filled by the generator.
type PersonInput struct {
	Name        *string
	Age         *int
	Address     *string
	PhoneNumber *string
}

// PersonUsecase defines the record service exposed over HTTP.
type PersonUsecase interface {
	// CreatePerson stores one person built from generated values and the optional input, then
	// returns the row as persisted.
	CreatePerson(ctx context.Context, input *PersonInput) (*entity.Person, error)

	// ListPersons returns every live person ordered by created_at, then id.
	ListPersons(ctx context.Context) ([]*entity.Person, error)
}
