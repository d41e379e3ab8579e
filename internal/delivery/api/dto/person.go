// Package dto holds the HTTP request and response shapes and their mapping to domain values.
package dto

import (
	"time"

	"personbench/internal/domain/entity"
	"personbench/internal/usecase"

	"github.com/google/uuid"
)

// CreatePersonRequest is the optional body of POST /person/. Omitted fields are generated.
type CreatePersonRequest struct {
	Name        *string `json:"name" validate:"omitnil,min=1,max=200"`
	Age         *int    `json:"age" validate:"omitnil,min=0,max=150"`
	Address     *string `json:"address" validate:"omitnil,min=1,max=500"`
	PhoneNumber *string `json:"phone_number" validate:"omitnil,min=1,max=50"`
}

// ToInput converts the request to the usecase input.
func (r *CreatePersonRequest) ToInput() *usecase.PersonInput {
	if r == nil {
		return nil
	}

	return &usecase.PersonInput{
		Name:        r.Name,
		Age:         r.Age,
		Address:     r.Address,
		PhoneNumber: r.PhoneNumber,
	}
}

// PersonResponse is the wire form of a person.
type PersonResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Age         int        `json:"age"`
	Address     string     `json:"address"`
	PhoneNumber string     `json:"phone_number"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

// PersonListResponse is the body of GET /person/.
type PersonListResponse struct {
	Persons []PersonResponse `json:"persons"`
}

// NewPersonResponse maps a person to its wire form. Listed rows are never soft-deleted, so
// deleted_at is always null.
func NewPersonResponse(person *entity.Person) PersonResponse {
	return PersonResponse{
		ID:          person.ID,
		Name:        person.Name,
		Age:         person.Age,
		Address:     person.Address,
		PhoneNumber: person.PhoneNumber,
		CreatedAt:   person.CreatedAt.UTC(),
		UpdatedAt:   person.UpdatedAt.UTC(),
		DeletedAt:   nil,
	}
}

// NewPersonListResponse maps persons in order. An empty or nil slice yields "persons": [].
func NewPersonListResponse(persons []*entity.Person) PersonListResponse {
	out := make([]PersonResponse, 0, len(persons))
	for _, person := range persons {
		out = append(out, NewPersonResponse(person))
	}

	return PersonListResponse{Persons: out}
}
