// Package service declares domain services implemented by infrastructure adapters.
package service

import (
	"context"

	"personbench/internal/domain/entity"
)

// PersonGenerator fabricates placeholder values for a new person.
// Implementations fill every field except ID; zero timestamps are left for the store to default.
type PersonGenerator interface {
	Generate(ctx context.Context) (*entity.Person, error)
}
