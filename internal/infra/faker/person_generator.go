// Package faker fabricates placeholder person data with gofakeit.
package faker

import (
	"context"
	"sync"
	"time"

	"personbench/config"
	"personbench/internal/domain/entity"
	"personbench/internal/domain/service"

	"github.com/brianvoe/gofakeit/v7"
)

type personGenerator struct {
	mu  sync.Mutex
	fkr *gofakeit.Faker

	minAge   int
	maxAge   int
	backdate time.Duration
	now      func() time.Time
}

// NewPersonGenerator builds the default generator from the generator config section.
func NewPersonGenerator(cfg *config.Config) service.PersonGenerator {
	genCfg := cfg.Generator
	if genCfg == nil {
		genCfg = &config.GeneratorConfig{MinAge: 18, MaxAge: 99}
	}

	return newPersonGenerator(genCfg, func() time.Time { return time.Now().UTC() })
}

func newPersonGenerator(genCfg *config.GeneratorConfig, now func() time.Time) *personGenerator {
	return &personGenerator{
		// Seed zero asks gofakeit for a random seed.
		fkr:      gofakeit.New(genCfg.Seed),
		minAge:   genCfg.MinAge,
		maxAge:   max(genCfg.MaxAge, genCfg.MinAge),
		backdate: genCfg.Backdate,
		now:      now,
	}
}

// Generate fills every field but ID. Timestamps are only set when a backdate window is configured.
func (g *personGenerator) Generate(ctx context.Context) (*entity.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	addr := g.fkr.Address()
	person := &entity.Person{
		Name:        g.fkr.Name(),
		Age:         g.fkr.IntRange(g.minAge, g.maxAge),
		Address:     addr.Address,
		PhoneNumber: g.fkr.PhoneFormatted(),
	}

	if g.backdate > 0 {
		end := g.now()
		createdAt := g.fkr.DateRange(end.Add(-g.backdate), end).UTC()
		person.CreatedAt = createdAt
		person.UpdatedAt = createdAt
	}

	return person, nil
}
