// Package memory provides an in-process implementation of the persistence ports.
// It backs smoke runs without a database and the repository contract tests.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"personbench/internal/domain/entity"
	"personbench/internal/domain/repository"

	"github.com/google/uuid"
)

// Store is the shared table behind every memory session.
type Store struct {
	mu      sync.RWMutex
	persons map[uuid.UUID]entity.Person
	now     func() time.Time
}

// NewStore creates an empty store. now defaults to time.Now in UTC.
func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}

	return &Store{
		persons: make(map[uuid.UUID]entity.Person),
		now:     now,
	}
}

type personRepository struct {
	store *Store
}

// NewPersonRepository returns a repository reading and writing the given store.
func NewPersonRepository(store *Store) repository.PersonRepository {
	return &personRepository{store: store}
}

func (r *personRepository) CreatePerson(ctx context.Context, person *entity.Person) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if person.ID == uuid.Nil {
		person.ID = uuid.New()
	}
	if _, exists := r.store.persons[person.ID]; exists {
		return repository.ErrDuplicatePerson
	}

	if person.CreatedAt.IsZero() {
		person.CreatedAt = r.store.now()
	}
	if person.UpdatedAt.IsZero() {
		person.UpdatedAt = person.CreatedAt
	}

	r.store.persons[person.ID] = clonePerson(person)

	return nil
}

func (r *personRepository) FindPersonByID(ctx context.Context, id uuid.UUID) (*entity.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	person, ok := r.store.persons[id]
	if !ok || person.IsDeleted() {
		return nil, repository.ErrPersonNotFound
	}

	out := clonePerson(&person)

	return &out, nil
}

func (r *personRepository) ListPersons(ctx context.Context) ([]*entity.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	persons := make([]*entity.Person, 0, len(r.store.persons))
	for _, person := range r.store.persons {
		if person.IsDeleted() {
			continue
		}
		out := clonePerson(&person)
		persons = append(persons, &out)
	}
	r.store.mu.RUnlock()

	slices.SortFunc(persons, func(a, b *entity.Person) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}

		return slices.Compare(a.ID[:], b.ID[:])
	})

	return persons, nil
}

// SoftDelete marks a stored person as deleted. Only tests and fixtures call it; the service never deletes.
func (s *Store) SoftDelete(id uuid.UUID, at time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	person, ok := s.persons[id]
	if !ok {
		return false
	}
	person.DeletedAt = &at
	s.persons[id] = person

	return true
}

func clonePerson(p *entity.Person) entity.Person {
	out := *p
	if p.DeletedAt != nil {
		deletedAt := *p.DeletedAt
		out.DeletedAt = &deletedAt
	}

	return out
}
