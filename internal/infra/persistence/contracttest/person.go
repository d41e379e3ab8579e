// Package contracttest holds the behaviour every persistence adapter must share.
// Adapters call RunPersonRepository from their own _test files.
package contracttest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"personbench/internal/domain/entity"
	"personbench/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Harness is built fresh for every subtest so each one starts from an empty table.
type Harness struct {
	Sessions repository.SessionManager

	// SoftDelete stamps deleted_at on a stored person outside of the service.
	SoftDelete func(t *testing.T, id uuid.UUID)
}

// RunPersonRepository exercises the person repository and session manager of one adapter.
func RunPersonRepository(t *testing.T, newHarness func(t *testing.T) Harness) {
	t.Helper()

	t.Run("list on empty table returns empty slice", func(t *testing.T) {
		h := newHarness(t)

		persons := list(t, h.Sessions)
		assert.NotNil(t, persons)
		assert.Empty(t, persons)
	})

	t.Run("create then re-read returns defaulted fields", func(t *testing.T) {
		h := newHarness(t)
		ctx := context.Background()

		person := samplePerson("Ada Lovelace", time.Time{})

		var found *entity.Person
		err := h.Sessions.Session(ctx, func(f repository.RepositoryFactory) error {
			repo := f.NewPersonRepository()
			if err := repo.CreatePerson(ctx, person); err != nil {
				return err
			}

			var err error
			found, err = repo.FindPersonByID(ctx, person.ID)

			return err
		})
		require.NoError(t, err)

		assert.Equal(t, person.ID, found.ID)
		assert.Equal(t, "Ada Lovelace", found.Name)
		assert.Equal(t, person.Age, found.Age)
		assert.Equal(t, person.Address, found.Address)
		assert.Equal(t, person.PhoneNumber, found.PhoneNumber)
		assert.False(t, found.CreatedAt.IsZero())
		assert.WithinDuration(t, found.CreatedAt, found.UpdatedAt, time.Millisecond)
		assert.Nil(t, found.DeletedAt)
	})

	t.Run("created person round-trips through list", func(t *testing.T) {
		h := newHarness(t)

		created := create(t, h.Sessions, samplePerson("Grace Hopper", time.Time{}))

		persons := list(t, h.Sessions)
		require.Len(t, persons, 1)
		assert.Equal(t, created.ID, persons[0].ID)
		assert.Equal(t, created.Name, persons[0].Name)
		assert.Equal(t, created.Age, persons[0].Age)
		assert.Equal(t, created.Address, persons[0].Address)
		assert.Equal(t, created.PhoneNumber, persons[0].PhoneNumber)
		assert.WithinDuration(t, created.CreatedAt, persons[0].CreatedAt, time.Millisecond)
	})

	t.Run("list is ordered by created_at ascending", func(t *testing.T) {
		h := newHarness(t)

		base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		third := create(t, h.Sessions, samplePerson("third", base.Add(2*time.Hour)))
		first := create(t, h.Sessions, samplePerson("first", base))
		second := create(t, h.Sessions, samplePerson("second", base.Add(time.Hour)))

		persons := list(t, h.Sessions)
		require.Len(t, persons, 3)
		assert.Equal(t, []uuid.UUID{first.ID, second.ID, third.ID}, ids(persons))
	})

	t.Run("list is idempotent without creates", func(t *testing.T) {
		h := newHarness(t)

		for i := range 3 {
			create(t, h.Sessions, samplePerson(fmt.Sprintf("person-%d", i), time.Time{}))
		}

		assert.ElementsMatch(t, ids(list(t, h.Sessions)), ids(list(t, h.Sessions)))
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		h := newHarness(t)
		ctx := context.Background()

		created := create(t, h.Sessions, samplePerson("original", time.Time{}))

		dup := samplePerson("duplicate", time.Time{})
		dup.ID = created.ID
		err := h.Sessions.Session(ctx, func(f repository.RepositoryFactory) error {
			return f.NewPersonRepository().CreatePerson(ctx, dup)
		})
		assert.ErrorIs(t, err, repository.ErrDuplicatePerson)

		persons := list(t, h.Sessions)
		require.Len(t, persons, 1)
		assert.Equal(t, "original", persons[0].Name)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		h := newHarness(t)
		ctx := context.Background()

		err := h.Sessions.Session(ctx, func(f repository.RepositoryFactory) error {
			_, err := f.NewPersonRepository().FindPersonByID(ctx, uuid.New())

			return err
		})
		assert.ErrorIs(t, err, repository.ErrPersonNotFound)
	})

	t.Run("soft-deleted persons are not listed", func(t *testing.T) {
		h := newHarness(t)

		kept := create(t, h.Sessions, samplePerson("kept", time.Time{}))
		gone := create(t, h.Sessions, samplePerson("gone", time.Time{}))
		h.SoftDelete(t, gone.ID)

		assert.Equal(t, []uuid.UUID{kept.ID}, ids(list(t, h.Sessions)))
	})

	t.Run("session is released after callback error", func(t *testing.T) {
		h := newHarness(t)
		ctx := context.Background()
		boom := errors.New("boom")

		for range 5 {
			err := h.Sessions.Session(ctx, func(repository.RepositoryFactory) error {
				return boom
			})
			assert.ErrorIs(t, err, boom)
		}

		assert.NotNil(t, list(t, h.Sessions))
	})

	t.Run("session is released after callback panic", func(t *testing.T) {
		h := newHarness(t)
		ctx := context.Background()

		for range 3 {
			assert.Panics(t, func() {
				_ = h.Sessions.Session(ctx, func(repository.RepositoryFactory) error {
					panic("handler blew up")
				})
			})
		}

		assert.NotNil(t, list(t, h.Sessions))
	})

	t.Run("cancelled context fails the operation", func(t *testing.T) {
		h := newHarness(t)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := h.Sessions.Session(ctx, func(f repository.RepositoryFactory) error {
			return f.NewPersonRepository().CreatePerson(ctx, samplePerson("never", time.Time{}))
		})
		require.Error(t, err)

		assert.Empty(t, list(t, h.Sessions))
	})

	t.Run("concurrent creates yield distinct ids", func(t *testing.T) {
		h := newHarness(t)
		const n = 50

		var wg sync.WaitGroup
		results := make(chan uuid.UUID, n)
		errs := make(chan error, n)
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()

				ctx := context.Background()
				person := samplePerson(fmt.Sprintf("worker-%d", i), time.Time{})
				err := h.Sessions.Session(ctx, func(f repository.RepositoryFactory) error {
					return f.NewPersonRepository().CreatePerson(ctx, person)
				})
				if err != nil {
					errs <- err

					return
				}
				results <- person.ID
			}()
		}
		wg.Wait()
		close(results)
		close(errs)

		for err := range errs {
			t.Errorf("concurrent create failed: %v", err)
		}

		seen := make(map[uuid.UUID]struct{}, n)
		for id := range results {
			seen[id] = struct{}{}
		}
		assert.Len(t, seen, n)
		assert.GreaterOrEqual(t, len(list(t, h.Sessions)), n)
	})
}

func samplePerson(name string, createdAt time.Time) *entity.Person {
	return &entity.Person{
		ID:          uuid.New(),
		Name:        name,
		Age:         42,
		Address:     "221B Baker Street, London",
		PhoneNumber: "+44 20 7946 0958",
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

func create(t *testing.T, sessions repository.SessionManager, person *entity.Person) *entity.Person {
	t.Helper()
	ctx := context.Background()

	var stored *entity.Person
	err := sessions.Session(ctx, func(f repository.RepositoryFactory) error {
		repo := f.NewPersonRepository()
		if err := repo.CreatePerson(ctx, person); err != nil {
			return err
		}

		var err error
		stored, err = repo.FindPersonByID(ctx, person.ID)

		return err
	})
	require.NoError(t, err)

	return stored
}

func list(t *testing.T, sessions repository.SessionManager) []*entity.Person {
	t.Helper()
	ctx := context.Background()

	var persons []*entity.Person
	err := sessions.Session(ctx, func(f repository.RepositoryFactory) error {
		var err error
		persons, err = f.NewPersonRepository().ListPersons(ctx)

		return err
	})
	require.NoError(t, err)

	return persons
}

func ids(persons []*entity.Person) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(persons))
	for _, p := range persons {
		out = append(out, p.ID)
	}

	return out
}
