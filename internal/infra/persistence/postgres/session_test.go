package postgres

import (
	"context"
	"testing"
	"time"

	"personbench/internal/domain/entity"
	domainerrors "personbench/internal/domain/errors"
	"personbench/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_CreateAndReReadShareOneConnection(t *testing.T) {
	db := openSQLite(t, 1)
	sm := NewSessionManager(db)
	ctx := context.Background()

	person := &entity.Person{ID: uuid.New(), Name: "Edsger Dijkstra", Age: 72, Address: "Nuenen", PhoneNumber: "+31 40 000 0000"}

	// With a single pooled connection, any repository call that escaped the pinned
	// connection would block forever.
	done := make(chan error, 1)
	go func() {
		done <- sm.Session(ctx, func(f repository.RepositoryFactory) error {
			repo := f.NewPersonRepository()
			if err := repo.CreatePerson(ctx, person); err != nil {
				return err
			}
			_, err := repo.FindPersonByID(ctx, person.ID)

			return err
		})
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("session deadlocked on the pool")
	}
}

func TestSession_WithReplicasDoesNotPinAConnection(t *testing.T) {
	db := openSQLiteWithReplica(t, 1)
	sm := NewSessionManager(db)

	person := &entity.Person{ID: uuid.New(), Name: "Barbara Liskov", Age: 85, Address: "Cambridge, MA", PhoneNumber: "+1 617 000 0000"}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// A pinned connection would leave the single primary slot idle while the
	// resolver waits for it on every statement.
	var listed []*entity.Person
	err := sm.Session(ctx, func(f repository.RepositoryFactory) error {
		repo := f.NewPersonRepository()
		if err := repo.CreatePerson(ctx, person); err != nil {
			return err
		}
		if _, err := repo.FindPersonByID(ctx, person.ID); err != nil {
			return err
		}

		var err error
		listed, err = repo.ListPersons(ctx)

		return err
	})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, person.ID, listed[0].ID)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Zero(t, sqlDB.Stats().InUse)
}

func TestSession_WithReplicasCancelledContextIsUnavailable(t *testing.T) {
	sm := NewSessionManager(openSQLiteWithReplica(t, 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := sm.Session(ctx, func(repository.RepositoryFactory) error {
		called = true

		return nil
	})
	assert.False(t, called)
	assert.ErrorIs(t, err, domainerrors.ErrSessionUnavailable)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSession_PoolExhaustedReportsUnavailable(t *testing.T) {
	db := openSQLite(t, 1)
	sm := NewSessionManager(db)

	holding := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- sm.Session(context.Background(), func(repository.RepositoryFactory) error {
			close(holding)
			<-release

			return nil
		})
	}()
	<-holding

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	called := false
	err := sm.Session(ctx, func(repository.RepositoryFactory) error {
		called = true

		return nil
	})
	assert.False(t, called)
	assert.ErrorIs(t, err, domainerrors.ErrSessionUnavailable)

	close(release)
	require.NoError(t, <-done)

	// The held connection went back to the pool.
	assert.NoError(t, sm.Session(context.Background(), func(repository.RepositoryFactory) error { return nil }))
}

func TestSession_CallbackErrorIsNotUnavailable(t *testing.T) {
	db := openSQLite(t, 2)
	sm := NewSessionManager(db)

	err := sm.Session(context.Background(), func(f repository.RepositoryFactory) error {
		_, err := f.NewPersonRepository().FindPersonByID(context.Background(), uuid.New())

		return err
	})
	assert.ErrorIs(t, err, repository.ErrPersonNotFound)
	assert.NotErrorIs(t, err, domainerrors.ErrSessionUnavailable)
}
