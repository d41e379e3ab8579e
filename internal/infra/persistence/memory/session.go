package memory

import (
	"context"

	domainerrors "personbench/internal/domain/errors"
	"personbench/internal/domain/repository"
	"personbench/internal/errors"

	"golang.org/x/sync/semaphore"
)

// SessionManager hands out sessions over a Store. A weighted semaphore stands in for the
// connection pool so pool exhaustion and release behave like the database-backed manager.
type SessionManager struct {
	store *Store
	slots *semaphore.Weighted
}

type repositoryFactory struct {
	store *Store
}

func (f *repositoryFactory) NewPersonRepository() repository.PersonRepository {
	return NewPersonRepository(f.store)
}

// NewSessionManager caps concurrent sessions at maxSessions; zero or less means unbounded.
func NewSessionManager(store *Store, maxSessions int) *SessionManager {
	sm := &SessionManager{store: store}
	if maxSessions > 0 {
		sm.slots = semaphore.NewWeighted(int64(maxSessions))
	}

	return sm
}

// Session blocks for a free slot, runs fn and releases the slot unconditionally.
func (sm *SessionManager) Session(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if sm.slots != nil {
		if err := sm.slots.Acquire(ctx, 1); err != nil {
			return errors.WithMessage(errors.Join(domainerrors.ErrSessionUnavailable, err), "failed to acquire memory session")
		}
		defer sm.slots.Release(1)
	}

	return fn(&repositoryFactory{store: sm.store})
}
