// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	domainerrors "personbench/internal/domain/errors"
	"personbench/internal/domain/repository"
	"personbench/internal/errors"

	"gorm.io/gorm"
)

// gormSessionManager implements the domain's SessionManager interface using GORM.
type gormSessionManager struct {
	db *gorm.DB

	// resolved is set when dbresolver owns connection routing. The resolver swaps
	// Statement.ConnPool on every non-transactional statement, so a pinned
	// connection would sit idle while each statement checks out another one.
	resolved bool
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds the session's GORM handle: pinned to one pooled connection, or the
// resolver-routed pool when read replicas are registered.
type gormRepositoryFactory struct {
	conn *gorm.DB
}

// NewPersonRepository creates a new person repository instance bound to the session.
func (f *gormRepositoryFactory) NewPersonRepository() repository.PersonRepository {
	return NewPersonRepository(f.conn)
}

// NewSessionManager is the constructor for gormSessionManager.
// This function will be used as an Fx provider.
func NewSessionManager(db *gorm.DB) repository.SessionManager {
	return &gormSessionManager{db: db, resolved: hasReplicas(db)}
}

// Session pins a single connection from the pool for the duration of fn.
// gorm.DB.Connection returns the connection to the pool in a deferred Close, so the
// release also happens when fn panics.
//
// With read replicas registered nothing is pinned: each statement takes a connection
// from the pool dbresolver picks for it and returns it when the statement ends.
func (sm *gormSessionManager) Session(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if sm.resolved {
		if err := ctx.Err(); err != nil {
			return errors.WithMessage(errors.Join(domainerrors.ErrSessionUnavailable, err), "failed to open database session")
		}

		return fn(&gormRepositoryFactory{conn: sm.db.WithContext(ctx)})
	}

	acquired := false

	err := sm.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		acquired = true

		return fn(&gormRepositoryFactory{conn: conn})
	})
	if err != nil && !acquired {
		return errors.WithMessage(errors.Join(domainerrors.ErrSessionUnavailable, err), "failed to acquire database session")
	}

	return err
}
