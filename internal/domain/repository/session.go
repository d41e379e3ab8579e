package repository

import "context"

// SessionManager hands out request-scoped database sessions.
// A session pins one pooled connection for the duration of the callback and always
// releases it afterwards, whether the callback succeeds, fails, or panics.
// Sessions are never shared between concurrent callers.
type SessionManager interface {
	// Session acquires a connection, runs fn with repositories bound to it and releases the connection.
	// Failing to acquire a connection returns an error without calling fn.
	Session(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one session.
type RepositoryFactory interface {
	// NewPersonRepository returns a PersonRepository bound to the current session.
	NewPersonRepository() PersonRepository
}
