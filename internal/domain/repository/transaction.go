package repository

import "context"

// TransactionManager runs a unit of work against one consistent view of the store.
// Reads made through the factory see the work's own writes and, on the postgres
// backend, always go to the primary.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back when it returns an error or
	// panics. The error from fn is returned unchanged.
	Execute(ctx context.Context, fn func(repos RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running unit of work.
type RepositoryFactory interface {
	UserRepo() UserRepository
	PatientRepo() PatientRepository
}
