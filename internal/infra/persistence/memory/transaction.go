package memory

import (
	"context"

	"patientapp/internal/domain/repository"
)

type transactionManager struct {
	store *Store
}

type repositoryFactory struct {
	store *Store
	undo  *undoLog
}

func (f *repositoryFactory) UserRepo() repository.UserRepository {
	return &userRepository{store: f.store, undo: f.undo}
}

func (f *repositoryFactory) PatientRepo() repository.PatientRepository {
	return &patientRepository{store: f.store, undo: f.undo}
}

// NewTransactionManager returns a TransactionManager over s. Transactions run one at
// a time. Writes become visible immediately and are undone if fn fails or panics.
func NewTransactionManager(s *Store) repository.TransactionManager {
	return &transactionManager{store: s}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.txMu.Lock()
	defer tm.store.txMu.Unlock()

	undo := &undoLog{}

	defer func() {
		if r := recover(); r != nil {
			undo.rollback(tm.store)
			panic(r)
		}
	}()

	if err := fn(&repositoryFactory{store: tm.store, undo: undo}); err != nil {
		undo.rollback(tm.store)

		return err
	}

	return nil
}
