// Package postgres stores users and patients in PostgreSQL through gorm.
package postgres

import (
	"context"

	"patientapp/internal/domain/repository"

	"gorm.io/gorm"
)

type txManager struct {
	db *gorm.DB
}

// txRepos binds repositories to one open transaction. dbresolver pins a
// transaction to the primary, so reads through it never lag.
type txRepos struct {
	tx *gorm.DB
}

func (r txRepos) UserRepo() repository.UserRepository       { return NewUserRepository(r.tx) }
func (r txRepos) PatientRepo() repository.PatientRepository { return NewPatientRepository(r.tx) }

// NewTransactionManager returns a TransactionManager over db.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &txManager{db: db}
}

// Execute delegates begin, commit and rollback (including on panic) to gorm.
func (tm *txManager) Execute(ctx context.Context, fn func(repos repository.RepositoryFactory) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepos{tx: tx})
	})
}
