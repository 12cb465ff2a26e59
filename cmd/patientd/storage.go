package main

import (
	"log/slog"

	"patientapp/config"
	"patientapp/internal/domain/repository"
	"patientapp/internal/errors"
	"patientapp/internal/infra/persistence/memory"
	"patientapp/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

type storageParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type storageResult struct {
	fx.Out

	UserRepo    repository.UserRepository
	PatientRepo repository.PatientRepository
	TxManager   repository.TransactionManager
}

// newStorage builds the repositories for the backend named by storage.driver.
func newStorage(params storageParams) (storageResult, error) {
	switch params.Config.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return storageResult{}, err
		}

		return storageResult{
			UserRepo:    postgres.NewUserRepository(db),
			PatientRepo: postgres.NewPatientRepository(db),
			TxManager:   postgres.NewTransactionManager(db),
		}, nil

	case config.StorageDriverMemory:
		params.Logger.Warn("Using in-memory storage; records are lost on restart")
		store := memory.NewStore()

		return storageResult{
			UserRepo:    memory.NewUserRepository(store),
			PatientRepo: memory.NewPatientRepository(store),
			TxManager:   memory.NewTransactionManager(store),
		}, nil
	}

	return storageResult{}, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
}
