package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"patientapp/config"
	"patientapp/internal/domain/entity"
	"patientapp/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewStorage_Memory(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = config.StorageDriverMemory

	out, err := newStorage(storageParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "alice", Email: "a@x.com", PasswordHash: "hash"}
	require.NoError(t, out.TxManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return repos.UserRepo().Create(ctx, user)
	}))

	found, err := out.UserRepo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}

func TestNewStorage_UnknownDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = "bolt"

	_, err := newStorage(storageParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.ErrorContains(t, err, "unknown storage driver")
}

func TestNewStorage_PostgresWithoutConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = config.StorageDriverPostgres

	_, err := newStorage(storageParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.ErrorContains(t, err, "postgres configuration is missing")
}
