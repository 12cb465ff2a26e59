package postgres

import (
	"fmt"
	"testing"

	domainerrors "patientapp/internal/domain/errors"
	"patientapp/internal/errors"
	"patientapp/internal/infra/persistence/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, want: true},
		{name: "pg unique violation", err: &pgconn.PgError{Code: pgUniqueViolation}, want: true},
		{name: "wrapped pg unique violation", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgUniqueViolation}), want: true},
		{name: "pg not null violation", err: &pgconn.PgError{Code: pgNotNullViolation}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestMapUserWriteError(t *testing.T) {
	t.Run("username constraint", func(t *testing.T) {
		err := mapUserWriteError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: model.UniqueUsersUsername})
		assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
	})

	t.Run("email constraint", func(t *testing.T) {
		err := mapUserWriteError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: model.UniqueUsersEmail})
		assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
	})

	t.Run("not null", func(t *testing.T) {
		err := mapUserWriteError(&pgconn.PgError{Code: pgNotNullViolation})
		assert.True(t, errors.Is(err, domainerrors.ErrUserCreationFailed))
	})

	t.Run("anything else is a database error", func(t *testing.T) {
		driverErr := errors.New("connection reset")
		err := mapUserWriteError(driverErr)

		dbErr, ok := errors.AsType[*domainerrors.DatabaseExecuteError](err)
		assert.True(t, ok)
		assert.Equal(t, "failed to create user", dbErr.Details())
		assert.True(t, errors.Is(err, driverErr))
	})
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))
	assert.False(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgUniqueViolation}))
}
