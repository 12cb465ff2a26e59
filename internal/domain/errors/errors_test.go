package errors

import (
	"net/http"
	"testing"

	"patientapp/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WrapStillMatches(t *testing.T) {
	err := errors.Wrap(ErrPatientNotFound.WrapMessage("owner mismatch"), "get patient")

	assert.True(t, errors.Is(err, ErrPatientNotFound))

	appErr, ok := errors.AsType[AppError](err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "Patient not found", appErr.Message())
	assert.Contains(t, err.Error(), "owner mismatch")
}

func TestSignupConflictsAreBadRequests(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ErrUsernameTaken.HTTPCode())
	assert.Equal(t, http.StatusBadRequest, ErrEmailTaken.HTTPCode())
	assert.NotEqual(t, ErrUsernameTaken.ErrorCode(), ErrEmailTaken.ErrorCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	driverErr := errors.New("connection reset")

	err := NewDatabaseExecuteError(driverErr, "failed to create user")

	assert.True(t, errors.Is(err, driverErr))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "failed to create user: connection reset", err.Error())
	assert.Equal(t, "Database execution failed", err.Message())
}
