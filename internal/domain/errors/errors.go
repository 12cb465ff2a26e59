// Package errors is the catalogue of failures the API reports to clients. Each value
// fixes the HTTP status, a stable machine code and the message clients see; the
// error handler in internal/delivery/api/middleware renders them.
package errors

import (
	"net/http"

	"patientapp/internal/errors"
)

// AppError is an error the API can render without leaking internals.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	// Details is optional context for 4xx answers; it is dropped for 5xx and 401.
	Details() string
}

// BaseError is a fixed, comparable AppError. Wrap it to add context; errors.Is
// still matches the catalogue value.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

func newError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message}
}

func (e *BaseError) Error() string     { return e.message }
func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return "" }

// WrapMessage wraps e with an internal message that only reaches the logs.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Accounts. Signup conflicts are answered with 400, not 409.
var (
	ErrUsernameTaken      = newError(http.StatusBadRequest, "USERNAME_TAKEN", "Username already registered")
	ErrEmailTaken         = newError(http.StatusBadRequest, "EMAIL_TAKEN", "Email already registered")
	ErrUserCreationFailed = newError(http.StatusInternalServerError, "USER_CREATION_FAILED", "Failed to create user")
	ErrPasswordHashFailed = newError(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "Failed to process password")
)

// Authentication. Both answer 401 with a Bearer challenge.
var (
	// Unknown user and wrong password are not told apart.
	ErrInvalidCredentials = newError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Incorrect username or password")

	// Missing header, bad or expired token, or a subject that no longer exists.
	ErrUnauthenticated = newError(http.StatusUnauthorized, "UNAUTHENTICATED", "Could not validate credentials")
)

// Patients. A missing record and one owned by someone else look the same.
var ErrPatientNotFound = newError(http.StatusNotFound, "PATIENT_NOT_FOUND", "Patient not found")

// Generic.
var (
	ErrValidationFailed = newError(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")
	ErrInternalError    = newError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
)

// DatabaseExecuteError is a driver failure with no better classification. It
// renders as a 500 and keeps the driver error reachable through Unwrap.
type DatabaseExecuteError struct {
	err       error
	operation string
}

// NewDatabaseExecuteError records that operation failed with err.
func NewDatabaseExecuteError(err error, operation string) AppError {
	return &DatabaseExecuteError{err: err, operation: operation}
}

func (e *DatabaseExecuteError) Error() string {
	return e.operation + ": " + e.err.Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.operation }
