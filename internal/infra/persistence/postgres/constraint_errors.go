package postgres

import (
	"strings"

	"patientapp/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
)

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	pgErr, ok := errors.AsType[*pgconn.PgError](err)

	return ok && pgErr.Code == pgUniqueViolation
}

// uniqueConstraintName returns the violated constraint, or "" when the driver did not say.
func uniqueConstraintName(err error) string {
	pgErr, ok := errors.AsType[*pgconn.PgError](err)
	if !ok || pgErr.Code != pgUniqueViolation {
		return ""
	}

	return pgErr.ConstraintName
}

func isNotNullConstraintViolation(err error) bool {
	if pgErr, ok := errors.AsType[*pgconn.PgError](err); ok {
		return pgErr.Code == pgNotNullViolation
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, pgNotNullViolation)
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	pgErr, ok := errors.AsType[*pgconn.PgError](err)

	return ok && pgErr.Code == pgForeignKeyViolation
}
