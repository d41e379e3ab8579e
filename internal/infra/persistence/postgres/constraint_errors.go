package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for integrity constraint violations.
const (
	notNullViolationCode = "23502"
	uniqueViolationCode  = "23505"
	checkViolationCode   = "23514"
)

func asPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}

	return nil, false
}

func hasSQLState(err error, code string) bool {
	pgErr, ok := asPgError(err)

	return ok && pgErr.Code == code
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// TranslateError maps the driver error to gorm.ErrDuplicatedKey for the dialects that support it
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	if hasSQLState(err, uniqueViolationCode) {
		return true
	}

	// SQLite reports constraint failures through the message only.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isNotNullConstraintViolation(err error) bool {
	if hasSQLState(err, notNullViolationCode) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "not null constraint") ||
		strings.Contains(errMsg, "violates not-null constraint")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	if hasSQLState(err, checkViolationCode) {
		return true
	}

	return strings.Contains(err.Error(), "CHECK constraint failed")
}

// isConstraintViolation reports whether err is any integrity violation the person insert can hit.
func isConstraintViolation(err error) bool {
	return isNotNullConstraintViolation(err) || isCheckConstraintViolation(err)
}
