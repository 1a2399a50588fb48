package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// IsUniqueViolation reports whether the provided error references a Postgres
// unique violation. When constraintName is provided, the helper also requires
// the constraint text to appear in the error message.
func IsUniqueViolation(err error, constraintName string) bool {
	if err == nil {
		return false
	}

	matched := false
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pgErr):
		matched = pgErr.Code == uniqueViolationCode
	case errors.Is(err, gorm.ErrDuplicatedKey):
		matched = true
	default:
		matched = strings.Contains(err.Error(), "duplicate key value")
	}

	if !matched {
		return false
	}
	if constraintName != "" {
		if pgErr != nil {
			return pgErr.ConstraintName == constraintName
		}
		return strings.Contains(err.Error(), constraintName)
	}
	return true
}
