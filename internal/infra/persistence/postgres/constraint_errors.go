package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// Fall back to PostgreSQL-specific unique constraint violation patterns
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

// violatedConstraintTargets reports which unique constraint a write violated.
// Constraint names come from the migration that creates the users table.
func violatedConstraintTargets(err error) (email bool, username bool) {
	errMsg := strings.ToLower(err.Error())
	email = strings.Contains(errMsg, "idx_users_email_lower") || strings.Contains(errMsg, "email")
	username = strings.Contains(errMsg, "idx_users_username") || strings.Contains(errMsg, "username")

	return email, username
}

func isNotNullConstraintViolation(err error) bool {
	// Check error message for PostgreSQL-specific not null constraint violation patterns
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}
