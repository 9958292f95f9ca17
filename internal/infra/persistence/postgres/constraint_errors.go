package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes surfaced in driver error messages
const (
	sqlStateUniqueViolation  = "23505"
	sqlStateNotNullViolation = "23502"
	sqlStateUndefinedTable   = "42P01"
)

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return strings.Contains(err.Error(), sqlStateUniqueViolation)
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, sqlStateNotNullViolation)
}

func isUndefinedTable(err error) bool {
	return strings.Contains(err.Error(), sqlStateUndefinedTable)
}
