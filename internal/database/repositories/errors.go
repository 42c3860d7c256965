package repositories

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate indicates a uniqueness conflict on insert.
var ErrDuplicate = errors.New("record already exists")

// isUniqueViolation reports whether err is a unique-constraint failure from
// either supported driver.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	// go-sqlite3 reports constraint failures in the error text
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
