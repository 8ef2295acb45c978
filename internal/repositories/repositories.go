// Package repositories implements data access over MySQL. Every query is
// parameterized; duplicate-key violations are translated into
// apperrors.ErrDuplicate so services see one uniform conflict error.
package repositories

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// MySQL error number for a unique-key violation
const mysqlErrDuplicateEntry = 1062

// isDuplicateEntry reports whether err is a MySQL duplicate-key error
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry
}
