package mysql

import (
	"errors"

	mysqldriver "github.com/go-sql-driver/mysql"
)

const duplicateEntryErrNum = 1062

// isDuplicateKey reports whether err is a MySQL duplicate-entry error.
func isDuplicateKey(err error) bool {
	var mysqlErr *mysqldriver.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == duplicateEntryErrNum
}
