package errs

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"gorm.io/gorm"
)

const (
	mysqlDuplicateEntry = 1062

	pgUniqueViolation           = "23505"
	pgInvalidTextRepresentation = "22P02"
)

// IsDuplicatedErr reports whether err is a unique constraint violation from
// any of the supported storage drivers.
func IsDuplicatedErr(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	if mongo.IsDuplicateKeyError(err) {
		return true
	}

	// sqlite drivers without error translation
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// IsMalformedIDErr reports whether the database rejected an identifier
// because of its format.
func IsMalformedIDErr(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgInvalidTextRepresentation
	}
	return false
}
