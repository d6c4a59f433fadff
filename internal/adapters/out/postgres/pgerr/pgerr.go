// Package pgerr classifies PostgreSQL driver errors for the storage adapter.
// Serialization failures and deadlocks are transient: the surrounding
// transaction can be retried as a whole, so they are wrapped in a
// TransientStorageError that command handlers recognize.
package pgerr

import (
	"errors"

	"tableside/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// SQLSTATE codes that indicate a retryable transaction failure.
const (
	serializationFailure = "40001"
	deadlockDetected     = "40P01"
)

// WrapTransient wraps err in a TransientStorageError when it is a retryable
// PostgreSQL failure, and returns it unchanged otherwise. A nil err stays nil.
//
// Both driver error types are recognized: the gorm postgres driver runs on
// pgx and reports *pgconn.PgError, while lib/pq connections report *pq.Error.
func WrapTransient(op string, err error) error {
	if err == nil {
		return nil
	}

	if code, ok := sqlState(err); ok {
		if code == serializationFailure || code == deadlockDetected {
			return errs.NewTransientStorageError(op, err)
		}
	}

	return err
}

func sqlState(err error) (string, bool) {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code, true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), true
	}

	return "", false
}
