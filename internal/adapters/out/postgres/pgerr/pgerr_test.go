package pgerr_test

import (
	"errors"
	"fmt"
	"testing"

	"tableside/internal/adapters/out/postgres/pgerr"
	"tableside/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapTransient_Nil(t *testing.T) {
	assert.NoError(t, pgerr.WrapTransient("commit", nil))
}

func TestWrapTransient_SerializationFailure(t *testing.T) {
	err := pgerr.WrapTransient("commit", &pq.Error{Code: "40001"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrTransientStorage)
}

func TestWrapTransient_Deadlock(t *testing.T) {
	err := pgerr.WrapTransient("update order", &pq.Error{Code: "40P01"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrTransientStorage)
}

func TestWrapTransient_PgxSerializationFailure(t *testing.T) {
	err := pgerr.WrapTransient("commit", &pgconn.PgError{Code: "40001"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrTransientStorage)
}

func TestWrapTransient_PgxDeadlock(t *testing.T) {
	err := pgerr.WrapTransient("update order", &pgconn.PgError{Code: "40P01"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrTransientStorage)
}

func TestWrapTransient_WrappedPgxError(t *testing.T) {
	cause := fmt.Errorf("commit tx: %w", &pgconn.PgError{Code: "40001"})
	err := pgerr.WrapTransient("commit", cause)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrTransientStorage)
}

func TestWrapTransient_OtherPgxError(t *testing.T) {
	cause := &pgconn.PgError{Code: "23505"} // unique violation is not retryable
	err := pgerr.WrapTransient("insert", cause)
	require.Error(t, err)
	assert.NotErrorIs(t, err, errs.ErrTransientStorage)
	assert.ErrorIs(t, err, cause)
}

func TestWrapTransient_OtherPqError(t *testing.T) {
	cause := &pq.Error{Code: "23505"} // unique violation is not retryable
	err := pgerr.WrapTransient("insert", cause)
	require.Error(t, err)
	assert.NotErrorIs(t, err, errs.ErrTransientStorage)
	assert.ErrorIs(t, err, cause)
}

func TestWrapTransient_PlainError(t *testing.T) {
	cause := errors.New("connection refused")
	err := pgerr.WrapTransient("begin", cause)
	assert.Equal(t, cause, err)
}
