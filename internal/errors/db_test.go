package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapDBError_Nil(t *testing.T) {
	assert.NoError(t, MapDBError(nil))
}

func TestMapDBError_NoRows(t *testing.T) {
	err := MapDBError(fmt.Errorf("get profile: %w", pgx.ErrNoRows))
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, ErrCodeNotFound, appErr.Code)
}

func TestMapDBError_ContextErrors(t *testing.T) {
	assert.Equal(t, ErrCodeTimeout, CodeOf(MapDBError(context.DeadlineExceeded)))
	assert.Equal(t, ErrCodeCanceled, CodeOf(MapDBError(context.Canceled)))
}

func TestMapDBError_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:   pgerrcode.UniqueViolation,
		Detail: "Key (policy_number)=(BS-12345) already exists.",
	}
	err := MapDBError(pgErr)
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, ErrCodeConflict, appErr.Code)
	assert.Equal(t, "policy_number", appErr.Field)
}

func TestMapDBError_ForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:   pgerrcode.ForeignKeyViolation,
		Detail: `Key (patient_id)=(p9) is not present in table "profiles".`,
	}
	err := MapDBError(pgErr)
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, ErrCodeForeignKey, appErr.Code)
	assert.Contains(t, appErr.Message, "profile")
}

func TestMapDBError_CheckViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.CheckViolation, ColumnName: "status"}
	assert.Equal(t, ErrCodeValidation, CodeOf(MapDBError(pgErr)))
}

func TestMapDBError_PassThrough(t *testing.T) {
	plain := errors.New("network unreachable")
	assert.Equal(t, plain, MapDBError(plain))
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Internal("something failed", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "something failed")
	assert.Contains(t, err.Error(), "boom")
}

func TestIsCode(t *testing.T) {
	assert.True(t, IsCode(Forbidden("no"), ErrCodeForbidden))
	assert.True(t, IsCode(errors.New("plain"), ErrCodeInternal))
	assert.False(t, IsCode(NotFound("gone"), ErrCodeConflict))
}
