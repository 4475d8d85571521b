package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestDatabaseError(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := Wrap(OpAdd, cause)

	assert.EqualError(t, err, "repost.add: duplicate key value violates unique constraint")
	assert.ErrorIs(t, err, ErrDatabaseOperationFailed)
	assert.ErrorIs(t, err, cause)

	// still recognisable after further wrapping by callers
	outer := fmt.Errorf("repost thread: %w", err)
	assert.ErrorIs(t, outer, ErrDatabaseOperationFailed)

	var dbErr *DatabaseError
	assert.ErrorAs(t, outer, &dbErr)
	assert.Equal(t, OpAdd, dbErr.Op)
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, Wrap(OpRemove, nil))
}

func TestDatabaseError_NotMatchingOtherSentinels(t *testing.T) {
	err := Wrap(OpGetAll, sql.ErrConnDone)
	assert.False(t, errors.Is(err, sql.ErrNoRows))
	assert.True(t, errors.Is(err, sql.ErrConnDone))
}

func TestResultFrom(t *testing.T) {
	res, err := ResultFrom(sqlmock.NewResult(0, 3))
	assert.NoError(t, err)
	assert.Equal(t, Result{RowsAffected: 3}, res)

	_, err = ResultFrom(sqlmock.NewErrorResult(errors.New("unsupported")))
	assert.Error(t, err)
}
