package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres, sqlite) inside this directory.

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrDatabaseOperationFailed is reported for any failure signaled by the
// underlying connection (connectivity, constraint violation, malformed SQL).
var ErrDatabaseOperationFailed = errors.New("database operation failed")

// DBTX is the connection collaborator used by repositories.
// Both *sql.DB and *sql.Tx satisfy it, so callers own the lifecycle and any
// transaction boundaries.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Result carries the driver's write metadata.
type Result struct {
	RowsAffected int64 `json:"rows_affected"`
}

// DatabaseError wraps a driver failure with the name of the operation that hit it.
// It matches ErrDatabaseOperationFailed via errors.Is and unwraps to the cause.
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error { return e.Err }

func (e *DatabaseError) Is(target error) bool {
	return target == ErrDatabaseOperationFailed
}

// Wrap returns nil for a nil err, otherwise a *DatabaseError for op.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &DatabaseError{Op: op, Err: err}
}

// ResultFrom converts a driver result into a Result.
func ResultFrom(res sql.Result) (Result, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return Result{}, err
	}
	return Result{RowsAffected: n}, nil
}
