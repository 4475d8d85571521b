package repository

import (
	"context"

	"repostapi/internal/model"
)

// Operation names reported in errors, logs and metrics.
const (
	OpAdd    = "repost.add"
	OpRemove = "repost.remove"
	OpGetAll = "repost.get_all"
)

// RepostRepository defines data access for reposts using SQL queries only.
// No business logic here — strictly persistence operations.
type RepostRepository interface {
	// Add inserts one repost row stamped with the database's current time.
	// Calling it twice with the same pair inserts two rows unless the schema forbids it.
	Add(ctx context.Context, threadID model.ThreadID, accountID model.AccountID) (Result, error)

	// Remove deletes every row matching both identifiers.
	// A pair with no rows is not an error; RowsAffected is 0.
	Remove(ctx context.Context, threadID model.ThreadID, accountID model.AccountID) (Result, error)

	// GetAllReposts returns all reposts for a thread in database order.
	// An empty thread yields an empty slice.
	GetAllReposts(ctx context.Context, threadID model.ThreadID) ([]model.Repost, error)
}
