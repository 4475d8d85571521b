package postgres

import (
	"context"

	"repostapi/internal/model"
	"repostapi/internal/repository"
)

// RepostPostgres is a PostgreSQL implementation of repository.RepostRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type RepostPostgres struct {
	db repository.DBTX
}

// NewRepostPostgres creates a new RepostPostgres repository over an existing connection.
func NewRepostPostgres(db repository.DBTX) *RepostPostgres {
	return &RepostPostgres{db: db}
}

var _ repository.RepostRepository = (*RepostPostgres)(nil)

// Add inserts a repost row with reposted_at set by the server clock.
func (r *RepostPostgres) Add(ctx context.Context, threadID model.ThreadID, accountID model.AccountID) (repository.Result, error) {
	const q = `
		INSERT INTO reposts (account_id, thread_id, reposted_at)
		VALUES ($1, $2, NOW())
	`
	res, err := r.db.ExecContext(ctx, q, int64(accountID), int64(threadID))
	if err != nil {
		return repository.Result{}, repository.Wrap(repository.OpAdd, err)
	}
	out, err := repository.ResultFrom(res)
	return out, repository.Wrap(repository.OpAdd, err)
}

// Remove deletes all reposts of threadID by accountID.
func (r *RepostPostgres) Remove(ctx context.Context, threadID model.ThreadID, accountID model.AccountID) (repository.Result, error) {
	const q = `
		DELETE FROM reposts
		WHERE thread_id = $1 AND account_id = $2
	`
	res, err := r.db.ExecContext(ctx, q, int64(threadID), int64(accountID))
	if err != nil {
		return repository.Result{}, repository.Wrap(repository.OpRemove, err)
	}
	out, err := repository.ResultFrom(res)
	return out, repository.Wrap(repository.OpRemove, err)
}

// GetAllReposts lists reposts for a thread. No ORDER BY is applied.
func (r *RepostPostgres) GetAllReposts(ctx context.Context, threadID model.ThreadID) ([]model.Repost, error) {
	const q = `
		SELECT thread_id, account_id, reposted_at
		FROM reposts
		WHERE thread_id = $1
	`
	rows, err := r.db.QueryContext(ctx, q, int64(threadID))
	if err != nil {
		return nil, repository.Wrap(repository.OpGetAll, err)
	}
	defer rows.Close()

	items := make([]model.Repost, 0)
	for rows.Next() {
		var rp model.Repost
		if err := rows.Scan(&rp.ThreadID, &rp.AccountID, &rp.RepostedAt); err != nil {
			return nil, repository.Wrap(repository.OpGetAll, err)
		}
		items = append(items, rp)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.Wrap(repository.OpGetAll, err)
	}

	return items, nil
}
