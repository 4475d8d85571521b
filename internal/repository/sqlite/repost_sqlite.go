package sqlite

import (
	"context"

	"repostapi/internal/model"
	"repostapi/internal/repository"
)

// RepostSQLite implements repository.RepostRepository on SQLite.
// Queries mirror the PostgreSQL ones but use ? placeholders and CURRENT_TIMESTAMP.
type RepostSQLite struct {
	db repository.DBTX
}

// NewRepostSQLite creates a SQLite repost repository over an existing connection.
func NewRepostSQLite(db repository.DBTX) *RepostSQLite {
	return &RepostSQLite{db: db}
}

var _ repository.RepostRepository = (*RepostSQLite)(nil)

func (r *RepostSQLite) Add(ctx context.Context, threadID model.ThreadID, accountID model.AccountID) (repository.Result, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO reposts (account_id, thread_id, reposted_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
	`, int64(accountID), int64(threadID))
	if err != nil {
		return repository.Result{}, repository.Wrap(repository.OpAdd, err)
	}
	out, err := repository.ResultFrom(res)
	return out, repository.Wrap(repository.OpAdd, err)
}

func (r *RepostSQLite) Remove(ctx context.Context, threadID model.ThreadID, accountID model.AccountID) (repository.Result, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM reposts
		WHERE thread_id = ? AND account_id = ?
	`, int64(threadID), int64(accountID))
	if err != nil {
		return repository.Result{}, repository.Wrap(repository.OpRemove, err)
	}
	out, err := repository.ResultFrom(res)
	return out, repository.Wrap(repository.OpRemove, err)
}

func (r *RepostSQLite) GetAllReposts(ctx context.Context, threadID model.ThreadID) ([]model.Repost, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT thread_id, account_id, reposted_at
		FROM reposts
		WHERE thread_id = ?
	`, int64(threadID))
	if err != nil {
		return nil, repository.Wrap(repository.OpGetAll, err)
	}
	defer rows.Close()

	items := make([]model.Repost, 0)
	for rows.Next() {
		var rp model.Repost
		if err := rows.Scan(&rp.ThreadID, &rp.AccountID, dbTime{&rp.RepostedAt}); err != nil {
			return nil, repository.Wrap(repository.OpGetAll, err)
		}
		items = append(items, rp)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.Wrap(repository.OpGetAll, err)
	}

	return items, nil
}
