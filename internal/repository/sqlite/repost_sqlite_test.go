package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"repostapi/internal/model"
	"repostapi/internal/repository"
)

// The schema is owned outside this package; tests create an equivalent table.
const testSchema = `
CREATE TABLE reposts (
	account_id  INTEGER  NOT NULL,
	thread_id   INTEGER  NOT NULL,
	reposted_at DATETIME NOT NULL
);`

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// every pooled connection would otherwise see its own empty database
	db.SetMaxOpenConns(1)

	_, err = db.Exec(testSchema)
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })
	return db
}

func accounts(items []model.Repost) []model.AccountID {
	out := make([]model.AccountID, 0, len(items))
	for _, it := range items {
		out = append(out, it.AccountID)
	}
	return out
}

func TestRepostSQLite_Lifecycle(t *testing.T) {
	repo := NewRepostSQLite(newTestDB(t))
	ctx := context.Background()

	res, err := repo.Add(ctx, 42, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.RowsAffected)

	got, err := repo.GetAllReposts(ctx, 42)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.ThreadID(42), got[0].ThreadID)
	assert.Equal(t, model.AccountID(7), got[0].AccountID)
	assert.False(t, got[0].RepostedAt.IsZero())
	assert.WithinDuration(t, time.Now(), got[0].RepostedAt, time.Minute)

	res, err = repo.Remove(ctx, 42, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.RowsAffected)

	got, err = repo.GetAllReposts(ctx, 42)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRepostSQLite_GetAllReposts(t *testing.T) {
	repo := NewRepostSQLite(newTestDB(t))
	ctx := context.Background()

	t.Run("empty thread", func(t *testing.T) {
		got, err := repo.GetAllReposts(ctx, 999)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("only the requested thread", func(t *testing.T) {
		for _, p := range []struct {
			thread  model.ThreadID
			account model.AccountID
		}{{1, 10}, {1, 11}, {2, 10}} {
			_, err := repo.Add(ctx, p.thread, p.account)
			require.NoError(t, err)
		}

		got, err := repo.GetAllReposts(ctx, 1)
		require.NoError(t, err)
		assert.ElementsMatch(t, []model.AccountID{10, 11}, accounts(got))
	})
}

func TestRepostSQLite_Remove(t *testing.T) {
	repo := NewRepostSQLite(newTestDB(t))
	ctx := context.Background()

	t.Run("missing pair is a no-op", func(t *testing.T) {
		res, err := repo.Remove(ctx, 3, 4)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), res.RowsAffected)
	})

	t.Run("duplicates are all removed", func(t *testing.T) {
		_, err := repo.Add(ctx, 5, 6)
		require.NoError(t, err)
		_, err = repo.Add(ctx, 5, 6)
		require.NoError(t, err)
		_, err = repo.Add(ctx, 5, 8)
		require.NoError(t, err)

		got, err := repo.GetAllReposts(ctx, 5)
		require.NoError(t, err)
		assert.Len(t, got, 3)

		res, err := repo.Remove(ctx, 5, 6)
		require.NoError(t, err)
		assert.Equal(t, int64(2), res.RowsAffected)

		got, err = repo.GetAllReposts(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, []model.AccountID{8}, accounts(got))
	})

	t.Run("identifiers are not transposed", func(t *testing.T) {
		_, err := repo.Add(ctx, 100, 200)
		require.NoError(t, err)

		res, err := repo.Remove(ctx, 200, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(0), res.RowsAffected)

		got, err := repo.GetAllReposts(ctx, 100)
		require.NoError(t, err)
		assert.Equal(t, []model.AccountID{200}, accounts(got))
	})
}

func TestRepostSQLite_Failures(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepostSQLite(db)
	ctx := context.Background()

	_, err := db.Exec(`DROP TABLE reposts`)
	require.NoError(t, err)

	_, err = repo.Add(ctx, 1, 2)
	assert.ErrorIs(t, err, repository.ErrDatabaseOperationFailed)

	_, err = repo.Remove(ctx, 1, 2)
	assert.ErrorIs(t, err, repository.ErrDatabaseOperationFailed)

	got, err := repo.GetAllReposts(ctx, 1)
	assert.ErrorIs(t, err, repository.ErrDatabaseOperationFailed)
	assert.Nil(t, got)

	var dbErr *repository.DatabaseError
	require.ErrorAs(t, err, &dbErr)
	assert.Equal(t, repository.OpGetAll, dbErr.Op)
}

func TestRepostSQLite_WithinTransaction(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	_, err = NewRepostSQLite(tx).Add(ctx, 9, 9)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	got, err := NewRepostSQLite(db).GetAllReposts(ctx, 9)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDBTime_Scan(t *testing.T) {
	var ts time.Time
	want := time.Date(2026, 10, 18, 12, 30, 0, 0, time.UTC)

	assert.NoError(t, dbTime{&ts}.Scan("2026-10-18 12:30:00"))
	assert.Equal(t, want, ts)

	assert.NoError(t, dbTime{&ts}.Scan([]byte("2026-10-18T12:30:00Z")))
	assert.Equal(t, want, ts)

	assert.NoError(t, dbTime{&ts}.Scan(want))
	assert.Equal(t, want, ts)

	assert.Error(t, dbTime{&ts}.Scan("yesterday"))
	assert.Error(t, dbTime{&ts}.Scan(int64(5)))
}
