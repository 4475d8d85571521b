package repository

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"repostapi/internal/model"
)

// LoggedRepostRepository logs every failed operation and passes the error
// through untouched. Successful calls are logged at debug level. Result
// fields (rows_affected, count) are only present on success.
type LoggedRepostRepository struct {
	next RepostRepository
	log  zerolog.Logger
}

// NewLoggedRepostRepository wraps next with structured logging.
func NewLoggedRepostRepository(next RepostRepository, log zerolog.Logger) *LoggedRepostRepository {
	return &LoggedRepostRepository{
		next: next,
		log:  log.With().Str("component", "repository").Logger(),
	}
}

var _ RepostRepository = (*LoggedRepostRepository)(nil)

func (r *LoggedRepostRepository) Add(ctx context.Context, threadID model.ThreadID, accountID model.AccountID) (Result, error) {
	start := time.Now()
	res, err := r.next.Add(ctx, threadID, accountID)
	r.logResult(OpAdd, start, err, func(e *zerolog.Event) *zerolog.Event {
		e = e.Int64("thread_id", int64(threadID)).Int64("account_id", int64(accountID))
		if err == nil {
			e = e.Int64("rows_affected", res.RowsAffected)
		}
		return e
	})
	return res, err
}

func (r *LoggedRepostRepository) Remove(ctx context.Context, threadID model.ThreadID, accountID model.AccountID) (Result, error) {
	start := time.Now()
	res, err := r.next.Remove(ctx, threadID, accountID)
	r.logResult(OpRemove, start, err, func(e *zerolog.Event) *zerolog.Event {
		e = e.Int64("thread_id", int64(threadID)).Int64("account_id", int64(accountID))
		if err == nil {
			e = e.Int64("rows_affected", res.RowsAffected)
		}
		return e
	})
	return res, err
}

func (r *LoggedRepostRepository) GetAllReposts(ctx context.Context, threadID model.ThreadID) ([]model.Repost, error) {
	start := time.Now()
	items, err := r.next.GetAllReposts(ctx, threadID)
	r.logResult(OpGetAll, start, err, func(e *zerolog.Event) *zerolog.Event {
		e = e.Int64("thread_id", int64(threadID))
		if err == nil {
			e = e.Int("count", len(items))
		}
		return e
	})
	return items, err
}

func (r *LoggedRepostRepository) logResult(op string, start time.Time, err error, fields func(*zerolog.Event) *zerolog.Event) {
	var e *zerolog.Event
	if err != nil {
		e = r.log.Error().Err(err).Str("event", "db_operation_failed").Str("status", "error")
	} else {
		e = r.log.Debug().Str("event", "db_operation").Str("status", "success")
	}
	if e == nil {
		return
	}
	fields(e).
		Str("operation", op).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Send()
}
