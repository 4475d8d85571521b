package repository

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"repostapi/internal/model"
)

// InstrumentedRepostRepository records Prometheus metrics around a RepostRepository.
type InstrumentedRepostRepository struct {
	next RepostRepository

	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewInstrumentedRepostRepository registers the repository metrics on reg.
func NewInstrumentedRepostRepository(next RepostRepository, reg prometheus.Registerer) (*InstrumentedRepostRepository, error) {
	r := &InstrumentedRepostRepository{
		next: next,
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "repost_db_operations_total",
				Help: "Total number of repost repository operations.",
			},
			[]string{"operation", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "repost_db_operation_duration_seconds",
				Help:    "Latency of repost repository operations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}

	if err := reg.Register(r.operations); err != nil {
		return nil, err
	}
	if err := reg.Register(r.duration); err != nil {
		return nil, err
	}
	return r, nil
}

var _ RepostRepository = (*InstrumentedRepostRepository)(nil)

func (r *InstrumentedRepostRepository) Add(ctx context.Context, threadID model.ThreadID, accountID model.AccountID) (Result, error) {
	defer r.observe(OpAdd, time.Now())
	res, err := r.next.Add(ctx, threadID, accountID)
	r.count(OpAdd, err)
	return res, err
}

func (r *InstrumentedRepostRepository) Remove(ctx context.Context, threadID model.ThreadID, accountID model.AccountID) (Result, error) {
	defer r.observe(OpRemove, time.Now())
	res, err := r.next.Remove(ctx, threadID, accountID)
	r.count(OpRemove, err)
	return res, err
}

func (r *InstrumentedRepostRepository) GetAllReposts(ctx context.Context, threadID model.ThreadID) ([]model.Repost, error) {
	defer r.observe(OpGetAll, time.Now())
	items, err := r.next.GetAllReposts(ctx, threadID)
	r.count(OpGetAll, err)
	return items, err
}

func (r *InstrumentedRepostRepository) count(op string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	r.operations.WithLabelValues(op, status).Inc()
}

func (r *InstrumentedRepostRepository) observe(op string, start time.Time) {
	r.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
