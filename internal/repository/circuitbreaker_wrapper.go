package repository

import (
	"context"
	"errors"

	"github.com/guttosm/label-service/internal/circuitbreaker"
	"github.com/guttosm/label-service/internal/domain/model"
)

// IsStoreFailure reports whether err means MongoDB itself is unhealthy. Lookups
// that miss and duplicate serials are answers, not outages.
func IsStoreFailure(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrDuplicateSerial):
		return false
	case errors.Is(err, context.Canceled):
		return false
	}
	return true
}

// CounterRepositoryWithCircuitBreaker fails counter reservations fast while
// MongoDB is unavailable.
type CounterRepositoryWithCircuitBreaker struct {
	repo           CounterRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCounterRepositoryWithCircuitBreaker wraps repo with cb.
func NewCounterRepositoryWithCircuitBreaker(repo CounterRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *CounterRepositoryWithCircuitBreaker {
	return &CounterRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// NextCounter reserves counters. An open circuit returns circuitbreaker.ErrCircuitOpen.
func (r *CounterRepositoryWithCircuitBreaker) NextCounter(ctx context.Context, key string, count int) (int64, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func(ctx context.Context) (int64, error) {
		return r.repo.NextCounter(ctx, key, count)
	})
}

// Peek returns the last issued counter.
func (r *CounterRepositoryWithCircuitBreaker) Peek(ctx context.Context, key string) (int64, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func(ctx context.Context) (int64, error) {
		return r.repo.Peek(ctx, key)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CounterRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// PrintBatchRepositoryWithCircuitBreaker protects batch persistence.
type PrintBatchRepositoryWithCircuitBreaker struct {
	repo           PrintBatchRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewPrintBatchRepositoryWithCircuitBreaker wraps repo with cb.
func NewPrintBatchRepositoryWithCircuitBreaker(repo PrintBatchRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *PrintBatchRepositoryWithCircuitBreaker {
	return &PrintBatchRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a batch.
func (r *PrintBatchRepositoryWithCircuitBreaker) Create(ctx context.Context, batch *model.PrintBatch) error {
	return r.circuitBreaker.Execute(ctx, func(ctx context.Context) error {
		return r.repo.Create(ctx, batch)
	})
}

// Get returns one batch.
func (r *PrintBatchRepositoryWithCircuitBreaker) Get(ctx context.Context, id string) (*model.PrintBatch, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func(ctx context.Context) (*model.PrintBatch, error) {
		return r.repo.Get(ctx, id)
	})
}

// List returns recent batches.
func (r *PrintBatchRepositoryWithCircuitBreaker) List(ctx context.Context, contextKey string, limit int) ([]model.PrintBatch, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func(ctx context.Context) ([]model.PrintBatch, error) {
		return r.repo.List(ctx, contextKey, limit)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *PrintBatchRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker protects audit logging. Writes are dropped
// while the circuit is open because logging must never block a workflow.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker wraps repo with cb.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func(ctx context.Context) error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores entries in bulk.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func(ctx context.Context) error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves log entries.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func(ctx context.Context) ([]model.LogEntry, error) {
		return r.repo.Query(ctx, opts)
	})
}

// Count returns the count of matching log entries.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func(ctx context.Context) (int64, error) {
		return r.repo.Count(ctx, opts)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
