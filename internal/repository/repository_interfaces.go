package repository

import (
	"context"

	"github.com/guttosm/label-service/internal/domain/model"
)

// CounterRepositoryInterface issues serial counters per context key.
type CounterRepositoryInterface interface {
	NextCounter(ctx context.Context, key string, count int) (int64, error)
	Peek(ctx context.Context, key string) (int64, error)
}

// PrintBatchRepositoryInterface stores submitted print batches.
type PrintBatchRepositoryInterface interface {
	Create(ctx context.Context, batch *model.PrintBatch) error
	Get(ctx context.Context, id string) (*model.PrintBatch, error)
	List(ctx context.Context, contextKey string, limit int) ([]model.PrintBatch, error)
}

// LogsRepositoryInterface stores audit and request log entries.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *model.LogEntry) error
	CreateMany(ctx context.Context, entries []*model.LogEntry) error
	Query(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error)
	Count(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}

var (
	_ CounterRepositoryInterface    = (*CounterRepository)(nil)
	_ PrintBatchRepositoryInterface = (*PrintBatchRepository)(nil)
	_ LogsRepositoryInterface       = (*LogsRepository)(nil)
	_ CounterRepositoryInterface    = (*CounterRepositoryWithCircuitBreaker)(nil)
	_ PrintBatchRepositoryInterface = (*PrintBatchRepositoryWithCircuitBreaker)(nil)
	_ LogsRepositoryInterface       = (*LogsRepositoryWithCircuitBreaker)(nil)
)
