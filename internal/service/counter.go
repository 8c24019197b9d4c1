package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/guttosm/label-service/internal/circuitbreaker"
	"github.com/guttosm/label-service/internal/metrics"
	"github.com/guttosm/label-service/internal/repository"
)

// CounterSource issues serial counters scoped by context key.
//
// NextCounter reserves count consecutive values and returns the first. Every
// value it returns is strictly greater than any value previously issued for the
// same key, and the first reservation for a key starts at 1.
type CounterSource interface {
	NextCounter(ctx context.Context, contextKey string, count int) (int64, error)
	Peek(ctx context.Context, contextKey string) (int64, error)
}

// FetchNextCounter reserves a single counter value for contextKey.
func FetchNextCounter(ctx context.Context, source CounterSource, contextKey string) (int64, error) {
	return source.NextCounter(ctx, contextKey, 1)
}

// MemoryCounterSource keeps counters in process memory. It is used when
// MongoDB is disabled; counters restart at 1 when the process restarts.
type MemoryCounterSource struct {
	mu       sync.Mutex
	counters map[string]int64
}

// NewMemoryCounterSource creates an empty in-memory counter source.
func NewMemoryCounterSource() *MemoryCounterSource {
	return &MemoryCounterSource{counters: make(map[string]int64)}
}

// NextCounter reserves count values for contextKey.
func (s *MemoryCounterSource) NextCounter(ctx context.Context, contextKey string, count int) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if count <= 0 {
		return 0, &ValidationError{Field: "count", Message: "counter reservation must be positive"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	start := s.counters[contextKey] + 1
	s.counters[contextKey] += int64(count)
	return start, nil
}

// Peek returns the last value issued for contextKey.
func (s *MemoryCounterSource) Peek(_ context.Context, contextKey string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counters[contextKey], nil
}

// RepositoryCounterSource adapts a counter repository to CounterSource and
// reports store outages as ErrCounterUnavailable.
type RepositoryCounterSource struct {
	repo repository.CounterRepositoryInterface
}

// NewRepositoryCounterSource creates a counter source backed by repo.
func NewRepositoryCounterSource(repo repository.CounterRepositoryInterface) *RepositoryCounterSource {
	return &RepositoryCounterSource{repo: repo}
}

// NextCounter reserves count values for contextKey.
func (s *RepositoryCounterSource) NextCounter(ctx context.Context, contextKey string, count int) (int64, error) {
	if count <= 0 {
		return 0, &ValidationError{Field: "count", Message: "counter reservation must be positive"}
	}

	start, err := s.repo.NextCounter(ctx, contextKey, count)
	if err != nil {
		metrics.RecordCounterReservation("error")
		return 0, counterError(err)
	}
	metrics.RecordCounterReservation("success")
	return start, nil
}

// Peek returns the last value issued for contextKey.
func (s *RepositoryCounterSource) Peek(ctx context.Context, contextKey string) (int64, error) {
	last, err := s.repo.Peek(ctx, contextKey)
	if err != nil {
		return 0, counterError(err)
	}
	return last, nil
}

func counterError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return fmt.Errorf("%w: %w", ErrCounterUnavailable, err)
	}
	return fmt.Errorf("%w: %v", ErrCounterUnavailable, err)
}

var (
	_ CounterSource = (*MemoryCounterSource)(nil)
	_ CounterSource = (*RepositoryCounterSource)(nil)
)
