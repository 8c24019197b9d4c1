package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/label-service/internal/domain/model"
	"github.com/guttosm/label-service/internal/repository"
)

// SubmissionSink accepts validated allocation batches for printing.
//
// A batch the sink refuses for business reasons (e.g. a reprinted serial) is
// reported as SubmitResult{Success: false}; errors mean the sink could not be
// reached and the batch may be retried.
type SubmissionSink interface {
	Submit(ctx context.Context, batch *model.PrintBatch) (model.SubmitResult, error)
}

// PrintBatchReader reads submitted batches.
type PrintBatchReader interface {
	Get(ctx context.Context, id string) (*model.PrintBatch, error)
	List(ctx context.Context, contextKey string, limit int) ([]model.PrintBatch, error)
}

// PrintBatchService is the submission sink plus its read side.
type PrintBatchService interface {
	SubmissionSink
	PrintBatchReader
}

// PrintBatchServiceImpl persists batches through a print batch store.
type PrintBatchServiceImpl struct {
	store repository.PrintBatchRepositoryInterface
	now   func() time.Time
}

// NewPrintBatchService creates a print batch service. A nil store falls back to
// process memory.
func NewPrintBatchService(store repository.PrintBatchRepositoryInterface) *PrintBatchServiceImpl {
	if store == nil {
		store = NewMemoryPrintBatchStore()
	}
	return &PrintBatchServiceImpl{
		store: store,
		now:   time.Now,
	}
}

// Submit stores the batch and returns its ID.
func (s *PrintBatchServiceImpl) Submit(ctx context.Context, batch *model.PrintBatch) (model.SubmitResult, error) {
	if batch == nil || len(batch.Labels) == 0 {
		return model.SubmitResult{}, &ValidationError{Field: "labels", Message: "batch has no labels"}
	}
	if err := ValidateForSubmission(batch.Labels, batch.TotalQuantity); err != nil {
		return model.SubmitResult{}, err
	}

	if batch.ID == "" {
		batch.ID = uuid.NewString()
	}
	if batch.CreatedAt.IsZero() {
		batch.CreatedAt = s.now().UTC()
	}
	batch.LabelCount = len(batch.Labels)

	err := s.store.Create(ctx, batch)
	switch {
	case err == nil:
		return model.SubmitResult{
			Success: true,
			BatchID: batch.ID,
			Message: fmt.Sprintf("%d labels accepted for printing", batch.LabelCount),
		}, nil
	case errors.Is(err, repository.ErrDuplicateSerial):
		return model.SubmitResult{Success: false, Message: err.Error()}, nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return model.SubmitResult{}, err
	default:
		return model.SubmitResult{}, fmt.Errorf("%w: %w", ErrSinkUnavailable, err)
	}
}

// Get returns one batch.
func (s *PrintBatchServiceImpl) Get(ctx context.Context, id string) (*model.PrintBatch, error) {
	batch, err := s.store.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrBatchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSinkUnavailable, err)
	}
	return batch, nil
}

// List returns recent batches, optionally for one context key.
func (s *PrintBatchServiceImpl) List(ctx context.Context, contextKey string, limit int) ([]model.PrintBatch, error) {
	batches, err := s.store.List(ctx, contextKey, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSinkUnavailable, err)
	}
	return batches, nil
}

// MemoryPrintBatchStore keeps batches in process memory and enforces serial
// uniqueness the same way the MongoDB index does.
type MemoryPrintBatchStore struct {
	mu      sync.RWMutex
	batches map[string]model.PrintBatch
	serials map[string]string
}

// NewMemoryPrintBatchStore creates an empty store.
func NewMemoryPrintBatchStore() *MemoryPrintBatchStore {
	return &MemoryPrintBatchStore{
		batches: make(map[string]model.PrintBatch),
		serials: make(map[string]string),
	}
}

// Create stores a copy of batch.
func (m *MemoryPrintBatchStore) Create(_ context.Context, batch *model.PrintBatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, label := range batch.Labels {
		if _, taken := m.serials[label.SerialNumber]; taken {
			return repository.ErrDuplicateSerial
		}
	}
	for _, label := range batch.Labels {
		m.serials[label.SerialNumber] = batch.ID
	}

	stored := *batch
	stored.Labels = model.CloneAllocations(batch.Labels)
	m.batches[batch.ID] = stored
	return nil
}

// Get returns a copy of the batch.
func (m *MemoryPrintBatchStore) Get(_ context.Context, id string) (*model.PrintBatch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	batch, ok := m.batches[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	batch.Labels = model.CloneAllocations(batch.Labels)
	return &batch, nil
}

// List returns the newest batches first.
func (m *MemoryPrintBatchStore) List(_ context.Context, contextKey string, limit int) ([]model.PrintBatch, error) {
	if limit <= 0 {
		limit = repository.DefaultBatchListLimit
	}

	m.mu.RLock()
	out := make([]model.PrintBatch, 0, len(m.batches))
	for _, batch := range m.batches {
		if contextKey == "" || batch.ContextKey == contextKey {
			batch.Labels = model.CloneAllocations(batch.Labels)
			out = append(out, batch)
		}
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var (
	_ PrintBatchService                        = (*PrintBatchServiceImpl)(nil)
	_ repository.PrintBatchRepositoryInterface = (*MemoryPrintBatchStore)(nil)
)
