//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/label-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBatch(contextKey string, serials ...string) *model.PrintBatch {
	labels := make([]model.LabelAllocation, len(serials))
	for i, s := range serials {
		labels[i] = model.LabelAllocation{SerialNumber: s, Quantity: 10, Editable: true}
	}
	return &model.PrintBatch{
		ID:            uuid.NewString(),
		WorkflowID:    uuid.NewString(),
		ContextKey:    contextKey,
		TotalQuantity: 10 * len(serials),
		LabelCount:    len(serials),
		Strategy:      model.StrategyRemainderOnLast,
		Labels:        labels,
		CreatedAt:     time.Now().UTC().Truncate(time.Millisecond),
	}
}

func TestPrintBatchRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewPrintBatchRepository(setupTestDB(t))

	first := newBatch("GRN-1|RM-1", "GRN-1|RM-1|1", "GRN-1|RM-1|2")
	require.NoError(t, repo.Create(ctx, first))

	t.Run("get returns the stored batch", func(t *testing.T) {
		got, err := repo.Get(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, first.ContextKey, got.ContextKey)
		assert.Equal(t, first.Labels, got.Labels)
		assert.Equal(t, 20, got.TotalQuantity)
	})

	t.Run("get unknown id", func(t *testing.T) {
		_, err := repo.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("reprinting a serial is rejected", func(t *testing.T) {
		err := repo.Create(ctx, newBatch("GRN-1|RM-1", "GRN-1|RM-1|2"))
		assert.ErrorIs(t, err, ErrDuplicateSerial)
	})

	t.Run("list filters by context key", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, newBatch("GRN-2|RM-1", "GRN-2|RM-1|1")))

		batches, err := repo.List(ctx, "GRN-1|RM-1", 0)
		require.NoError(t, err)
		require.Len(t, batches, 1)
		assert.Equal(t, first.ID, batches[0].ID)

		all, err := repo.List(ctx, "", 10)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}
