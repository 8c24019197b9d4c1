//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/label-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := setupTestDB(t)
	require.NoError(t, db.SetLogsTTL(ctx, 30))
	repo := NewLogsRepository(db)

	t.Run("create assigns id and timestamp", func(t *testing.T) {
		entry := &model.LogEntry{Level: "info", Message: "request", RequestID: "req-1", Method: "POST", StatusCode: 201}
		require.NoError(t, repo.Create(ctx, entry))
		assert.NotEmpty(t, entry.ID)
		assert.False(t, entry.Timestamp.IsZero())
	})

	t.Run("create many", func(t *testing.T) {
		err := repo.CreateMany(ctx, []*model.LogEntry{
			{Level: "info", Message: "generated", WorkflowID: "wf-1", ActionType: model.ActionGenerate},
			{Level: "warn", Message: "edit rejected", WorkflowID: "wf-1", ActionType: model.ActionEditRejected},
			{Level: "info", Message: "submitted", WorkflowID: "wf-2", ActionType: model.ActionSubmit},
		})
		require.NoError(t, err)
	})

	t.Run("query by workflow", func(t *testing.T) {
		entries, err := repo.Query(ctx, model.LogQueryOptions{WorkflowID: "wf-1"})
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("query by action type", func(t *testing.T) {
		entries, err := repo.Query(ctx, model.LogQueryOptions{ActionType: model.ActionSubmit})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "wf-2", entries[0].WorkflowID)
	})

	t.Run("count with time range", func(t *testing.T) {
		from := time.Now().Add(-time.Hour)
		count, err := repo.Count(ctx, model.LogQueryOptions{StartTime: &from})
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)
	})

	t.Run("limit and skip", func(t *testing.T) {
		entries, err := repo.Query(ctx, model.LogQueryOptions{Limit: 2, Skip: 1})
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})
}
