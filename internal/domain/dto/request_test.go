package dto

import (
	"testing"

	"github.com/guttosm/label-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewAllocationRequest_ToModel(t *testing.T) {
	tests := []struct {
		name         string
		request      PreviewAllocationRequest
		fallback     model.Strategy
		wantStrategy model.Strategy
		wantErr      bool
	}{
		{
			name:         "explicit strategy wins",
			request:      PreviewAllocationRequest{TotalQuantity: 100, LabelCount: 3, Strategy: "spread"},
			fallback:     model.StrategyRemainderOnLast,
			wantStrategy: model.StrategyRemainderSpreadFirst,
		},
		{
			name:         "server default applies",
			request:      PreviewAllocationRequest{TotalQuantity: 100, LabelCount: 3},
			fallback:     model.StrategyRemainderSpreadFirst,
			wantStrategy: model.StrategyRemainderSpreadFirst,
		},
		{
			name:         "invalid default falls back to remainder on last",
			request:      PreviewAllocationRequest{TotalQuantity: 100, LabelCount: 3},
			fallback:     "",
			wantStrategy: model.StrategyRemainderOnLast,
		},
		{
			name:    "unknown strategy",
			request: PreviewAllocationRequest{TotalQuantity: 100, LabelCount: 3, Strategy: "zigzag"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.request.ToModel(tt.fallback)
			if tt.wantErr {
				var reqErr *RequestError
				require.ErrorAs(t, err, &reqErr)
				assert.Equal(t, "strategy", reqErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStrategy, got.Strategy)
			assert.Equal(t, tt.request.TotalQuantity, got.TotalQuantity)
		})
	}
}

func TestPreviewAllocationRequest_TrimsPrefixParts(t *testing.T) {
	req := PreviewAllocationRequest{
		TotalQuantity:     10,
		LabelCount:        2,
		SerialPrefixParts: []string{" GRN-1 ", "", "P-9"},
		StartingCounter:   5,
	}

	got, err := req.ToModel(model.StrategyRemainderOnLast)
	require.NoError(t, err)
	assert.Equal(t, []string{"GRN-1", "P-9"}, got.SerialPrefixParts)
	assert.Equal(t, int64(5), got.StartingCounter)
}

func TestGenerateRequest_ToModel(t *testing.T) {
	t.Run("empty prefix stays empty", func(t *testing.T) {
		req := GenerateRequest{TotalQuantity: 100, LabelCount: 3, SerialPrefixParts: []string{" "}}
		got, err := req.ToModel(model.StrategyRemainderOnLast)
		require.NoError(t, err)
		assert.Empty(t, got.SerialPrefixParts)
		assert.Zero(t, got.StartingCounter)
	})

	t.Run("explicit prefix is trimmed", func(t *testing.T) {
		req := GenerateRequest{TotalQuantity: 100, LabelCount: 3, SerialPrefixParts: []string{" FG-1 "}, Strategy: "b"}
		got, err := req.ToModel(model.StrategyRemainderOnLast)
		require.NoError(t, err)
		assert.Equal(t, []string{"FG-1"}, got.SerialPrefixParts)
		assert.Equal(t, model.StrategyRemainderSpreadFirst, got.Strategy)
	})

	t.Run("rejects unknown strategy", func(t *testing.T) {
		req := GenerateRequest{TotalQuantity: 100, LabelCount: 3, Strategy: "nope"}
		_, err := req.ToModel(model.StrategyRemainderOnLast)
		assert.Error(t, err)
	})
}

func TestCreateWorkflowRequest_Validate(t *testing.T) {
	assert.NoError(t, (&CreateWorkflowRequest{ContextParts: []string{"GRN-1", "P-2"}}).Validate())
	assert.Equal(t, ErrEmptyContextKey, (&CreateWorkflowRequest{ContextParts: []string{" ", ""}}).Validate())
	assert.Equal(t, "GRN-1|P-2", (&CreateWorkflowRequest{ContextParts: []string{"GRN-1", "P-2"}}).ContextKey())
	assert.Equal(t, []string{"GRN-1", "P-2"}, (&CreateWorkflowRequest{ContextParts: []string{" GRN-1", "", "P-2 "}}).Parts())
}

func TestRequestError_Error(t *testing.T) {
	err := &RequestError{Field: "strategy", Message: "unknown value"}
	assert.Equal(t, "strategy: unknown value", err.Error())
}
