package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/label-service/internal/domain/model"
	"github.com/guttosm/label-service/internal/mocks"
)

type auditRecorder struct {
	mu      sync.Mutex
	entries []*model.LogEntry
}

func (r *auditRecorder) Log(entry *model.LogEntry) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return true
}

func (r *auditRecorder) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.ActionType
	}
	return out
}

func (r *auditRecorder) last() *model.LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entries[len(r.entries)-1]
}

type workflowFixture struct {
	svc      *WorkflowServiceImpl
	counters *MemoryCounterSource
	batches  *PrintBatchServiceImpl
	audit    *auditRecorder
	clock    *manualClock
}

func newWorkflowFixture(t *testing.T, opts ...WorkflowOption) *workflowFixture {
	t.Helper()
	f := &workflowFixture{
		counters: NewMemoryCounterSource(),
		batches:  NewPrintBatchService(nil),
		audit:    &auditRecorder{},
		clock:    newManualClock(),
	}
	opts = append([]WorkflowOption{
		WithAuditSink(f.audit),
		WithWorkflowClock(f.clock.Now),
	}, opts...)
	f.svc = NewWorkflowService(NewLabelAllocatorService(), f.counters, f.batches, opts...)
	t.Cleanup(f.svc.Stop)
	return f
}

func generated(t *testing.T, f *workflowFixture, parts []string, request model.AllocationRequest) model.Workflow {
	t.Helper()
	ctx := context.Background()
	w, err := f.svc.Create(ctx, parts)
	require.NoError(t, err)
	w, err = f.svc.Generate(ctx, w.ID, request)
	require.NoError(t, err)
	return w
}

func TestWorkflowService_Create(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	w, err := f.svc.Create(ctx, []string{" GRN123 ", "", "P-01"})
	require.NoError(t, err)

	assert.NotEmpty(t, w.ID)
	assert.Equal(t, "GRN123|P-01", w.ContextKey)
	assert.Equal(t, []string{"GRN123", "P-01"}, w.ContextParts)
	assert.Equal(t, model.WorkflowIdle, w.State)
	assert.Nil(t, w.Allocations)
	assert.Equal(t, []string{model.ActionWorkflowCreated}, f.audit.actions())

	got, err := f.svc.Get(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, w, got)

	_, err = f.svc.Create(ctx, []string{" ", ""})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "context_parts", vErr.Field)

	_, err = f.svc.Get(ctx, "unknown")
	assert.ErrorIs(t, err, ErrWorkflowNotFound)
}

func TestWorkflowService_Generate(t *testing.T) {
	tests := []struct {
		name       string
		request    model.AllocationRequest
		quantities []int
		serials    []string
	}{
		{
			name: "uses context parts as serial prefix",
			request: model.AllocationRequest{
				TotalQuantity: 100,
				LabelCount:    3,
				Strategy:      model.StrategyRemainderOnLast,
			},
			quantities: []int{33, 33, 34},
			serials:    []string{"GRN123|P-01|1", "GRN123|P-01|2", "GRN123|P-01|3"},
		},
		{
			name: "explicit prefix and default strategy",
			request: model.AllocationRequest{
				TotalQuantity:     100,
				LabelCount:        3,
				SerialPrefixParts: []string{"RM", "42"},
			},
			quantities: []int{33, 33, 34},
			serials:    []string{"RM|42|1", "RM|42|2", "RM|42|3"},
		},
		{
			name: "spread first",
			request: model.AllocationRequest{
				TotalQuantity: 100,
				LabelCount:    3,
				Strategy:      model.StrategyRemainderSpreadFirst,
			},
			quantities: []int{34, 33, 33},
			serials:    []string{"GRN123|P-01|1", "GRN123|P-01|2", "GRN123|P-01|3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWorkflowFixture(t)

			w := generated(t, f, []string{"GRN123", "P-01"}, tt.request)

			assert.Equal(t, model.WorkflowGenerated, w.State)
			assert.Equal(t, tt.quantities, quantities(w.Allocations))
			serials := make([]string, len(w.Allocations))
			for i, a := range w.Allocations {
				serials[i] = a.SerialNumber
			}
			assert.Equal(t, tt.serials, serials)
			assert.Equal(t, 100, w.Allocated)
			assert.Zero(t, w.Remaining())
			require.NotNil(t, w.Request)
			assert.Equal(t, int64(1), w.Request.StartingCounter)
			assert.True(t, w.Request.Strategy.Valid())
		})
	}
}

func TestWorkflowService_GenerateContinuesCounters(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()
	request := model.AllocationRequest{TotalQuantity: 10, LabelCount: 2}

	first := generated(t, f, []string{"GRN123", "P-01"}, request)
	_, err := f.svc.Reset(ctx, first.ID)
	require.NoError(t, err)

	again, err := f.svc.Generate(ctx, first.ID, request)
	require.NoError(t, err)
	assert.Equal(t, "GRN123|P-01|3", again.Allocations[0].SerialNumber, "reset does not return counters")

	other := generated(t, f, []string{"GRN123", "P-01"}, request)
	assert.Equal(t, "GRN123|P-01|5", other.Allocations[0].SerialNumber)

	last, err := f.counters.Peek(ctx, "GRN123|P-01")
	require.NoError(t, err)
	assert.Equal(t, int64(6), last)
}

func TestWorkflowService_SharedPrefixNeverRepeatsSerials(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()
	request := model.AllocationRequest{TotalQuantity: 4, LabelCount: 2, SerialPrefixParts: []string{"P"}}

	a := generated(t, f, []string{"GRN-1"}, request)
	b := generated(t, f, []string{"GRN-2"}, request)

	assert.Equal(t, "P|1", a.Allocations[0].SerialNumber)
	assert.Equal(t, "P|3", b.Allocations[0].SerialNumber)

	_, result, err := f.svc.Submit(ctx, a.ID, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)
	_, result, err = f.svc.Submit(ctx, b.ID, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)

	last, err := f.counters.Peek(ctx, "P")
	require.NoError(t, err)
	assert.Equal(t, int64(4), last)
	last, err = f.counters.Peek(ctx, "GRN-1")
	require.NoError(t, err)
	assert.Zero(t, last)
}

func TestWorkflowService_GenerateInvalidKeepsIdle(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	w, err := f.svc.Create(ctx, []string{"GRN123"})
	require.NoError(t, err)

	for _, request := range []model.AllocationRequest{
		{TotalQuantity: 0, LabelCount: 3},
		{TotalQuantity: 10, LabelCount: 0},
		{TotalQuantity: 10, LabelCount: DefaultMaxLabelCount + 1},
		{TotalQuantity: 10, LabelCount: 2, Strategy: "even"},
	} {
		got, err := f.svc.Generate(ctx, w.ID, request)
		assert.True(t, errors.As(err, new(*ValidationError)), "request %+v", request)
		assert.Equal(t, model.WorkflowIdle, got.State)
		assert.Nil(t, got.Allocations)
	}

	last, err := f.counters.Peek(ctx, "GRN123")
	require.NoError(t, err)
	assert.Zero(t, last, "invalid requests consume no counters")
}

func TestWorkflowService_GenerateCounterFailure(t *testing.T) {
	ctx := context.Background()
	counters := new(mocks.MockCounterSource)
	counters.On("NextCounter", mock.Anything, "GRN123", 3).Return(int64(0), errors.New("dial tcp: refused"))

	svc := NewWorkflowService(NewLabelAllocatorService(), counters, NewPrintBatchService(nil))
	t.Cleanup(svc.Stop)

	w, err := svc.Create(ctx, []string{"GRN123"})
	require.NoError(t, err)

	got, err := svc.Generate(ctx, w.ID, model.AllocationRequest{TotalQuantity: 9, LabelCount: 3})
	assert.ErrorIs(t, err, ErrCounterUnavailable)
	assert.Equal(t, model.WorkflowIdle, got.State)
	counters.AssertExpectations(t)
}

func TestWorkflowService_EditQuantity(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()
	w := generated(t, f, []string{"ORD9", "MAT1", "B3"}, model.AllocationRequest{TotalQuantity: 50, LabelCount: 5})

	got, err := f.svc.EditQuantity(ctx, w.ID, 0, 15)
	var capErr *CapacityExceededError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 50, capErr.Total)
	assert.Equal(t, 55, capErr.NewSum)
	assert.Equal(t, []int{10, 10, 10, 10, 10}, quantities(got.Allocations))
	assert.Equal(t, model.WorkflowGenerated, got.State)
	assert.Equal(t, model.ActionEditRejected, f.audit.last().ActionType)
	assert.Equal(t, 55, f.audit.last().Fields["new_sum"])

	got, err = f.svc.EditQuantity(ctx, w.ID, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 10, 10, 10, 10}, quantities(got.Allocations))
	assert.Equal(t, 45, got.Allocated)
	assert.Equal(t, 5, got.Remaining())

	_, err = f.svc.Validate(ctx, w.ID)
	var recErr *ReconciliationError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, &ReconciliationError{Expected: 50, Actual: 45}, recErr)
	assert.Equal(t, model.ActionReconcileFailed, f.audit.last().ActionType)

	got, err = f.svc.EditQuantity(ctx, w.ID, 1, 15)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 15, 10, 10, 10}, quantities(got.Allocations))

	_, err = f.svc.Validate(ctx, w.ID)
	assert.NoError(t, err)

	_, err = f.svc.EditQuantity(ctx, w.ID, 9, 1)
	assert.True(t, errors.As(err, new(*ValidationError)))
}

func TestWorkflowService_SnapshotsAreIsolated(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()
	w := generated(t, f, []string{"GRN123"}, model.AllocationRequest{TotalQuantity: 9, LabelCount: 3})

	w.Allocations[0].Quantity = 999
	w.Request.SerialPrefixParts[0] = "changed"

	got, err := f.svc.Get(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Allocations[0].Quantity)
	assert.Equal(t, "GRN123", got.Request.SerialPrefixParts[0])
}

func TestWorkflowService_Submit(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := WithActor(context.Background(), Actor{RequestID: "req-1", Operator: "ana@plant.example"})
	w := generated(t, f, []string{"GRN123", "P-01"}, model.AllocationRequest{TotalQuantity: 100, LabelCount: 3})

	got, result, err := f.svc.Submit(ctx, w.ID, map[string]string{"printer": "line-2"})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, model.WorkflowSubmitted, got.State)
	assert.Equal(t, result.BatchID, got.BatchID)
	assert.Nil(t, got.Allocations)

	batch, err := f.batches.Get(ctx, result.BatchID)
	require.NoError(t, err)
	assert.Equal(t, "GRN123|P-01", batch.ContextKey)
	assert.Equal(t, w.ID, batch.WorkflowID)
	assert.Equal(t, "ana@plant.example", batch.SubmittedBy)
	assert.Equal(t, "line-2", batch.Metadata["printer"])
	assert.Equal(t, []int{33, 33, 34}, quantities(batch.Labels))

	entry := f.audit.last()
	assert.Equal(t, model.ActionSubmit, entry.ActionType)
	assert.Equal(t, "req-1", entry.RequestID)
	assert.Equal(t, "ana@plant.example", entry.Operator)

	_, err = f.svc.Get(ctx, w.ID)
	assert.ErrorIs(t, err, ErrWorkflowNotFound, "submitted workflows are discarded")
	assert.Zero(t, f.svc.Active())
}

func TestWorkflowService_SubmitReconciliationFailure(t *testing.T) {
	ctx := context.Background()
	sink := new(mocks.MockPrintBatchService)
	svc := NewWorkflowService(NewLabelAllocatorService(), NewMemoryCounterSource(), sink)
	t.Cleanup(svc.Stop)

	w, err := svc.Create(ctx, []string{"ORD9"})
	require.NoError(t, err)
	_, err = svc.Generate(ctx, w.ID, model.AllocationRequest{TotalQuantity: 50, LabelCount: 5})
	require.NoError(t, err)
	_, err = svc.EditQuantity(ctx, w.ID, 0, 5)
	require.NoError(t, err)

	got, _, err := svc.Submit(ctx, w.ID, nil)
	assert.True(t, errors.As(err, new(*ReconciliationError)))
	assert.Equal(t, model.WorkflowGenerated, got.State)
	sink.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestWorkflowService_SubmitSinkFailures(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*mocks.MockPrintBatchService)
		checkErr  func(*testing.T, error)
	}{
		{
			name: "sink outage",
			setupMock: func(m *mocks.MockPrintBatchService) {
				m.On("Submit", mock.Anything, mock.Anything).Return(model.SubmitResult{}, errors.New("no reachable servers"))
			},
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrSinkUnavailable)
			},
		},
		{
			name: "sink rejects batch",
			setupMock: func(m *mocks.MockPrintBatchService) {
				m.On("Submit", mock.Anything, mock.Anything).Return(model.SubmitResult{Success: false, Message: "serial already printed"}, nil)
			},
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrSubmissionRejected)
				assert.Contains(t, err.Error(), "serial already printed")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			sink := new(mocks.MockPrintBatchService)
			tt.setupMock(sink)
			svc := NewWorkflowService(NewLabelAllocatorService(), NewMemoryCounterSource(), sink)
			t.Cleanup(svc.Stop)

			w, err := svc.Create(ctx, []string{"GRN123"})
			require.NoError(t, err)
			_, err = svc.Generate(ctx, w.ID, model.AllocationRequest{TotalQuantity: 10, LabelCount: 2})
			require.NoError(t, err)

			got, _, err := svc.Submit(ctx, w.ID, nil)
			tt.checkErr(t, err)
			assert.Equal(t, model.WorkflowGenerated, got.State)
			assert.Len(t, got.Allocations, 2)

			still, err := svc.Get(ctx, w.ID)
			require.NoError(t, err)
			assert.Equal(t, model.WorkflowGenerated, still.State)
			sink.AssertExpectations(t)
		})
	}
}

func TestWorkflowService_Transitions(t *testing.T) {
	ctx := context.Background()
	request := model.AllocationRequest{TotalQuantity: 10, LabelCount: 2}

	tests := []struct {
		name    string
		state   model.WorkflowState
		command func(*WorkflowServiceImpl, string) error
		allowed bool
	}{
		{name: "edit while idle", state: model.WorkflowIdle, command: func(s *WorkflowServiceImpl, id string) error {
			_, err := s.EditQuantity(ctx, id, 0, 1)
			return err
		}},
		{name: "validate while idle", state: model.WorkflowIdle, command: func(s *WorkflowServiceImpl, id string) error {
			_, err := s.Validate(ctx, id)
			return err
		}},
		{name: "submit while idle", state: model.WorkflowIdle, command: func(s *WorkflowServiceImpl, id string) error {
			_, _, err := s.Submit(ctx, id, nil)
			return err
		}},
		{name: "reset while idle", state: model.WorkflowIdle, allowed: true, command: func(s *WorkflowServiceImpl, id string) error {
			_, err := s.Reset(ctx, id)
			return err
		}},
		{name: "generate twice", state: model.WorkflowGenerated, command: func(s *WorkflowServiceImpl, id string) error {
			_, err := s.Generate(ctx, id, request)
			return err
		}},
		{name: "cancel while generated", state: model.WorkflowGenerated, allowed: true, command: func(s *WorkflowServiceImpl, id string) error {
			return s.Cancel(ctx, id)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWorkflowFixture(t)
			w, err := f.svc.Create(ctx, []string{"GRN123"})
			require.NoError(t, err)
			if tt.state == model.WorkflowGenerated {
				_, err = f.svc.Generate(ctx, w.ID, request)
				require.NoError(t, err)
			}

			err = tt.command(f.svc, w.ID)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidTransition)
			var trErr *TransitionError
			require.ErrorAs(t, err, &trErr)
			assert.Equal(t, string(tt.state), trErr.State)

			got, err := f.svc.Get(ctx, w.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.state, got.State)
		})
	}
}

func TestWorkflowService_ResetAndCancel(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()
	w := generated(t, f, []string{"GRN123"}, model.AllocationRequest{TotalQuantity: 10, LabelCount: 2})

	got, err := f.svc.Reset(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, model.WorkflowIdle, got.State)
	assert.Nil(t, got.Allocations)
	assert.Nil(t, got.Request)
	assert.Zero(t, got.Allocated)

	require.NoError(t, f.svc.Cancel(ctx, w.ID))
	_, err = f.svc.Get(ctx, w.ID)
	assert.ErrorIs(t, err, ErrWorkflowNotFound)
	assert.ErrorIs(t, f.svc.Cancel(ctx, w.ID), ErrWorkflowNotFound)

	assert.Equal(t, []string{
		model.ActionWorkflowCreated,
		model.ActionGenerate,
		model.ActionReset,
		model.ActionCancel,
	}, f.audit.actions())
}

func TestWorkflowService_Expiry(t *testing.T) {
	f := newWorkflowFixture(t, WithWorkflowTTL(10*time.Minute))
	ctx := context.Background()

	w, err := f.svc.Create(ctx, []string{"GRN123"})
	require.NoError(t, err)

	f.clock.Advance(9 * time.Minute)
	_, err = f.svc.Generate(ctx, w.ID, model.AllocationRequest{TotalQuantity: 10, LabelCount: 2})
	require.NoError(t, err)

	f.clock.Advance(9 * time.Minute)
	_, err = f.svc.Get(ctx, w.ID)
	require.NoError(t, err, "commands restart the TTL")

	f.clock.Advance(11 * time.Minute)
	_, err = f.svc.Get(ctx, w.ID)
	assert.ErrorIs(t, err, ErrWorkflowNotFound)
}

func TestWorkflowService_CapacityEviction(t *testing.T) {
	f := newWorkflowFixture(t, WithWorkflowCapacity(2))
	ctx := context.Background()

	first, err := f.svc.Create(ctx, []string{"A"})
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, []string{"B"})
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, []string{"C"})
	require.NoError(t, err)

	_, err = f.svc.Get(ctx, first.ID)
	assert.ErrorIs(t, err, ErrWorkflowNotFound)
	assert.Equal(t, 2, f.svc.Active())
}

func TestWorkflowService_ConcurrentEditsSerialize(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()
	w := generated(t, f, []string{"GRN123"}, model.AllocationRequest{TotalQuantity: 100, LabelCount: 10})

	for i := range w.Allocations {
		_, err := f.svc.EditQuantity(ctx, w.ID, i, 0)
		require.NoError(t, err)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			_, err := f.svc.EditQuantity(ctx, w.ID, index, 20)
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	got, err := f.svc.Get(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, accepted, "only five edits of 20 fit in 100")
	assert.Equal(t, 100, got.Allocated)
	assert.NoError(t, ValidateForSubmission(got.Allocations, 100))
}
