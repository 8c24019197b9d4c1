package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/label-service/internal/domain/model"
	"github.com/guttosm/label-service/internal/logger"
	"github.com/guttosm/label-service/internal/metrics"
	"github.com/guttosm/label-service/internal/service/cache"
)

// Workflow store defaults.
const (
	DefaultWorkflowCapacity = 10000
	DefaultWorkflowTTL      = 2 * time.Hour
)

// WorkflowService drives print workflows through IDLE, GENERATED and SUBMITTED.
// Every command returns the workflow as it stands after the command, including
// when the command itself was rejected.
type WorkflowService interface {
	Create(ctx context.Context, contextParts []string) (model.Workflow, error)
	Get(ctx context.Context, id string) (model.Workflow, error)
	Generate(ctx context.Context, id string, request model.AllocationRequest) (model.Workflow, error)
	EditQuantity(ctx context.Context, id string, index, quantity int) (model.Workflow, error)
	Validate(ctx context.Context, id string) (model.Workflow, error)
	Submit(ctx context.Context, id string, metadata map[string]string) (model.Workflow, model.SubmitResult, error)
	Reset(ctx context.Context, id string) (model.Workflow, error)
	Cancel(ctx context.Context, id string) error
}

// workflowEntry serializes commands on one workflow.
type workflowEntry struct {
	mu       sync.Mutex
	workflow model.Workflow
	removed  atomic.Bool
}

// WorkflowOption configures a WorkflowServiceImpl.
type WorkflowOption func(*WorkflowServiceImpl)

// WithWorkflowCapacity bounds the number of workflows held in memory.
func WithWorkflowCapacity(capacity int) WorkflowOption {
	return func(s *WorkflowServiceImpl) {
		if capacity > 0 {
			s.capacity = capacity
		}
	}
}

// WithWorkflowTTL sets how long an untouched workflow is kept.
func WithWorkflowTTL(ttl time.Duration) WorkflowOption {
	return func(s *WorkflowServiceImpl) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithAuditSink records workflow events to sink.
func WithAuditSink(sink AuditSink) WorkflowOption {
	return func(s *WorkflowServiceImpl) {
		s.audit = sink
	}
}

// WithWorkflowClock overrides the clock used for timestamps and expiry.
func WithWorkflowClock(now func() time.Time) WorkflowOption {
	return func(s *WorkflowServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

// WorkflowServiceImpl keeps workflows in a TTL+LRU store. Call Stop on shutdown.
type WorkflowServiceImpl struct {
	allocator LabelAllocator
	counters  CounterSource
	sink      SubmissionSink
	audit     AuditSink
	now       func() time.Time
	capacity  int
	ttl       time.Duration
	store     *ttlCache[string, *workflowEntry]
}

// NewWorkflowService wires a workflow service to its collaborators.
func NewWorkflowService(allocator LabelAllocator, counters CounterSource, sink SubmissionSink, opts ...WorkflowOption) *WorkflowServiceImpl {
	s := &WorkflowServiceImpl{
		allocator: allocator,
		counters:  counters,
		sink:      sink,
		now:       time.Now,
		capacity:  DefaultWorkflowCapacity,
		ttl:       DefaultWorkflowTTL,
	}
	for _, opt := range opts {
		opt(s)
	}

	cleanup := s.ttl / 4
	if cleanup > time.Minute {
		cleanup = time.Minute
	}
	s.store = newTTLCache[string, *workflowEntry](s.capacity, s.ttl,
		withClock[string, *workflowEntry](s.now),
		withCleanupInterval[string, *workflowEntry](cleanup),
		withEvictCallback(s.onEvict),
	)
	return s
}

// Stop ends the store janitor.
func (s *WorkflowServiceImpl) Stop() {
	s.store.Stop()
}

// Active returns the number of workflows held in memory.
func (s *WorkflowServiceImpl) Active() int {
	return s.store.Len()
}

func (s *WorkflowServiceImpl) onEvict(id string, entry *workflowEntry, reason cache.EvictReason) {
	entry.removed.Store(true)
	metrics.RecordWorkflowEvent("discard", string(reason))
	log := logger.ForWorkflow(id, "")
	log.Info().Str("reason", string(reason)).Msg("Print workflow discarded")
}

// Create opens an IDLE workflow for the record identified by contextParts.
func (s *WorkflowServiceImpl) Create(ctx context.Context, contextParts []string) (model.Workflow, error) {
	key := model.BuildContextKey(contextParts...)
	if key == "" {
		return model.Workflow{}, &ValidationError{Field: "context_parts", Message: "must contain at least one non-empty value"}
	}

	now := s.now().UTC()
	entry := &workflowEntry{
		workflow: model.Workflow{
			ID:           uuid.NewString(),
			ContextKey:   key,
			ContextParts: strings.Split(key, model.SerialDelimiter),
			State:        model.WorkflowIdle,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
	s.store.Set(entry.workflow.ID, entry)

	s.record(ctx, "info", model.ActionWorkflowCreated, "print workflow created", &entry.workflow, nil)
	metrics.RecordWorkflowEvent("create", "success")
	return snapshot(&entry.workflow), nil
}

// Get returns the current workflow snapshot.
func (s *WorkflowServiceImpl) Get(_ context.Context, id string) (model.Workflow, error) {
	entry, err := s.lock(id)
	if err != nil {
		return model.Workflow{}, err
	}
	defer entry.mu.Unlock()
	return snapshot(&entry.workflow), nil
}

// Generate reserves labelCount serial counters for the serial prefix (the
// workflow's context parts unless the request names one) and splits the
// requested quantity across the labels. An invalid request leaves the
// workflow IDLE and consumes no counters.
func (s *WorkflowServiceImpl) Generate(ctx context.Context, id string, request model.AllocationRequest) (model.Workflow, error) {
	entry, err := s.lock(id)
	if err != nil {
		return model.Workflow{}, err
	}
	defer entry.mu.Unlock()
	w := &entry.workflow

	if w.State != model.WorkflowIdle {
		return s.reject(w, "generate")
	}

	if model.BuildContextKey(request.SerialPrefixParts...) == "" {
		request.SerialPrefixParts = append([]string(nil), w.ContextParts...)
	}
	if request.Strategy == "" {
		request.Strategy = s.allocator.DefaultStrategy()
	}
	if err := s.allocator.Check(request); err != nil {
		metrics.RecordWorkflowEvent("generate", "invalid")
		return snapshot(w), err
	}

	// Counters are scoped by serial prefix.
	counterKey := model.BuildContextKey(request.SerialPrefixParts...)
	start, err := s.counters.NextCounter(ctx, counterKey, request.LabelCount)
	if err != nil {
		metrics.RecordWorkflowEvent("generate", "counter_error")
		s.record(ctx, "error", model.ActionGenerate, "serial counter reservation failed", w, err)
		return snapshot(w), asCounterError(err)
	}
	request.StartingCounter = start

	allocations, err := s.allocator.Generate(request)
	if err != nil {
		metrics.RecordWorkflowEvent("generate", "invalid")
		return snapshot(w), err
	}

	req := request
	w.Request = &req
	w.Allocations = allocations
	w.Allocated = model.SumQuantities(allocations)
	w.State = model.WorkflowGenerated
	s.touch(entry)

	s.record(ctx, "info", model.ActionGenerate, "allocations generated", w, nil, map[string]interface{}{
		"total_quantity": request.TotalQuantity,
		"label_count":    request.LabelCount,
		"strategy":       string(request.Strategy),
		"counter_key":    counterKey,
		"first_serial":   allocations[0].SerialNumber,
		"last_serial":    allocations[len(allocations)-1].SerialNumber,
	})
	metrics.RecordWorkflowEvent("generate", "success")
	return snapshot(w), nil
}

// EditQuantity changes one label's quantity. An edit that would exceed the
// requested total is rejected and the allocations stay as they were.
func (s *WorkflowServiceImpl) EditQuantity(ctx context.Context, id string, index, quantity int) (model.Workflow, error) {
	entry, err := s.lock(id)
	if err != nil {
		return model.Workflow{}, err
	}
	defer entry.mu.Unlock()
	w := &entry.workflow

	if w.State != model.WorkflowGenerated {
		return s.reject(w, "edit")
	}

	updated, err := s.allocator.Edit(w.Allocations, w.Request.TotalQuantity, index, quantity)
	if err != nil {
		var capErr *CapacityExceededError
		if errors.As(err, &capErr) {
			s.record(ctx, "warn", model.ActionEditRejected, "quantity edit rejected", w, err, map[string]interface{}{
				"index":    index,
				"quantity": quantity,
				"new_sum":  capErr.NewSum,
			})
			metrics.RecordWorkflowEvent("edit", "capacity_exceeded")
		} else {
			metrics.RecordWorkflowEvent("edit", "invalid")
		}
		return snapshot(w), err
	}

	previous := w.Allocations[index].Quantity
	w.Allocations = updated
	w.Allocated = model.SumQuantities(updated)
	s.touch(entry)

	s.record(ctx, "info", model.ActionEditQuantity, "label quantity edited", w, nil, map[string]interface{}{
		"index":    index,
		"from":     previous,
		"to":       quantity,
		"serial":   updated[index].SerialNumber,
		"new_sum":  w.Allocated,
		"shortage": w.Remaining(),
	})
	metrics.RecordWorkflowEvent("edit", "success")
	return snapshot(w), nil
}

// Validate runs the reconciliation check without submitting.
func (s *WorkflowServiceImpl) Validate(ctx context.Context, id string) (model.Workflow, error) {
	entry, err := s.lock(id)
	if err != nil {
		return model.Workflow{}, err
	}
	defer entry.mu.Unlock()
	w := &entry.workflow

	if w.State != model.WorkflowGenerated {
		return s.reject(w, "validate")
	}

	if err := s.allocator.Validate(w.Allocations, w.Request.TotalQuantity); err != nil {
		s.record(ctx, "warn", model.ActionReconcileFailed, "allocations do not reconcile", w, err)
		metrics.RecordWorkflowEvent("validate", "reconciliation_failed")
		return snapshot(w), err
	}
	metrics.RecordWorkflowEvent("validate", "success")
	return snapshot(w), nil
}

// Submit reconciles the allocations and hands them to the submission sink.
// On acceptance the workflow becomes SUBMITTED and is discarded; on any
// failure it stays GENERATED so the operator can fix or retry.
func (s *WorkflowServiceImpl) Submit(ctx context.Context, id string, metadata map[string]string) (model.Workflow, model.SubmitResult, error) {
	entry, err := s.lock(id)
	if err != nil {
		return model.Workflow{}, model.SubmitResult{}, err
	}
	defer entry.mu.Unlock()
	w := &entry.workflow

	if w.State != model.WorkflowGenerated {
		snap, err := s.reject(w, "submit")
		return snap, model.SubmitResult{}, err
	}

	if err := s.allocator.Validate(w.Allocations, w.Request.TotalQuantity); err != nil {
		s.record(ctx, "warn", model.ActionReconcileFailed, "submission blocked: allocations do not reconcile", w, err)
		metrics.RecordWorkflowEvent("submit", "reconciliation_failed")
		return snapshot(w), model.SubmitResult{}, err
	}

	batch := &model.PrintBatch{
		WorkflowID:    w.ID,
		ContextKey:    w.ContextKey,
		TotalQuantity: w.Request.TotalQuantity,
		LabelCount:    len(w.Allocations),
		Strategy:      w.Request.Strategy,
		Labels:        model.CloneAllocations(w.Allocations),
		Metadata:      metadata,
		SubmittedBy:   ActorFrom(ctx).Operator,
	}

	result, err := s.sink.Submit(ctx, batch)
	if err != nil {
		s.record(ctx, "error", model.ActionSubmit, "submission failed", w, err)
		metrics.RecordWorkflowEvent("submit", "sink_error")
		return snapshot(w), model.SubmitResult{}, asSinkError(err)
	}
	if !result.Success {
		rejected := fmt.Errorf("%w: %s", ErrSubmissionRejected, result.Message)
		s.record(ctx, "warn", model.ActionSubmit, "submission rejected", w, rejected)
		metrics.RecordWorkflowEvent("submit", "rejected")
		return snapshot(w), result, rejected
	}

	w.State = model.WorkflowSubmitted
	w.BatchID = result.BatchID
	w.UpdatedAt = s.now().UTC()
	s.record(ctx, "info", model.ActionSubmit, "allocations submitted", w, nil, map[string]interface{}{
		"batch_id":    result.BatchID,
		"label_count": len(w.Allocations),
	})

	snap := snapshot(w)
	snap.Allocations = nil
	s.discard(entry)
	metrics.RecordWorkflowEvent("submit", "success")
	return snap, result, nil
}

// Reset discards generated allocations and returns the workflow to IDLE.
// Resetting an IDLE workflow is a no-op. Counters already reserved are not
// returned; the next generation continues after them.
func (s *WorkflowServiceImpl) Reset(ctx context.Context, id string) (model.Workflow, error) {
	entry, err := s.lock(id)
	if err != nil {
		return model.Workflow{}, err
	}
	defer entry.mu.Unlock()
	w := &entry.workflow

	if w.State == model.WorkflowIdle {
		return snapshot(w), nil
	}
	if w.State != model.WorkflowGenerated {
		return s.reject(w, "reset")
	}

	w.State = model.WorkflowIdle
	w.Request = nil
	w.Allocations = nil
	w.Allocated = 0
	s.touch(entry)

	s.record(ctx, "info", model.ActionReset, "allocations discarded", w, nil)
	metrics.RecordWorkflowEvent("reset", "success")
	return snapshot(w), nil
}

// Cancel discards the workflow in any state.
func (s *WorkflowServiceImpl) Cancel(ctx context.Context, id string) error {
	entry, err := s.lock(id)
	if err != nil {
		return err
	}
	defer entry.mu.Unlock()

	s.record(ctx, "info", model.ActionCancel, "print workflow cancelled", &entry.workflow, nil)
	s.discard(entry)
	metrics.RecordWorkflowEvent("cancel", "success")
	return nil
}

// lock returns the entry for id with its mutex held.
func (s *WorkflowServiceImpl) lock(id string) (*workflowEntry, error) {
	entry, ok := s.store.Get(id)
	if !ok {
		return nil, ErrWorkflowNotFound
	}
	entry.mu.Lock()
	if entry.removed.Load() {
		entry.mu.Unlock()
		return nil, ErrWorkflowNotFound
	}
	return entry, nil
}

// touch stamps the update and restarts the entry's TTL.
func (s *WorkflowServiceImpl) touch(entry *workflowEntry) {
	entry.workflow.UpdatedAt = s.now().UTC()
	if !entry.removed.Load() {
		s.store.Set(entry.workflow.ID, entry)
	}
}

func (s *WorkflowServiceImpl) discard(entry *workflowEntry) {
	entry.removed.Store(true)
	s.store.Invalidate(entry.workflow.ID)
}

func (s *WorkflowServiceImpl) reject(w *model.Workflow, command string) (model.Workflow, error) {
	metrics.RecordWorkflowEvent(command, "invalid_transition")
	return snapshot(w), &TransitionError{Command: command, State: string(w.State)}
}

// record logs a workflow event and forwards it to the audit sink.
func (s *WorkflowServiceImpl) record(ctx context.Context, level, action, message string, w *model.Workflow, err error, fields ...map[string]interface{}) {
	log := logger.ForWorkflow(w.ID, w.ContextKey)
	event := log.Info()
	switch level {
	case "warn":
		event = log.Warn()
	case "error":
		event = log.Error()
	}
	if err != nil {
		event = event.Err(err)
	}
	for _, f := range fields {
		event = event.Fields(f)
	}
	event.Str("action", action).Msg(message)

	if s.audit == nil {
		return
	}
	entry := newAuditEntry(ctx, level, action, message, w)
	if err != nil {
		entry.Error = err.Error()
	}
	for _, f := range fields {
		entry.WithFields(f)
	}
	s.audit.Log(entry)
}

func asCounterError(err error) error {
	if errors.Is(err, ErrCounterUnavailable) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrCounterUnavailable, err)
}

func asSinkError(err error) error {
	if errors.Is(err, ErrSinkUnavailable) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var (
		vErr *ValidationError
		rErr *ReconciliationError
	)
	if errors.As(err, &vErr) || errors.As(err, &rErr) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrSinkUnavailable, err)
}

// snapshot copies w so callers never share slices with the store.
func snapshot(w *model.Workflow) model.Workflow {
	out := *w
	out.ContextParts = append([]string(nil), w.ContextParts...)
	out.Allocations = model.CloneAllocations(w.Allocations)
	if w.Request != nil {
		req := *w.Request
		req.SerialPrefixParts = append([]string(nil), w.Request.SerialPrefixParts...)
		out.Request = &req
	}
	return out
}

var _ WorkflowService = (*WorkflowServiceImpl)(nil)
