package service

import (
	"errors"
	"fmt"
)

var (
	// ErrWorkflowNotFound is returned for unknown or expired workflow IDs.
	ErrWorkflowNotFound = errors.New("workflow not found")
	// ErrInvalidTransition is returned when a command is not allowed in the
	// workflow's current state.
	ErrInvalidTransition = errors.New("invalid workflow state transition")
	// ErrCounterUnavailable is returned when no serial counter could be reserved.
	ErrCounterUnavailable = errors.New("serial counter source unavailable")
	// ErrSinkUnavailable is returned when the submission sink could not be reached.
	ErrSinkUnavailable = errors.New("submission sink unavailable")
	// ErrRepositoryNotConfigured is returned when a read needs MongoDB but it is disabled.
	ErrRepositoryNotConfigured = errors.New("repository not configured")
	// ErrSubmissionRejected is returned when the sink refused a valid batch.
	ErrSubmissionRejected = errors.New("submission rejected")
	// ErrBatchNotFound is returned for unknown print batch IDs.
	ErrBatchNotFound = errors.New("print batch not found")
)

// ValidationError reports a malformed allocation request or edit.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// CapacityExceededError reports an edit that would push the allocated sum past
// the requested total.
type CapacityExceededError struct {
	Total  int
	NewSum int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("total quantity exceeded: allocations would sum to %d, total is %d", e.NewSum, e.Total)
}

// ReconciliationError reports allocations whose sum differs from the requested total.
type ReconciliationError struct {
	Expected int
	Actual   int
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("allocations do not reconcile: expected %d, got %d", e.Expected, e.Actual)
}

// Shortfall is the quantity still unassigned; negative means over-allocated.
func (e *ReconciliationError) Shortfall() int {
	return e.Expected - e.Actual
}

// TransitionError wraps ErrInvalidTransition with the offending command and state.
type TransitionError struct {
	Command string
	State   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s a workflow in state %q", e.Command, e.State)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
