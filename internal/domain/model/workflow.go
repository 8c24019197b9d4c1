package model

import "time"

// WorkflowState is the lifecycle state of a print workflow.
type WorkflowState string

const (
	// WorkflowIdle means no allocations exist yet (or they were reset).
	WorkflowIdle WorkflowState = "idle"
	// WorkflowGenerated means allocations exist and may be edited.
	WorkflowGenerated WorkflowState = "generated"
	// WorkflowSubmitted is terminal: the batch was accepted by the sink.
	WorkflowSubmitted WorkflowState = "submitted"
)

// Workflow is a snapshot of one print workflow. Allocations only exist while the
// workflow is GENERATED.
//
// @Description Print workflow snapshot
type Workflow struct {
	ID         string `json:"id" example:"3f8a3f0e-6c1b-4a53-9a8e-0d7c4f6d9a11"`
	ContextKey string `json:"context_key" example:"GRN-1001|RM-42"`
	// ContextParts are the default serial prefix parts
	ContextParts []string           `json:"context_parts" example:"GRN-1001,RM-42"`
	State        WorkflowState      `json:"state" example:"generated"`
	Request      *AllocationRequest `json:"request,omitempty"`
	Allocations  []LabelAllocation  `json:"allocations"`
	Allocated    int                `json:"allocated" example:"100"`
	BatchID      string             `json:"batch_id,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// Remaining returns how much of the requested total is not yet assigned to labels.
func (w Workflow) Remaining() int {
	if w.Request == nil {
		return 0
	}
	return w.Request.TotalQuantity - w.Allocated
}
