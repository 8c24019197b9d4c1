package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/label-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUnprocessable indicates a well-formed request the allocation rules reject.
	ErrCodeUnprocessable = "unprocessable"
	// ErrCodeUnavailable indicates a backing store (counter source, sink) is down.
	ErrCodeUnavailable = "service_unavailable"
	// ErrCodeCapacityExceeded indicates an edit would push the label sum above the total.
	ErrCodeCapacityExceeded = "capacity_exceeded"
	// ErrCodeReconciliation indicates the label sum does not equal the total at submit time.
	ErrCodeReconciliation = "reconciliation_failed"
	// ErrCodeValidation indicates a non-positive quantity or label count.
	ErrCodeValidation = "validation_error"
	// ErrCodeInvalidTransition indicates a command not allowed in the workflow state.
	ErrCodeInvalidTransition = "invalid_transition"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data holds the payload (workflow, allocations, print batch...)
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"capacity_exceeded"`
	Message string `json:"message,omitempty" example:"Label quantities would exceed the requested total"`
	// Details carries machine-readable context, e.g. {"total_quantity": "50", "new_sum": "55"}
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetails attaches machine-readable details to the error response.
func (e ErrorResponse) WithDetails(details map[string]string) ErrorResponse {
	e.Details = details
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusUnprocessableEntity:
		return ErrCodeUnprocessable
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// WorkflowResponse wraps a workflow snapshot with its reconciliation status.
//
// @Description Workflow snapshot with reconciliation status
type WorkflowResponse struct {
	model.Workflow
	// Remaining is total_quantity minus the current label sum
	Remaining int `json:"remaining" example:"0"`
	// Balanced is true when the label sum equals the requested total
	Balanced bool `json:"balanced" example:"true"`
} // @name WorkflowResponse

// NewWorkflowResponse derives the reconciliation fields from a snapshot.
func NewWorkflowResponse(w model.Workflow) WorkflowResponse {
	return WorkflowResponse{
		Workflow:  w,
		Remaining: w.Remaining(),
		Balanced:  w.State == model.WorkflowGenerated && w.Remaining() == 0,
	}
}

// AllocationPreviewResponse is the result of a stateless engine run.
//
// @Description Allocation preview result
type AllocationPreviewResponse struct {
	Request     model.AllocationRequest `json:"request"`
	Allocations []model.LabelAllocation `json:"allocations"`
	Allocated   int                     `json:"allocated" example:"100"`
} // @name AllocationPreviewResponse

// SubmitResponse reports an accepted submission. The workflow is gone from the
// server once this is returned.
//
// @Description Accepted print batch submission
type SubmitResponse struct {
	WorkflowID string              `json:"workflow_id"`
	State      model.WorkflowState `json:"state" example:"submitted"`
	BatchID    string              `json:"batch_id"`
	Message    string              `json:"message,omitempty"`
} // @name SubmitResponse

// CounterResponse shows the serial counter position for a context key.
//
// @Description Serial counter position
type CounterResponse struct {
	ContextKey string `json:"context_key" example:"GRN-1001|RM-42"`
	// LastIssued is zero when no serial was ever issued for the key
	LastIssued int64 `json:"last_issued" example:"41"`
	Next       int64 `json:"next" example:"42"`
} // @name CounterResponse

// PrintBatchListResponse lists submitted batches, newest first.
//
// @Description Print batch listing
type PrintBatchListResponse struct {
	Batches []model.PrintBatch `json:"batches"`
	Count   int                `json:"count" example:"1"`
} // @name PrintBatchListResponse
