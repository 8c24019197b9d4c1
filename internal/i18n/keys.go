package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates a token without the role a route requires.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"

	// ErrKeyValidation indicates a malformed allocation request or edit.
	ErrKeyValidation = "error.validation"
	// ErrKeyValidationTotalQuantity indicates a non-positive total quantity.
	ErrKeyValidationTotalQuantity = "error.validation.total_quantity"
	// ErrKeyValidationLabelCount indicates a non-positive or too large label count.
	ErrKeyValidationLabelCount = "error.validation.label_count"
	// ErrKeyValidationQuantity indicates a negative label quantity.
	ErrKeyValidationQuantity = "error.validation.quantity"
	// ErrKeyValidationIndex indicates a label index out of range.
	ErrKeyValidationIndex = "error.validation.index"
	// ErrKeyValidationStrategy indicates an unknown allocation strategy.
	ErrKeyValidationStrategy = "error.validation.strategy"
	// ErrKeyValidationContext indicates a workflow without identifying parts.
	ErrKeyValidationContext = "error.validation.context_parts"
	// ErrKeyCapacityExceeded indicates an edit above the requested total.
	ErrKeyCapacityExceeded = "error.capacity_exceeded"
	// ErrKeyReconciliation indicates label quantities that do not add up.
	ErrKeyReconciliation = "error.reconciliation_failed"
	// ErrKeyInvalidTransition indicates a command not allowed in the workflow state.
	ErrKeyInvalidTransition = "error.invalid_transition"
	// ErrKeyWorkflowNotFound indicates an unknown or expired workflow.
	ErrKeyWorkflowNotFound = "error.workflow_not_found"
	// ErrKeyBatchNotFound indicates an unknown print batch.
	ErrKeyBatchNotFound = "error.batch_not_found"
	// ErrKeyCounterUnavailable indicates the serial counter store is down.
	ErrKeyCounterUnavailable = "error.counter_unavailable"
	// ErrKeySinkUnavailable indicates the print batch store is down.
	ErrKeySinkUnavailable = "error.sink_unavailable"
	// ErrKeySubmissionRejected indicates the print batch store refused the batch.
	ErrKeySubmissionRejected = "error.submission_rejected"
)

// validationKeys maps a ValidationError field to its message key.
var validationKeys = map[string]string{
	"total_quantity": ErrKeyValidationTotalQuantity,
	"label_count":    ErrKeyValidationLabelCount,
	"quantity":       ErrKeyValidationQuantity,
	"index":          ErrKeyValidationIndex,
	"strategy":       ErrKeyValidationStrategy,
	"context_parts":  ErrKeyValidationContext,
}

// ValidationKey returns the message key for an invalid field.
func ValidationKey(field string) string {
	if key, ok := validationKeys[field]; ok {
		return key
	}
	return ErrKeyValidation
}
