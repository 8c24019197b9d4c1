package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/label-service/internal/domain/dto"
	"github.com/guttosm/label-service/internal/i18n"
	"github.com/guttosm/label-service/internal/service"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		key     string
		details map[string]string
	}{
		{
			name:    "validation",
			err:     &service.ValidationError{Field: "label_count", Message: "label count must be greater than zero"},
			status:  http.StatusBadRequest,
			code:    dto.ErrCodeValidation,
			key:     i18n.ErrKeyValidationLabelCount,
			details: map[string]string{"field": "label_count", "reason": "label count must be greater than zero"},
		},
		{
			name:    "request field",
			err:     &dto.RequestError{Field: "strategy", Message: `unknown value "x"`},
			status:  http.StatusBadRequest,
			code:    dto.ErrCodeValidation,
			key:     i18n.ErrKeyValidationStrategy,
			details: map[string]string{"field": "strategy", "reason": `unknown value "x"`},
		},
		{
			name:    "capacity exceeded",
			err:     &service.CapacityExceededError{Total: 50, NewSum: 55},
			status:  http.StatusUnprocessableEntity,
			code:    dto.ErrCodeCapacityExceeded,
			key:     i18n.ErrKeyCapacityExceeded,
			details: map[string]string{"total_quantity": "50", "new_sum": "55"},
		},
		{
			name:    "reconciliation",
			err:     fmt.Errorf("submit: %w", &service.ReconciliationError{Expected: 50, Actual: 40}),
			status:  http.StatusUnprocessableEntity,
			code:    dto.ErrCodeReconciliation,
			key:     i18n.ErrKeyReconciliation,
			details: map[string]string{"expected": "50", "actual": "40", "shortfall": "10"},
		},
		{
			name:    "transition",
			err:     &service.TransitionError{Command: "generate", State: "generated"},
			status:  http.StatusConflict,
			code:    dto.ErrCodeInvalidTransition,
			key:     i18n.ErrKeyInvalidTransition,
			details: map[string]string{"command": "generate", "state": "generated"},
		},
		{name: "bare transition", err: service.ErrInvalidTransition, status: http.StatusConflict, code: dto.ErrCodeInvalidTransition, key: i18n.ErrKeyInvalidTransition},
		{name: "workflow not found", err: service.ErrWorkflowNotFound, status: http.StatusNotFound, code: dto.ErrCodeNotFound, key: i18n.ErrKeyWorkflowNotFound},
		{name: "batch not found", err: service.ErrBatchNotFound, status: http.StatusNotFound, code: dto.ErrCodeNotFound, key: i18n.ErrKeyBatchNotFound},
		{name: "rejected", err: fmt.Errorf("%w: duplicate serial", service.ErrSubmissionRejected), status: http.StatusConflict, code: dto.ErrCodeConflict, key: i18n.ErrKeySubmissionRejected},
		{name: "counter unavailable", err: fmt.Errorf("%w: timeout", service.ErrCounterUnavailable), status: http.StatusServiceUnavailable, code: dto.ErrCodeUnavailable, key: i18n.ErrKeyCounterUnavailable},
		{name: "sink unavailable", err: service.ErrSinkUnavailable, status: http.StatusServiceUnavailable, code: dto.ErrCodeUnavailable, key: i18n.ErrKeySinkUnavailable},
		{name: "repository not configured", err: service.ErrRepositoryNotConfigured, status: http.StatusServiceUnavailable, code: dto.ErrCodeUnavailable, key: i18n.ErrKeySinkUnavailable},
		{name: "deadline", err: context.DeadlineExceeded, status: http.StatusGatewayTimeout, code: dto.ErrCodeTimeout, key: i18n.ErrKeyTimeout},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError, code: dto.ErrCodeInternal, key: i18n.ErrKeyInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mapError(tt.err)

			assert.Equal(t, tt.status, m.status)
			assert.Equal(t, tt.code, m.code)
			assert.Equal(t, tt.key, m.messageKey)
			assert.Equal(t, tt.details, m.details)
		})
	}
}
