package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/guttosm/label-service/internal/domain/dto"
	"github.com/guttosm/label-service/internal/i18n"
	"github.com/guttosm/label-service/internal/service"
)

// errorMapping is the HTTP rendering of a service error.
type errorMapping struct {
	status     int
	code       string
	messageKey string
	details    map[string]string
}

// mapError translates service and request errors into status, code, message
// key and details. Unknown errors become a 500 without leaking their text.
func mapError(err error) errorMapping {
	var (
		validationErr *service.ValidationError
		requestErr    *dto.RequestError
		capacityErr   *service.CapacityExceededError
		reconcileErr  *service.ReconciliationError
		transitionErr *service.TransitionError
	)

	switch {
	case errors.As(err, &validationErr):
		return errorMapping{
			status:     http.StatusBadRequest,
			code:       dto.ErrCodeValidation,
			messageKey: i18n.ValidationKey(validationErr.Field),
			details:    map[string]string{"field": validationErr.Field, "reason": validationErr.Message},
		}
	case errors.As(err, &requestErr):
		return errorMapping{
			status:     http.StatusBadRequest,
			code:       dto.ErrCodeValidation,
			messageKey: i18n.ValidationKey(requestErr.Field),
			details:    map[string]string{"field": requestErr.Field, "reason": requestErr.Message},
		}
	case errors.As(err, &capacityErr):
		return errorMapping{
			status:     http.StatusUnprocessableEntity,
			code:       dto.ErrCodeCapacityExceeded,
			messageKey: i18n.ErrKeyCapacityExceeded,
			details: map[string]string{
				"total_quantity": strconv.Itoa(capacityErr.Total),
				"new_sum":        strconv.Itoa(capacityErr.NewSum),
			},
		}
	case errors.As(err, &reconcileErr):
		return errorMapping{
			status:     http.StatusUnprocessableEntity,
			code:       dto.ErrCodeReconciliation,
			messageKey: i18n.ErrKeyReconciliation,
			details: map[string]string{
				"expected":  strconv.Itoa(reconcileErr.Expected),
				"actual":    strconv.Itoa(reconcileErr.Actual),
				"shortfall": strconv.Itoa(reconcileErr.Shortfall()),
			},
		}
	case errors.As(err, &transitionErr):
		return errorMapping{
			status:     http.StatusConflict,
			code:       dto.ErrCodeInvalidTransition,
			messageKey: i18n.ErrKeyInvalidTransition,
			details:    map[string]string{"command": transitionErr.Command, "state": transitionErr.State},
		}
	case errors.Is(err, service.ErrInvalidTransition):
		return errorMapping{status: http.StatusConflict, code: dto.ErrCodeInvalidTransition, messageKey: i18n.ErrKeyInvalidTransition}
	case errors.Is(err, service.ErrWorkflowNotFound):
		return errorMapping{status: http.StatusNotFound, code: dto.ErrCodeNotFound, messageKey: i18n.ErrKeyWorkflowNotFound}
	case errors.Is(err, service.ErrBatchNotFound):
		return errorMapping{status: http.StatusNotFound, code: dto.ErrCodeNotFound, messageKey: i18n.ErrKeyBatchNotFound}
	case errors.Is(err, service.ErrSubmissionRejected):
		return errorMapping{status: http.StatusConflict, code: dto.ErrCodeConflict, messageKey: i18n.ErrKeySubmissionRejected}
	case errors.Is(err, service.ErrCounterUnavailable):
		return errorMapping{status: http.StatusServiceUnavailable, code: dto.ErrCodeUnavailable, messageKey: i18n.ErrKeyCounterUnavailable}
	case errors.Is(err, service.ErrSinkUnavailable), errors.Is(err, service.ErrRepositoryNotConfigured):
		return errorMapping{status: http.StatusServiceUnavailable, code: dto.ErrCodeUnavailable, messageKey: i18n.ErrKeySinkUnavailable}
	case errors.Is(err, context.DeadlineExceeded):
		return errorMapping{status: http.StatusGatewayTimeout, code: dto.ErrCodeTimeout, messageKey: i18n.ErrKeyTimeout}
	default:
		return errorMapping{status: http.StatusInternalServerError, code: dto.ErrCodeInternal, messageKey: i18n.ErrKeyInternalError}
	}
}
