package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/label-service/internal/domain/dto"
	"github.com/guttosm/label-service/internal/domain/model"
	"github.com/guttosm/label-service/internal/i18n"
	"github.com/guttosm/label-service/internal/middleware"
	"github.com/guttosm/label-service/internal/service"
)

// Handler provides the stateless allocation and counter routes.
type Handler struct {
	allocator service.LabelAllocator
	counters  service.CounterSource
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithCounterSource enables GET /api/counters/:key.
func WithCounterSource(counters service.CounterSource) HandlerOption {
	return func(h *Handler) {
		h.counters = counters
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(allocator service.LabelAllocator, opts ...HandlerOption) *Handler {
	h := &Handler{allocator: allocator}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// PreviewAllocations handles POST /api/allocations/preview requests.
//
// @Summary      Preview label allocations
// @Description  Runs the allocation engine without a workflow. The caller supplies the starting counter, so nothing is reserved and nothing is persisted.
// @Tags         Allocations
// @Accept       json
// @Produce      json
// @Param        Accept-Language header string false "Response language (en, pt, nl)"
// @Param        request body dto.PreviewAllocationRequest true "Allocation request"
// @Success      200 {object} dto.SuccessResponse{data=dto.AllocationPreviewResponse} "Generated allocations"
// @Failure      400 {object} dto.ErrorResponse "Validation error"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/allocations/preview [post]
func (h *Handler) PreviewAllocations(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.PreviewAllocationRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	request, err := req.ToModel(h.allocator.DefaultStrategy())
	if err != nil {
		middleware.AuditLogError(c, model.ActionPreview, "Allocation preview rejected", err, nil)
		builder.ServiceError(err)
		return
	}

	allocations, err := h.allocator.Generate(request)
	if err != nil {
		middleware.AuditLogError(c, model.ActionPreview, "Allocation preview rejected", err, map[string]interface{}{
			"total_quantity": request.TotalQuantity,
			"label_count":    request.LabelCount,
		})
		builder.ServiceError(err)
		return
	}

	middleware.AuditLog(c, model.ActionPreview, "Allocation preview", map[string]interface{}{
		"total_quantity": request.TotalQuantity,
		"label_count":    request.LabelCount,
		"strategy":       string(request.Strategy),
	})

	builder.SuccessOK(dto.AllocationPreviewResponse{
		Request:     request,
		Allocations: allocations,
		Allocated:   model.SumQuantities(allocations),
	})
}

// GetCounter handles GET /api/counters/:key requests.
//
// @Summary      Get serial counter
// @Description  Returns the last serial counter issued for a context key. The key is the pipe-joined context parts, URL encoded.
// @Tags         Counters
// @Produce      json
// @Param        key path string true "Context key, e.g. GRN-1001|RM-42"
// @Success      200 {object} dto.SuccessResponse{data=dto.CounterResponse} "Counter position"
// @Failure      400 {object} dto.ErrorResponse "Empty context key"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      503 {object} dto.ErrorResponse "Counter source unavailable"
// @Security     BearerAuth
// @Router       /api/counters/{key} [get]
func (h *Handler) GetCounter(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.counters == nil {
		builder.ServiceError(service.ErrRepositoryNotConfigured)
		return
	}

	key := model.BuildContextKey(strings.Split(c.Param("key"), model.SerialDelimiter)...)
	if key == "" {
		builder.ServiceError(&service.ValidationError{Field: "context_parts", Message: "context key is empty"})
		return
	}

	last, err := h.counters.Peek(c.Request.Context(), key)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	builder.SuccessOK(dto.CounterResponse{
		ContextKey: key,
		LastIssued: last,
		Next:       last + 1,
	})
}
