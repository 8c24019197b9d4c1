package http

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/label-service/internal/domain/dto"
	"github.com/guttosm/label-service/internal/service"
)

// maxBatchListLimit bounds the limit query parameter.
const maxBatchListLimit = 500

// PrintBatchHandler serves the read side of submitted print batches.
type PrintBatchHandler struct {
	batches service.PrintBatchReader
}

// NewPrintBatchHandler creates a new PrintBatchHandler instance.
func NewPrintBatchHandler(batches service.PrintBatchReader) *PrintBatchHandler {
	return &PrintBatchHandler{batches: batches}
}

// ListPrintBatches handles GET /api/print-batches requests.
//
// @Summary      List print batches
// @Description  Returns submitted print batches, newest first, optionally for one context key
// @Tags         Print Batches
// @Produce      json
// @Param        context_key query string false "Context key, e.g. GRN-1001|RM-42"
// @Param        limit query int false "Maximum number of batches (default 50, max 500)"
// @Success      200 {object} dto.SuccessResponse{data=dto.PrintBatchListResponse} "Print batches"
// @Failure      400 {object} dto.ErrorResponse "Invalid limit"
// @Failure      503 {object} dto.ErrorResponse "Print batch store unavailable"
// @Security     BearerAuth
// @Router       /api/print-batches [get]
func (h *PrintBatchHandler) ListPrintBatches(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			builder.ServiceError(&dto.RequestError{Field: "limit", Message: "must be a non-negative integer"})
			return
		}
		limit = min(n, maxBatchListLimit)
	}

	batches, err := h.batches.List(c.Request.Context(), strings.TrimSpace(c.Query("context_key")), limit)
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessOK(dto.PrintBatchListResponse{
		Batches: batches,
		Count:   len(batches),
	})
}

// GetPrintBatch handles GET /api/print-batches/:id requests.
//
// @Summary      Get a print batch
// @Description  Returns one submitted print batch with its labels
// @Tags         Print Batches
// @Produce      json
// @Param        id path string true "Print batch ID"
// @Success      200 {object} dto.SuccessResponse{data=model.PrintBatch} "Print batch"
// @Failure      404 {object} dto.ErrorResponse "Unknown print batch"
// @Failure      503 {object} dto.ErrorResponse "Print batch store unavailable"
// @Security     BearerAuth
// @Router       /api/print-batches/{id} [get]
func (h *PrintBatchHandler) GetPrintBatch(c *gin.Context) {
	builder := NewResponseBuilder(c)

	batch, err := h.batches.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessOK(batch)
}
