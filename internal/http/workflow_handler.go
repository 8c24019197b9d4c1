package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/label-service/internal/domain/dto"
	"github.com/guttosm/label-service/internal/domain/model"
	"github.com/guttosm/label-service/internal/i18n"
	"github.com/guttosm/label-service/internal/service"
)

// WorkflowHandler exposes the print workflow commands.
type WorkflowHandler struct {
	workflows       service.WorkflowService
	defaultStrategy model.Strategy
}

// NewWorkflowHandler creates a new WorkflowHandler. defaultStrategy applies to
// generate requests that name no strategy.
func NewWorkflowHandler(workflows service.WorkflowService, defaultStrategy model.Strategy) *WorkflowHandler {
	return &WorkflowHandler{workflows: workflows, defaultStrategy: defaultStrategy}
}

// CreateWorkflow handles POST /api/workflows requests.
//
// @Summary      Open a print workflow
// @Description  Creates an idle workflow for one record. The context parts scope the serial counter.
// @Tags         Workflows
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateWorkflowRequest true "Record context"
// @Success      201 {object} dto.SuccessResponse{data=dto.WorkflowResponse} "Idle workflow"
// @Failure      400 {object} dto.ErrorResponse "Validation error"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Security     BearerAuth
// @Router       /api/workflows [post]
func (h *WorkflowHandler) CreateWorkflow(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateWorkflowRequest](c)
	if err != nil {
		h.badRequest(builder, err)
		return
	}

	wf, err := h.workflows.Create(c.Request.Context(), req.Parts())
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessCreated(dto.NewWorkflowResponse(wf))
}

// GetWorkflow handles GET /api/workflows/:id requests.
//
// @Summary      Get a workflow
// @Description  Returns the workflow snapshot with its reconciliation status
// @Tags         Workflows
// @Produce      json
// @Param        id path string true "Workflow ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.WorkflowResponse} "Workflow"
// @Failure      404 {object} dto.ErrorResponse "Unknown or expired workflow"
// @Security     BearerAuth
// @Router       /api/workflows/{id} [get]
func (h *WorkflowHandler) GetWorkflow(c *gin.Context) {
	builder := NewResponseBuilder(c)

	wf, err := h.workflows.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessOK(dto.NewWorkflowResponse(wf))
}

// GenerateAllocations handles POST /api/workflows/:id/generate requests.
//
// @Summary      Generate allocations
// @Description  Reserves label_count serial counters for the workflow context and splits total_quantity over the labels. Only allowed on an idle workflow.
// @Tags         Workflows
// @Accept       json
// @Produce      json
// @Param        id path string true "Workflow ID"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.GenerateRequest true "Allocation request"
// @Success      200 {object} dto.SuccessResponse{data=dto.WorkflowResponse} "Generated workflow"
// @Failure      400 {object} dto.ErrorResponse "Validation error"
// @Failure      404 {object} dto.ErrorResponse "Unknown or expired workflow"
// @Failure      409 {object} dto.ErrorResponse "Workflow is not idle"
// @Failure      503 {object} dto.ErrorResponse "Counter source unavailable"
// @Security     BearerAuth
// @Router       /api/workflows/{id}/generate [post]
func (h *WorkflowHandler) GenerateAllocations(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.GenerateRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	request, err := req.ToModel(h.defaultStrategy)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	wf, err := h.workflows.Generate(c.Request.Context(), c.Param("id"), request)
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessOK(dto.NewWorkflowResponse(wf))
}

// EditLabelQuantity handles PATCH /api/workflows/:id/labels/:index requests.
//
// @Summary      Edit a label quantity
// @Description  Replaces the quantity of one label. Rejected with 422 when the new sum would exceed the requested total.
// @Tags         Workflows
// @Accept       json
// @Produce      json
// @Param        id path string true "Workflow ID"
// @Param        index path int true "Zero-based label index"
// @Param        request body dto.EditQuantityRequest true "New quantity"
// @Success      200 {object} dto.SuccessResponse{data=dto.WorkflowResponse} "Updated workflow"
// @Failure      400 {object} dto.ErrorResponse "Validation error"
// @Failure      404 {object} dto.ErrorResponse "Unknown or expired workflow"
// @Failure      409 {object} dto.ErrorResponse "Workflow has no allocations"
// @Failure      422 {object} dto.ErrorResponse "Total quantity exceeded"
// @Security     BearerAuth
// @Router       /api/workflows/{id}/labels/{index} [patch]
func (h *WorkflowHandler) EditLabelQuantity(c *gin.Context) {
	builder := NewResponseBuilder(c)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		builder.ServiceError(&service.ValidationError{Field: "index", Message: "must be an integer"})
		return
	}

	req, err := BuildRequest[dto.EditQuantityRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	wf, err := h.workflows.EditQuantity(c.Request.Context(), c.Param("id"), index, *req.Quantity)
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessOK(dto.NewWorkflowResponse(wf))
}

// ValidateWorkflow handles POST /api/workflows/:id/validate requests.
//
// @Summary      Validate for submission
// @Description  Checks that the label quantities add up to the requested total
// @Tags         Workflows
// @Produce      json
// @Param        id path string true "Workflow ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.WorkflowResponse} "Balanced workflow"
// @Failure      404 {object} dto.ErrorResponse "Unknown or expired workflow"
// @Failure      409 {object} dto.ErrorResponse "Workflow has no allocations"
// @Failure      422 {object} dto.ErrorResponse "Quantities do not reconcile"
// @Security     BearerAuth
// @Router       /api/workflows/{id}/validate [post]
func (h *WorkflowHandler) ValidateWorkflow(c *gin.Context) {
	builder := NewResponseBuilder(c)

	wf, err := h.workflows.Validate(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessOK(dto.NewWorkflowResponse(wf))
}

// SubmitWorkflow handles POST /api/workflows/:id/submit requests.
//
// @Summary      Submit allocations for printing
// @Description  Validates the allocations, stores them as a print batch and discards the workflow. Send an Idempotency-Key so a retried submit returns the original batch.
// @Tags         Workflows
// @Accept       json
// @Produce      json
// @Param        id path string true "Workflow ID"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.SubmitRequest false "Print metadata"
// @Success      200 {object} dto.SuccessResponse{data=dto.SubmitResponse} "Stored print batch"
// @Failure      403 {object} dto.ErrorResponse "Operator lacks a submit role"
// @Failure      404 {object} dto.ErrorResponse "Unknown or expired workflow"
// @Failure      409 {object} dto.ErrorResponse "Invalid state or rejected batch"
// @Failure      422 {object} dto.ErrorResponse "Quantities do not reconcile"
// @Failure      503 {object} dto.ErrorResponse "Print batch store unavailable"
// @Security     BearerAuth
// @Router       /api/workflows/{id}/submit [post]
func (h *WorkflowHandler) SubmitWorkflow(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.SubmitRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
			return
		}
	}

	wf, result, err := h.workflows.Submit(c.Request.Context(), c.Param("id"), req.Metadata)
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessOK(dto.SubmitResponse{
		WorkflowID: wf.ID,
		State:      wf.State,
		BatchID:    result.BatchID,
		Message:    result.Message,
	})
}

// ResetWorkflow handles POST /api/workflows/:id/reset requests.
//
// @Summary      Reset a workflow
// @Description  Discards the allocations and returns the workflow to idle. Reserved serial counters are not reused.
// @Tags         Workflows
// @Produce      json
// @Param        id path string true "Workflow ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.WorkflowResponse} "Idle workflow"
// @Failure      404 {object} dto.ErrorResponse "Unknown or expired workflow"
// @Security     BearerAuth
// @Router       /api/workflows/{id}/reset [post]
func (h *WorkflowHandler) ResetWorkflow(c *gin.Context) {
	builder := NewResponseBuilder(c)

	wf, err := h.workflows.Reset(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessOK(dto.NewWorkflowResponse(wf))
}

// CancelWorkflow handles DELETE /api/workflows/:id requests.
//
// @Summary      Cancel a workflow
// @Description  Discards the workflow and its allocations
// @Tags         Workflows
// @Param        id path string true "Workflow ID"
// @Success      204 "Workflow discarded"
// @Failure      404 {object} dto.ErrorResponse "Unknown or expired workflow"
// @Security     BearerAuth
// @Router       /api/workflows/{id} [delete]
func (h *WorkflowHandler) CancelWorkflow(c *gin.Context) {
	if err := h.workflows.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		NewResponseBuilder(c).ServiceError(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkflowHandler) badRequest(builder *ResponseBuilder, err error) {
	var requestErr *dto.RequestError
	if errors.As(err, &requestErr) {
		builder.ServiceError(err)
		return
	}
	builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
}
