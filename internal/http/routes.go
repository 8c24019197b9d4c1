package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/label-service/internal/middleware"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// RegisterRoutes registers the stateless allocation and counter routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	rg.POST("/allocations/preview", h.PreviewAllocations)
	rg.GET("/counters/:key", h.GetCounter)
}

// RegisterRoutes registers the workflow commands. Submit additionally
// requires one of cfg.SubmitRoles when JWT auth is on.
func (h *WorkflowHandler) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	workflows := rg.Group("/workflows")
	workflows.POST("", h.CreateWorkflow)
	workflows.GET("/:id", h.GetWorkflow)
	workflows.DELETE("/:id", h.CancelWorkflow)
	workflows.POST("/:id/generate", h.GenerateAllocations)
	workflows.PATCH("/:id/labels/:index", h.EditLabelQuantity)
	workflows.POST("/:id/validate", h.ValidateWorkflow)
	workflows.POST("/:id/reset", h.ResetWorkflow)

	if cfg.jwtRequired() && len(cfg.SubmitRoles) > 0 {
		workflows.POST("/:id/submit", middleware.RequireRole(cfg.SubmitRoles...), h.SubmitWorkflow)
	} else {
		workflows.POST("/:id/submit", h.SubmitWorkflow)
	}
}

// RegisterRoutes registers the print batch read routes.
func (h *PrintBatchHandler) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	rg.GET("/print-batches", h.ListPrintBatches)
	rg.GET("/print-batches/:id", h.GetPrintBatch)
}

var (
	_ RouteGroup = (*Handler)(nil)
	_ RouteGroup = (*WorkflowHandler)(nil)
	_ RouteGroup = (*PrintBatchHandler)(nil)
)
