// Package app provides router configuration.
package app

import (
	"github.com/guttosm/label-service/config"
	"github.com/guttosm/label-service/internal/http"
	"github.com/guttosm/label-service/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Routes        http.Routes
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers, readiness checks and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	core *CoreComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	routes := http.Routes{
		Allocations:  http.NewHandler(services.Allocator, http.WithCounterSource(core.Counters)),
		Workflows:    http.NewWorkflowHandler(core.Workflows, services.Allocator.DefaultStrategy()),
		PrintBatches: http.NewPrintBatchHandler(core.PrintBatches),
	}

	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterInfo("workflows_active", func() interface{} {
		return core.Workflows.Active()
	})
	if dbComponents != nil {
		healthHandler.RegisterChecker("mongodb", dbComponents.DB)
		for name, cb := range dbComponents.CircuitBreakers {
			healthHandler.RegisterCircuitBreaker(name, cb)
		}
		healthHandler.RegisterInfo("audit_log", func() interface{} {
			if al := middleware.GetAsyncLogger(); al != nil {
				return al.Stats()
			}
			return nil
		})
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		SubmitRoles:       cfg.Auth.SubmitRoles,
		EnableIdempotency: true,
		IdempotencyTTL:    middleware.IdempotencyKeyTTL,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
	}
	if services.Tokens != nil {
		routerCfg.TokenVerifier = services.Tokens
	}

	return &RouterComponents{
		Routes:        routes,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
