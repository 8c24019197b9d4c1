package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/label-service/internal/metrics"
	"github.com/guttosm/label-service/internal/middleware"
	"github.com/guttosm/label-service/internal/service"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	EnableAuth        bool
	APIKeys           []string
	TokenVerifier     service.TokenVerifier
	SubmitRoles       []string
	EnableIdempotency bool
	IdempotencyTTL    time.Duration
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:         100,
		RateWindow:        time.Minute,
		RequestTimeout:    middleware.DefaultRequestTimeout,
		EnableIdempotency: true,
		IdempotencyTTL:    middleware.IdempotencyKeyTTL,
	}
}

// jwtRequired reports whether every API request must carry a bearer token.
func (cfg *RouterConfig) jwtRequired() bool {
	return cfg.EnableAuth && cfg.TokenVerifier != nil
}

// Routes groups the handlers mounted under /api. Nil handlers are skipped.
type Routes struct {
	Allocations  *Handler
	Workflows    *WorkflowHandler
	PrintBatches *PrintBatchHandler
}

func (r Routes) groups() []RouteGroup {
	var groups []RouteGroup
	if r.Allocations != nil {
		groups = append(groups, r.Allocations)
	}
	if r.Workflows != nil {
		groups = append(groups, r.Workflows)
	}
	if r.PrintBatches != nil {
		groups = append(groups, r.PrintBatches)
	}
	return groups
}

// Router is the configured gin engine plus the middleware state that owns
// background goroutines. Call Close on shutdown.
type Router struct {
	*gin.Engine
	limiter     *middleware.ShardedRateLimiter
	idempotency *middleware.Idempotency
}

// Close stops the rate limiter and idempotency cache cleanup goroutines.
func (r *Router) Close() {
	if r.limiter != nil {
		r.limiter.Stop()
	}
	if r.idempotency != nil {
		r.idempotency.Stop()
	}
}

// NewRouter creates and configures the Gin router for the label service.
func NewRouter(routes Routes, healthHandler *HealthHandler, cfg RouterConfig) *Router {
	r := &Router{Engine: gin.New()}

	configureGlobalMiddleware(r.Engine, &cfg)
	registerInfrastructureRoutes(r.Engine, healthHandler, &cfg)

	api := r.Group("/api")
	r.configureAPIMiddleware(api, &cfg)

	for _, group := range routes.groups() {
		group.RegisterRoutes(api, &cfg)
	}

	return r
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "Authorization", "accept", "Cache-Control", "X-Requested-With", "X-API-Key", "Idempotency-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After", "X-Idempotency-Replayed"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
	)
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up authentication, operator attribution,
// rate limiting, idempotency and the request deadline for the API group.
func (r *Router) configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	switch {
	case cfg.jwtRequired():
		api.Use(middleware.JWTAuth(cfg.TokenVerifier))
	case cfg.EnableAuth && len(cfg.APIKeys) > 0:
		api.Use(middleware.APIKeyAuth(cfg.APIKeys))
		if cfg.TokenVerifier != nil {
			api.Use(middleware.OptionalJWT(cfg.TokenVerifier))
		}
	case cfg.TokenVerifier != nil:
		api.Use(middleware.OptionalJWT(cfg.TokenVerifier))
	}

	api.Use(middleware.Actor())

	if cfg.RateLimit > 0 {
		r.limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		api.Use(r.limiter.OperatorRateLimit())
	}

	if cfg.EnableIdempotency {
		r.idempotency = middleware.NewIdempotency(cfg.IdempotencyTTL)
		api.Use(r.idempotency.Handler())
	}

	api.Use(middleware.Timeout(cfg.RequestTimeout))
}
