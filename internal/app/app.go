// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/label-service/config"
	"github.com/guttosm/label-service/internal/http"
	"github.com/guttosm/label-service/internal/middleware"
	"github.com/guttosm/label-service/internal/repository"
	"github.com/guttosm/label-service/internal/service"
)

// CoreComponents holds the stateful services behind the workflow API.
type CoreComponents struct {
	Counters     service.CounterSource
	PrintBatches *service.PrintBatchServiceImpl
	Workflows    *service.WorkflowServiceImpl
}

// InitializeCore builds the counter source, the print batch sink and the
// workflow service. Without a database both stores live in memory.
func InitializeCore(services *ServiceComponents, dbComponents *DatabaseComponents, cfg config.WorkflowConfig) *CoreComponents {
	var (
		counters service.CounterSource
		store    repository.PrintBatchRepositoryInterface
	)
	opts := []service.WorkflowOption{
		service.WithWorkflowCapacity(cfg.Capacity),
		service.WithWorkflowTTL(cfg.TTL),
	}

	if dbComponents != nil {
		counters = service.NewRepositoryCounterSource(dbComponents.CounterRepo)
		store = dbComponents.PrintBatchRepo
		if al := middleware.InitAsyncLogger(dbComponents.LoggingService, middleware.DefaultAsyncLoggerConfig()); al != nil {
			opts = append(opts, service.WithAuditSink(al))
		}
	} else {
		log.Warn().Msg("No database: serial counters and print batches are kept in memory and lost on restart")
		counters = service.NewMemoryCounterSource()
		store = service.NewMemoryPrintBatchStore()
	}

	batches := service.NewPrintBatchService(store)
	return &CoreComponents{
		Counters:     counters,
		PrintBatches: batches,
		Workflows:    service.NewWorkflowService(services.Allocator, counters, batches, opts...),
	}
}

// App is the wired application. Close releases every background goroutine and
// the database connection.
type App struct {
	Router   *http.Router
	Services *ServiceComponents
	Core     *CoreComponents
	Database *DatabaseComponents

	closeOnce sync.Once
	closeErr  error
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) (*App, error) {
	InitializeLogger(cfg.Log)

	services, err := InitializeServices(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Auth.Enabled && services.Tokens == nil && len(cfg.Auth.APIKeys) == 0 {
		return nil, errors.New("AUTH_ENABLED requires JWT_SECRET_KEY or API_KEYS")
	}

	dbComponents := InitializeDatabase(cfg.Database)
	core := InitializeCore(services, dbComponents, cfg.Workflow)
	routerComponents := InitializeRouter(services, core, dbComponents, cfg)

	return &App{
		Router:   http.NewRouter(routerComponents.Routes, routerComponents.HealthHandler, routerComponents.Config),
		Services: services,
		Core:     core,
		Database: dbComponents,
	}, nil
}

// Close stops the router middleware, the workflow janitor and the audit
// writers, then disconnects from MongoDB. It is safe to call more than once.
func (a *App) Close(ctx context.Context) error {
	a.closeOnce.Do(func() {
		a.Router.Close()
		a.Core.Workflows.Stop()
		middleware.StopAsyncLogger()
		a.closeErr = a.Database.Close(ctx)
	})
	return a.closeErr
}

// Run serves the application until ctx is cancelled, then shuts everything down.
func Run(ctx context.Context, cfg config.Config) error {
	application, err := InitializeApp(cfg)
	if err != nil {
		return err
	}

	server := NewServer(application.Router, cfg.Server.Port,
		WithShutdownTimeout(cfg.Server.ShutdownTimeout),
		WithWriteTimeout(cfg.Server.RequestTimeout+defaultWriteTimeout),
	)
	runErr := server.Run(ctx)

	closeCtx, cancel := context.WithTimeout(context.Background(), server.shutdownTimeout)
	defer cancel()
	if err := application.Close(closeCtx); err != nil {
		log.Error().Err(err).Msg("Failed to close database connection")
	}
	return runErr
}
