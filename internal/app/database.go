// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/label-service/config"
	"github.com/guttosm/label-service/internal/circuitbreaker"
	"github.com/guttosm/label-service/internal/metrics"
	"github.com/guttosm/label-service/internal/repository"
	"github.com/guttosm/label-service/internal/service"
)

// Circuit breaker names, also used as readiness check names.
const (
	countersBreaker     = "mongodb_counters"
	printBatchesBreaker = "mongodb_print_batches"
	logsBreaker         = "mongodb_logs"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB              *repository.MongoDB
	CounterRepo     repository.CounterRepositoryInterface
	PrintBatchRepo  repository.PrintBatchRepositoryInterface
	LoggingService  service.LoggingService
	CircuitBreakers map[string]*circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing with in-memory counters and batches")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(ctx, ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	breakers := map[string]*circuitbreaker.CircuitBreaker{
		countersBreaker:     newCircuitBreaker(countersBreaker, cfg),
		printBatchesBreaker: newCircuitBreaker(printBatchesBreaker, cfg),
		logsBreaker:         newCircuitBreaker(logsBreaker, cfg),
	}

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), breakers[logsBreaker])

	return &DatabaseComponents{
		DB:              db,
		CounterRepo:     repository.NewCounterRepositoryWithCircuitBreaker(repository.NewCounterRepository(db), breakers[countersBreaker]),
		PrintBatchRepo:  repository.NewPrintBatchRepositoryWithCircuitBreaker(repository.NewPrintBatchRepository(db), breakers[printBatchesBreaker]),
		LoggingService:  service.NewLoggingService(logsRepo),
		CircuitBreakers: breakers,
	}
}

// newCircuitBreaker builds a breaker that ignores lookups that miss and
// duplicate serials, and mirrors its state into the metrics.
func newCircuitBreaker(name string, cfg config.DatabaseConfig) *circuitbreaker.CircuitBreaker {
	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))
	return circuitbreaker.New(circuitbreaker.Config{
		Name:             name,
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		IsFailure:        repository.IsStoreFailure,
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
			metrics.SetCircuitBreakerState(name, int(to))
		},
	})
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}
