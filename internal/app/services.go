// Package app provides service initialization.
package app

import (
	"fmt"

	"github.com/guttosm/label-service/config"
	"github.com/guttosm/label-service/internal/domain/model"
	"github.com/guttosm/label-service/internal/service"
)

// ServiceComponents holds the stateless business services.
type ServiceComponents struct {
	Allocator *service.LabelAllocatorService
	// Tokens is nil when no JWT secret is configured.
	Tokens *service.HMACTokenService
}

// InitializeServices builds the allocation engine and the token verifier.
func InitializeServices(cfg config.Config) (*ServiceComponents, error) {
	opts := []service.Option{service.WithMaxLabelCount(cfg.Workflow.MaxLabelCount)}

	if cfg.Workflow.DefaultStrategy != "" {
		strategy, err := model.ParseStrategy(cfg.Workflow.DefaultStrategy)
		if err != nil {
			return nil, fmt.Errorf("DEFAULT_STRATEGY: %w", err)
		}
		opts = append(opts, service.WithDefaultStrategy(strategy))
	}

	components := &ServiceComponents{
		Allocator: service.NewLabelAllocatorService(opts...),
	}
	if cfg.Auth.JWTSecretKey != "" {
		components.Tokens = service.NewHMACTokenService(cfg.Auth.JWTSecretKey)
	}
	return components, nil
}
