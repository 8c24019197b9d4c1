// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/label-service/config"
	"github.com/guttosm/label-service/internal/logger"
)

// InitializeLogger initializes the JSON logger from the log configuration.
func InitializeLogger(cfg config.LogConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.Pretty)
}
