// Package bootstrap wires configuration, storage, and the triage
// pipeline into runnable components for the service binaries.
package bootstrap

import (
	"fmt"
	"log"

	"github.com/civicgrid/triage/internal/config"
	"github.com/civicgrid/triage/internal/logger"
)

// LoadConfig loads configuration. Uses defaults if file doesn't exist.
func LoadConfig() (*config.Config, error) {
	configPath := config.GetConfigPath("config.yml")
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Warning: Failed to load config file (%s), using defaults: %v", configPath, err)
		return config.Default(), nil
	}
	return cfg, nil
}

// CreateLogger creates a logger instance from configuration.
func CreateLogger(cfg *config.Config) (logger.Logger, error) {
	l, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return l.With(logger.String("service", cfg.Service.Name)), nil
}
