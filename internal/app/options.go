package app

import (
	"log/slog"

	"github.com/thenoetrevino/roster/internal/metrics"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	recorder    *metrics.Recorder
	metricsFile string
	logger      *slog.Logger
}

// WithMetrics sets the recorder the services report to
func WithMetrics(recorder *metrics.Recorder) Option {
	return func(cfg *appConfig) {
		cfg.recorder = recorder
	}
}

// WithMetricsTextfile makes Close write the metrics to path
func WithMetricsTextfile(path string) Option {
	return func(cfg *appConfig) {
		cfg.metricsFile = path
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
