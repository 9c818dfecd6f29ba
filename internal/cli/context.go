package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/roster/internal/app"
	"github.com/thenoetrevino/roster/internal/config"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	appKey    contextKey = "app"
	configKey contextKey = "config"
)

// WithApp returns a context carrying an already open App. Commands run
// under it use that App and leave closing it to the caller.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithConfig returns a context carrying the resolved configuration
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the configuration stored by WithConfig, or
// loads it from disk when the context has none
func ConfigFromContext(ctx context.Context) (*config.Config, error) {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok && cfg != nil {
		return cfg, nil
	}
	return config.Load()
}

// GetCLIFromContext returns a CLI for the running command. It reuses an App
// placed in ctx by WithApp and otherwise opens the configured database.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}

	cfg, err := ConfigFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewCLI(ctx, cfg)
}
