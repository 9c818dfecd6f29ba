package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/roster/internal/app"
	"github.com/thenoetrevino/roster/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App   *app.App // Application container with services
	owned bool
}

// NewCLI opens the database named by cfg and wires the application services
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	application, err := app.Open(ctx, cfg, app.WithLogger(slog.Default().With("db", cfg.Database.Path)))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{
		App:   application,
		owned: true,
	}, nil
}

// Close cleans up CLI resources. An App borrowed from the context is left open.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
