package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/todoapi/internal/app"
	"github.com/thenoetrevino/todoapi/internal/config"
	"github.com/thenoetrevino/todoapi/internal/database"
)

type contextKey string

const appContextKey contextKey = "app"

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// owned is false when App was injected and belongs to the caller
	owned bool
}

// NewCLI opens the configured database and builds the application container
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	db, err := database.InitDB(ctx, cfg.Database.Driver, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{
		App:   app.New(db, app.WithLogger(slog.Default())),
		owned: true,
	}, nil
}

// WithApp returns a context that makes GetCLIFromContext reuse application
func WithApp(ctx context.Context, application *app.App) context.Context {
	return context.WithValue(ctx, appContextKey, application)
}

// GetCLIFromContext reuses an App stored with WithApp, or loads the config
// and opens the database when none is present.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if application, ok := ctx.Value(appContextKey).(*app.App); ok && application != nil {
		return &CLI{App: application}, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewCLI(ctx, cfg)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
