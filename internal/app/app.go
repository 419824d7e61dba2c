package app

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/todoapi/internal/database"
	todoservice "github.com/thenoetrevino/todoapi/internal/services/todo"
)

// App holds all application services and provides dependency injection.
// It is built once at startup and passed explicitly to every entry point.
type App struct {
	db     *sql.DB
	logger *slog.Logger

	// Service layer (business logic)
	TodoService todoservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return &App{
		db:          db,
		logger:      cfg.logger,
		TodoService: todoservice.NewService(database.NewTodoRepository(db), cfg.logger),
	}
}

// Logger returns the logger shared by the application's components
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Ping reports whether the database is reachable
func (a *App) Ping(ctx context.Context) error {
	return a.db.PingContext(ctx)
}

// Close releases the database connection pool
func (a *App) Close() error {
	return a.db.Close()
}
