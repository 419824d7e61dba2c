package serve

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todoapi/internal/app"
	"github.com/thenoetrevino/todoapi/internal/config"
	"github.com/thenoetrevino/todoapi/internal/database"
	"github.com/thenoetrevino/todoapi/internal/logging"
	"github.com/thenoetrevino/todoapi/internal/server"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the todo HTTP API",
		Long: `Run the todo HTTP API until interrupted.

Settings come from the config file and TODOAPI_* environment variables;
flags given here override both.

Examples:
  todoapi serve
  todoapi serve --addr=127.0.0.1:9000 --db=/tmp/todos.db
  todoapi serve --cors-origin=http://localhost:3000 --cors-origin=http://localhost:19006
`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (default from config, :8000)")
	cmd.Flags().String("db", "", "SQLite database path")
	cmd.Flags().String("driver", "", "SQLite driver: sqlite or sqlite3")
	cmd.Flags().StringSlice("cors-origin", nil, "Allowed CORS origin (repeatable)")
	cmd.Flags().String("log-level", "", "Log level: debug, info, warn, error")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	closer, err := logging.Init(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() {
		_ = closer.Close()
	}()

	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return Run(ctx, cfg, slog.Default())
}

// applyFlags copies explicitly set flags over cfg and revalidates it
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Server.Addr, _ = flags.GetString("addr")
	}
	if flags.Changed("db") {
		cfg.Database.Path, _ = flags.GetString("db")
	}
	if flags.Changed("driver") {
		cfg.Database.Driver, _ = flags.GetString("driver")
	}
	if flags.Changed("cors-origin") {
		cfg.CORS.AllowedOrigins, _ = flags.GetStringSlice("cors-origin")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	return cfg.Validate()
}

// Run opens the database and serves the API until ctx is cancelled
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	// ctx only bounds serving; startup finishes even if it is already cancelled
	db, err := database.InitDB(context.WithoutCancel(ctx), cfg.Database.Driver, cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(db, app.WithLogger(logger))
	defer func() {
		if err := application.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	srv, err := server.NewServer(cfg, application)
	if err != nil {
		return err
	}

	logger.Info("todoapi starting",
		"addr", cfg.Server.Addr,
		"db_driver", cfg.Database.Driver,
		"db_path", cfg.Database.Path,
		"pid", os.Getpid(),
	)

	if err := srv.Start(ctx); err != nil {
		return err
	}

	logger.Info("todoapi shut down gracefully")
	return nil
}
