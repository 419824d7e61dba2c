// Package cli provides fixtures for exercising cobra commands in tests
package cli

import (
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/thenoetrevino/todoapi/internal/app"
	"github.com/thenoetrevino/todoapi/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// It lives in its own package so service tests can import testutil without
// pulling in the CLI.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	appInstance := app.New(db, app.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	return db, appInstance
}

// CreateTestTodo wraps testutil.CreateTestTodo for CLI tests
func CreateTestTodo(t *testing.T, db *sql.DB, title string, completed bool) int {
	t.Helper()
	return testutil.CreateTestTodo(t, db, title, completed)
}
