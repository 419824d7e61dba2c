// Package testutil provides database fixtures shared by package tests
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/todoapi/internal/database"
)

// SetupTestDB creates a migrated in-memory database that is closed when the test ends
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.DriverModernc, database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// CreateTestTodo inserts a todo directly and returns its ID
func CreateTestTodo(t *testing.T, db *sql.DB, title string, completed bool) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO todos (title, completed) VALUES (?, ?)", title, completed)
	if err != nil {
		t.Fatalf("Failed to create test todo: %v", err)
	}
	todoID, _ := result.LastInsertId()
	return int(todoID)
}

// CountTodos returns the number of rows in the todos table
func CountTodos(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	if err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM todos").Scan(&count); err != nil {
		t.Fatalf("Failed to count todos: %v", err)
	}
	return count
}
