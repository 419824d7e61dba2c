package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/todoapi/internal/converters"
	"github.com/thenoetrevino/todoapi/internal/database/generated"
	"github.com/thenoetrevino/todoapi/internal/models"
)

// ErrRecordNotFound is returned when no row matches the requested id
var ErrRecordNotFound = errors.New("record not found")

// TodoRepo handles pure data access for todos.
// No business logic, no validation - just database operations.
type TodoRepo struct {
	queries *generated.Queries
	db      *sql.DB
}

// NewTodoRepository creates a todo repository over the given connection pool
func NewTodoRepository(db *sql.DB) *TodoRepo {
	return &TodoRepo{
		queries: generated.New(db),
		db:      db,
	}
}

// txTodoStore runs the same queries bound to an open transaction
type txTodoStore struct {
	queries *generated.Queries
}

// WithTx runs fn inside a single transaction
func (r *TodoRepo) WithTx(ctx context.Context, fn func(store TodoStore) error) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		return fn(&txTodoStore{queries: r.queries.WithTx(tx)})
	})
}

// CreateTodoRecord inserts a todo and returns it with its assigned id
func (r *TodoRepo) CreateTodoRecord(ctx context.Context, title string, completed bool) (models.Todo, error) {
	return createTodo(ctx, r.queries, title, completed)
}

// GetTodoByID retrieves a todo by id
func (r *TodoRepo) GetTodoByID(ctx context.Context, id int) (models.Todo, error) {
	return getTodoByID(ctx, r.queries, id)
}

// GetAllTodos retrieves every todo ordered by id
func (r *TodoRepo) GetAllTodos(ctx context.Context) ([]models.Todo, error) {
	return listTodos(ctx, r.queries)
}

// UpdateTodoRecord replaces title and completed of an existing todo
func (r *TodoRepo) UpdateTodoRecord(ctx context.Context, id int, title string, completed bool) (models.Todo, error) {
	return updateTodo(ctx, r.queries, id, title, completed)
}

// DeleteTodoRecord removes a todo by id
func (r *TodoRepo) DeleteTodoRecord(ctx context.Context, id int) error {
	return deleteTodo(ctx, r.queries, id)
}

func (s *txTodoStore) CreateTodoRecord(ctx context.Context, title string, completed bool) (models.Todo, error) {
	return createTodo(ctx, s.queries, title, completed)
}

func (s *txTodoStore) GetTodoByID(ctx context.Context, id int) (models.Todo, error) {
	return getTodoByID(ctx, s.queries, id)
}

func (s *txTodoStore) GetAllTodos(ctx context.Context) ([]models.Todo, error) {
	return listTodos(ctx, s.queries)
}

func (s *txTodoStore) UpdateTodoRecord(ctx context.Context, id int, title string, completed bool) (models.Todo, error) {
	return updateTodo(ctx, s.queries, id, title, completed)
}

func (s *txTodoStore) DeleteTodoRecord(ctx context.Context, id int) error {
	return deleteTodo(ctx, s.queries, id)
}

func createTodo(ctx context.Context, q *generated.Queries, title string, completed bool) (models.Todo, error) {
	row, err := q.CreateTodo(ctx, generated.CreateTodoParams{
		Title:     title,
		Completed: completed,
	})
	if err != nil {
		return models.Todo{}, fmt.Errorf("failed to create todo: %w", err)
	}
	return converters.TodoToModel(row), nil
}

func getTodoByID(ctx context.Context, q *generated.Queries, id int) (models.Todo, error) {
	row, err := q.GetTodoByID(ctx, int64(id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Todo{}, ErrRecordNotFound
	}
	if err != nil {
		return models.Todo{}, fmt.Errorf("failed to get todo %d: %w", id, err)
	}
	return converters.TodoToModel(row), nil
}

func listTodos(ctx context.Context, q *generated.Queries) ([]models.Todo, error) {
	rows, err := q.ListTodos(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return converters.TodosToModels(rows), nil
}

func updateTodo(ctx context.Context, q *generated.Queries, id int, title string, completed bool) (models.Todo, error) {
	row, err := q.UpdateTodo(ctx, generated.UpdateTodoParams{
		Title:     title,
		Completed: completed,
		ID:        int64(id),
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Todo{}, ErrRecordNotFound
	}
	if err != nil {
		return models.Todo{}, fmt.Errorf("failed to update todo %d: %w", id, err)
	}
	return converters.TodoToModel(row), nil
}

func deleteTodo(ctx context.Context, q *generated.Queries, id int) error {
	affected, err := q.DeleteTodo(ctx, int64(id))
	if err != nil {
		return fmt.Errorf("failed to delete todo %d: %w", id, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
