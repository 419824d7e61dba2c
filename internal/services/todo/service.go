// Package todo is the authoritative store for todo records: identity
// assignment, validation, and not-found signaling for the four CRUD operations.
package todo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/todoapi/internal/database"
	"github.com/thenoetrevino/todoapi/internal/models"
)

// Service defines all todo-related business operations
type Service interface {
	// Read operations
	ListTodos(ctx context.Context) ([]models.Todo, error)

	// Write operations
	CreateTodo(ctx context.Context, req CreateTodoRequest) (models.Todo, error)
	UpdateTodo(ctx context.Context, req UpdateTodoRequest) (models.Todo, error)
	DeleteTodo(ctx context.Context, id int) error
}

// CreateTodoRequest encapsulates data for creating a todo
type CreateTodoRequest struct {
	Title     string
	Completed bool
}

// UpdateTodoRequest encapsulates data for updating a todo.
// Both mutable fields are always replaced; there is no partial update.
type UpdateTodoRequest struct {
	ID        int
	Title     string
	Completed bool
}

// service implements Service interface
type service struct {
	repo   database.TodoRepository
	logger *slog.Logger
}

// NewService creates a new todo service.
// A nil logger falls back to slog.Default().
func NewService(repo database.TodoRepository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// ListTodos returns a snapshot of every todo ordered by id
func (s *service) ListTodos(ctx context.Context) ([]models.Todo, error) {
	todos, err := s.repo.GetAllTodos(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

// CreateTodo validates and stores a new todo, returning it with its assigned id
func (s *service) CreateTodo(ctx context.Context, req CreateTodoRequest) (models.Todo, error) {
	if req.Title == "" {
		return models.Todo{}, ErrEmptyTitle
	}

	todo, err := s.repo.CreateTodoRecord(ctx, req.Title, req.Completed)
	if err != nil {
		return models.Todo{}, fmt.Errorf("failed to create todo: %w", err)
	}

	s.logger.Debug("todo created", "todo_id", todo.ID)
	return todo, nil
}

// UpdateTodo replaces title and completed on an existing todo.
// Nothing is written when the todo does not exist.
func (s *service) UpdateTodo(ctx context.Context, req UpdateTodoRequest) (models.Todo, error) {
	if req.ID <= 0 {
		return models.Todo{}, ErrInvalidTodoID
	}
	if req.Title == "" {
		return models.Todo{}, ErrEmptyTitle
	}

	var updated models.Todo
	err := s.repo.WithTx(ctx, func(store database.TodoStore) error {
		if _, err := store.GetTodoByID(ctx, req.ID); err != nil {
			return notFoundOr(err, "failed to get todo")
		}

		todo, err := store.UpdateTodoRecord(ctx, req.ID, req.Title, req.Completed)
		if err != nil {
			return notFoundOr(err, "failed to update todo")
		}
		updated = todo
		return nil
	})
	if err != nil {
		return models.Todo{}, err
	}

	s.logger.Debug("todo updated", "todo_id", updated.ID)
	return updated, nil
}

// DeleteTodo permanently removes a todo. Its id is never issued again.
func (s *service) DeleteTodo(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidTodoID
	}

	err := s.repo.WithTx(ctx, func(store database.TodoStore) error {
		if _, err := store.GetTodoByID(ctx, id); err != nil {
			return notFoundOr(err, "failed to get todo")
		}
		if err := store.DeleteTodoRecord(ctx, id); err != nil {
			return notFoundOr(err, "failed to delete todo")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug("todo deleted", "todo_id", id)
	return nil
}

// notFoundOr maps a missing record to ErrTodoNotFound and wraps anything else
func notFoundOr(err error, msg string) error {
	if errors.Is(err, database.ErrRecordNotFound) {
		return ErrTodoNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
