package todo

import "errors"

// Domain errors for todo service
var (
	// Validation errors
	ErrEmptyTitle    = errors.New("todo title cannot be empty")
	ErrInvalidTodoID = errors.New("invalid todo ID")

	// Business logic errors
	ErrTodoNotFound = errors.New("todo not found")
)
