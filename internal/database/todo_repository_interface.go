package database

import (
	"context"

	"github.com/thenoetrevino/todoapi/internal/models"
)

// TodoReader defines read operations for todos.
type TodoReader interface {
	GetTodoByID(ctx context.Context, id int) (models.Todo, error)
	GetAllTodos(ctx context.Context) ([]models.Todo, error)
}

// TodoWriter defines write operations for todos.
type TodoWriter interface {
	CreateTodoRecord(ctx context.Context, title string, completed bool) (models.Todo, error)
	UpdateTodoRecord(ctx context.Context, id int, title string, completed bool) (models.Todo, error)
	DeleteTodoRecord(ctx context.Context, id int) error
}

// TodoStore combines read and write operations bound to one session,
// either the pool or a single transaction.
type TodoStore interface {
	TodoReader
	TodoWriter
}

// TodoRepository is a TodoStore that can also scope work to a transaction.
// fn runs against a store bound to the transaction; the transaction commits
// when fn returns nil and rolls back otherwise.
type TodoRepository interface {
	TodoStore
	WithTx(ctx context.Context, fn func(store TodoStore) error) error
}
