package todo

import (
	"context"
	"errors"
	"testing"

	"github.com/thenoetrevino/todoapi/internal/database"
	"github.com/thenoetrevino/todoapi/internal/models"
	"github.com/thenoetrevino/todoapi/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func newTestService(t *testing.T) (Service, func() int) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewTodoRepository(db), nil)
	count := func() int { return testutil.CountTodos(t, db) }
	return svc, count
}

func mustCreate(t *testing.T, svc Service, title string, completed bool) models.Todo {
	t.Helper()
	todo, err := svc.CreateTodo(context.Background(), CreateTodoRequest{Title: title, Completed: completed})
	if err != nil {
		t.Fatalf("Failed to create todo %q: %v", title, err)
	}
	return todo
}

// ============================================================================
// TEST CASES - CreateTodo
// ============================================================================

func TestCreateTodo(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	result, err := svc.CreateTodo(context.Background(), CreateTodoRequest{Title: "Buy milk"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.ID == 0 {
		t.Error("Expected todo ID to be set")
	}
	if result.Title != "Buy milk" {
		t.Errorf("Expected title 'Buy milk', got '%s'", result.Title)
	}
	if result.Completed {
		t.Error("Expected completed to default to false")
	}
}

func TestCreateTodo_Completed(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	result := mustCreate(t, svc, "Done already", true)
	if !result.Completed {
		t.Error("Expected completed to be true")
	}
}

func TestCreateTodo_EmptyTitle(t *testing.T) {
	t.Parallel()

	svc, count := newTestService(t)

	_, err := svc.CreateTodo(context.Background(), CreateTodoRequest{Title: ""})

	if !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("Expected ErrEmptyTitle, got %v", err)
	}
	if n := count(); n != 0 {
		t.Errorf("Expected no rows after failed create, got %d", n)
	}
}

func TestCreateTodo_UniqueIDs(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	seen := make(map[int]bool)
	for i := 0; i < 25; i++ {
		todo := mustCreate(t, svc, "task", false)
		if seen[todo.ID] {
			t.Fatalf("ID %d issued twice", todo.ID)
		}
		seen[todo.ID] = true
	}
}

func TestCreateTodo_IDsNotReusedAfterDelete(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()

	first := mustCreate(t, svc, "first", false)
	second := mustCreate(t, svc, "second", false)

	// deleting the highest id must not hand it out again
	if err := svc.DeleteTodo(ctx, second.ID); err != nil {
		t.Fatalf("Failed to delete todo: %v", err)
	}

	third := mustCreate(t, svc, "third", false)
	if third.ID == second.ID || third.ID == first.ID {
		t.Errorf("Expected a fresh ID, got %d (previous: %d, %d)", third.ID, first.ID, second.ID)
	}
}

// ============================================================================
// TEST CASES - ListTodos
// ============================================================================

func TestListTodos_Empty(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	todos, err := svc.ListTodos(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if todos == nil {
		t.Error("Expected empty slice, got nil")
	}
	if len(todos) != 0 {
		t.Errorf("Expected 0 todos, got %d", len(todos))
	}
}

func TestListTodos_RoundTrip(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	created := mustCreate(t, svc, "Buy milk", false)

	todos, err := svc.ListTodos(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(todos) != 1 {
		t.Fatalf("Expected 1 todo, got %d", len(todos))
	}

	want := models.Todo{ID: created.ID, Title: "Buy milk", Completed: false}
	if todos[0] != want {
		t.Errorf("Expected %+v, got %+v", want, todos[0])
	}
}

func TestListTodos_OrderedByID(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	a := mustCreate(t, svc, "a", false)
	b := mustCreate(t, svc, "b", true)
	c := mustCreate(t, svc, "c", false)

	todos, err := svc.ListTodos(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := []models.Todo{a, b, c}
	if len(todos) != len(want) {
		t.Fatalf("Expected %d todos, got %d", len(want), len(todos))
	}
	for i := range want {
		if todos[i] != want[i] {
			t.Errorf("todos[%d] = %+v, want %+v", i, todos[i], want[i])
		}
	}
}

func TestListTodos_ReturnsCopies(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()

	mustCreate(t, svc, "original", false)

	first, err := svc.ListTodos(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	first[0].Title = "mutated by caller"

	second, err := svc.ListTodos(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if second[0].Title != "original" {
		t.Errorf("Stored title changed through a returned value: %q", second[0].Title)
	}
}

// ============================================================================
// TEST CASES - UpdateTodo
// ============================================================================

func TestUpdateTodo(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	created := mustCreate(t, svc, "Test", false)

	updated, err := svc.UpdateTodo(context.Background(), UpdateTodoRequest{
		ID:        created.ID,
		Title:     "Test2",
		Completed: true,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := models.Todo{ID: created.ID, Title: "Test2", Completed: true}
	if updated != want {
		t.Errorf("Expected %+v, got %+v", want, updated)
	}
}

func TestUpdateTodo_Idempotent(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()

	created := mustCreate(t, svc, "Test", false)
	req := UpdateTodoRequest{ID: created.ID, Title: "Same", Completed: true}

	once, err := svc.UpdateTodo(ctx, req)
	if err != nil {
		t.Fatalf("First update failed: %v", err)
	}
	twice, err := svc.UpdateTodo(ctx, req)
	if err != nil {
		t.Fatalf("Second update failed: %v", err)
	}

	if once != twice {
		t.Errorf("Expected identical state, got %+v then %+v", once, twice)
	}

	todos, err := svc.ListTodos(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(todos) != 1 || todos[0] != twice {
		t.Errorf("Expected stored state %+v, got %+v", twice, todos)
	}
}

func TestUpdateTodo_FullFieldReplace(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()

	created := mustCreate(t, svc, "Keep me", true)

	// same title, completed omitted (zero value) resets completed
	updated, err := svc.UpdateTodo(ctx, UpdateTodoRequest{ID: created.ID, Title: "Keep me"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Title != "Keep me" {
		t.Errorf("Expected title unchanged, got %q", updated.Title)
	}
	if updated.Completed {
		t.Error("Expected completed to reset to false when omitted")
	}

	replaced, err := svc.UpdateTodo(ctx, UpdateTodoRequest{ID: created.ID, Title: "Brand new", Completed: true})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if replaced.Title != "Brand new" {
		t.Errorf("Expected title replaced, got %q", replaced.Title)
	}
}

func TestUpdateTodo_NotFound(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()

	existing := mustCreate(t, svc, "untouched", false)

	_, err := svc.UpdateTodo(ctx, UpdateTodoRequest{ID: existing.ID + 100, Title: "ghost", Completed: true})
	if !errors.Is(err, ErrTodoNotFound) {
		t.Fatalf("Expected ErrTodoNotFound, got %v", err)
	}

	todos, err := svc.ListTodos(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(todos) != 1 || todos[0] != existing {
		t.Errorf("Expected collection unchanged, got %+v", todos)
	}
}

func TestUpdateTodo_Validation(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	tests := []struct {
		name string
		req  UpdateTodoRequest
		want error
	}{
		{"zero id", UpdateTodoRequest{ID: 0, Title: "x"}, ErrInvalidTodoID},
		{"negative id", UpdateTodoRequest{ID: -3, Title: "x"}, ErrInvalidTodoID},
		{"empty title", UpdateTodoRequest{ID: 1, Title: ""}, ErrEmptyTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateTodo(context.Background(), tt.req)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

// ============================================================================
// TEST CASES - DeleteTodo
// ============================================================================

func TestDeleteTodo(t *testing.T) {
	t.Parallel()

	svc, count := newTestService(t)

	created := mustCreate(t, svc, "Delete me", false)

	if err := svc.DeleteTodo(context.Background(), created.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if n := count(); n != 0 {
		t.Errorf("Expected 0 rows after delete, got %d", n)
	}
}

func TestDeleteTodo_ThenRead(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()

	created := mustCreate(t, svc, "Test", false)
	other := mustCreate(t, svc, "Other", false)

	if err := svc.DeleteTodo(ctx, created.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := svc.UpdateTodo(ctx, UpdateTodoRequest{ID: created.ID, Title: "x"}); !errors.Is(err, ErrTodoNotFound) {
		t.Errorf("Update after delete: expected ErrTodoNotFound, got %v", err)
	}
	if err := svc.DeleteTodo(ctx, created.ID); !errors.Is(err, ErrTodoNotFound) {
		t.Errorf("Delete after delete: expected ErrTodoNotFound, got %v", err)
	}

	todos, err := svc.ListTodos(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(todos) != 1 || todos[0] != other {
		t.Errorf("Expected only %+v to remain, got %+v", other, todos)
	}
}

func TestDeleteTodo_InvalidID(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	if err := svc.DeleteTodo(context.Background(), 0); !errors.Is(err, ErrInvalidTodoID) {
		t.Errorf("Expected ErrInvalidTodoID, got %v", err)
	}
}

// ============================================================================
// TEST CASES - storage failures
// ============================================================================

// failingRepo fails every call with errBoom
type failingRepo struct{}

var errBoom = errors.New("disk on fire")

func (failingRepo) GetTodoByID(context.Context, int) (models.Todo, error) {
	return models.Todo{}, errBoom
}

func (failingRepo) GetAllTodos(context.Context) ([]models.Todo, error) {
	return nil, errBoom
}

func (failingRepo) CreateTodoRecord(context.Context, string, bool) (models.Todo, error) {
	return models.Todo{}, errBoom
}

func (failingRepo) UpdateTodoRecord(context.Context, int, string, bool) (models.Todo, error) {
	return models.Todo{}, errBoom
}

func (failingRepo) DeleteTodoRecord(context.Context, int) error {
	return errBoom
}

func (r failingRepo) WithTx(_ context.Context, fn func(store database.TodoStore) error) error {
	return fn(r)
}

func TestService_StorageErrorsAreWrapped(t *testing.T) {
	t.Parallel()

	svc := NewService(failingRepo{}, nil)
	ctx := context.Background()

	_, err := svc.CreateTodo(ctx, CreateTodoRequest{Title: "x"})
	if !errors.Is(err, errBoom) {
		t.Errorf("CreateTodo: expected wrapped storage error, got %v", err)
	}

	_, err = svc.ListTodos(ctx)
	if !errors.Is(err, errBoom) {
		t.Errorf("ListTodos: expected wrapped storage error, got %v", err)
	}

	_, err = svc.UpdateTodo(ctx, UpdateTodoRequest{ID: 1, Title: "x"})
	if !errors.Is(err, errBoom) || errors.Is(err, ErrTodoNotFound) {
		t.Errorf("UpdateTodo: expected wrapped storage error, got %v", err)
	}

	err = svc.DeleteTodo(ctx, 1)
	if !errors.Is(err, errBoom) || errors.Is(err, ErrTodoNotFound) {
		t.Errorf("DeleteTodo: expected wrapped storage error, got %v", err)
	}
}
