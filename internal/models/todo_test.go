package models

import (
	"encoding/json"
	"testing"
)

func TestTodo_JSONShape(t *testing.T) {
	data, err := json.Marshal(Todo{ID: 1, Title: "Test", Completed: false})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := `{"id":1,"title":"Test","completed":false}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestTodo_GetID(t *testing.T) {
	todo := Todo{ID: 42, Title: "Answer"}
	if todo.GetID() != 42 {
		t.Errorf("GetID() = %d, want 42", todo.GetID())
	}
}
