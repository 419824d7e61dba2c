package converters

import (
	"github.com/thenoetrevino/todoapi/internal/database/generated"
	"github.com/thenoetrevino/todoapi/internal/models"
)

// TodoToModel converts a generated.Todo row to models.Todo
func TodoToModel(t generated.Todo) models.Todo {
	return models.Todo{
		ID:        int(t.ID),
		Title:     t.Title,
		Completed: t.Completed,
	}
}

// TodosToModels converts a slice of generated.Todo rows to a slice of models.Todo.
// The result is never nil so an empty collection encodes as [].
func TodosToModels(rows []generated.Todo) []models.Todo {
	result := make([]models.Todo, len(rows))
	for i, row := range rows {
		result[i] = TodoToModel(row)
	}
	return result
}
