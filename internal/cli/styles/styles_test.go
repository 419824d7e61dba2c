package styles

import (
	"strings"
	"testing"

	"github.com/thenoetrevino/todoapi/internal/models"
)

func TestRenderTodo(t *testing.T) {
	tests := []struct {
		name string
		todo models.Todo
		want []string
	}{
		{name: "open", todo: models.Todo{ID: 3, Title: "Write docs"}, want: []string{"[ ]", "#3", "Write docs"}},
		{name: "completed", todo: models.Todo{ID: 7, Title: "Ship", Completed: true}, want: []string{"[x]", "#7", "Ship"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderTodo(tt.todo)
			for _, part := range tt.want {
				if !strings.Contains(got, part) {
					t.Errorf("RenderTodo() = %q, want it to contain %q", got, part)
				}
			}
		})
	}
}
