// Package styles holds the lipgloss styles used for human-readable CLI output
package styles

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todoapi/internal/models"
)

const (
	colorAccent  = "#7D56F4"
	colorTitle   = "#FAFAFA"
	colorSubtle  = "#777777"
	colorSuccess = "#04B575"
	colorError   = "#FF5F87"
)

var (
	// Text styles
	TitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorTitle))
	SubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorSubtle))
	LabelStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent))

	// Status styles
	SuccessStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorSuccess))
	ErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorError))
)

// RenderTodo renders a todo as a single line
// Format: "[x] #12 Title"
func RenderTodo(todo models.Todo) string {
	box := SubtitleStyle.Render("[ ]")
	if todo.Completed {
		box = SuccessStyle.Render("[x]")
	}
	return fmt.Sprintf("%s %s %s", box, LabelStyle.Render(fmt.Sprintf("#%d", todo.ID)), TitleStyle.Render(todo.Title))
}
