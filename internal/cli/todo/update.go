package todo

import (
	"log/slog"

	"github.com/spf13/cobra"
	todoservice "github.com/thenoetrevino/todoapi/internal/services/todo"
)

// UpdateCmd returns the todo update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace a todo's title and completed state",
		Long: `Replace both fields of an existing todo.

Omitting --completed marks the todo as not completed.`,
		RunE: runUpdate,
	}

	cmd.Flags().Int("id", 0, "Todo ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	cmd.Flags().String("title", "", "New todo title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	cmd.Flags().Bool("completed", false, "Mark the todo as completed")

	addOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	todoID, _ := cmd.Flags().GetInt("id")
	title, _ := cmd.Flags().GetString("title")
	completed, _ := cmd.Flags().GetBool("completed")

	formatter := newFormatter(cmd)

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	todo, err := cliInstance.App.TodoService.UpdateTodo(ctx, todoservice.UpdateTodoRequest{
		ID:        todoID,
		Title:     title,
		Completed: completed,
	})
	if err != nil {
		return reportError(formatter, todoID, err)
	}

	return formatter.Success(todo)
}
