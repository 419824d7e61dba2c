package todo

import (
	"log/slog"

	"github.com/spf13/cobra"
	todoservice "github.com/thenoetrevino/todoapi/internal/services/todo"
)

// CreateCmd returns the todo create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new todo",
		Long: `Create a new todo.

Examples:
  # Human-readable output
  todoapi todo create --title="Buy milk"

  # JSON output for agents
  todoapi todo create --title="Buy milk" --json

  # Quiet mode for bash capture
  TODO_ID=$(todoapi todo create --title="Buy milk" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Todo title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	cmd.Flags().Bool("completed", false, "Mark the todo as completed")

	addOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	title, _ := cmd.Flags().GetString("title")
	completed, _ := cmd.Flags().GetBool("completed")

	formatter := newFormatter(cmd)

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	todo, err := cliInstance.App.TodoService.CreateTodo(ctx, todoservice.CreateTodoRequest{
		Title:     title,
		Completed: completed,
	})
	if err != nil {
		return reportError(formatter, 0, err)
	}

	return formatter.Success(todo)
}
