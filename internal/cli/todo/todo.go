package todo

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todoapi/internal/cli"
	todoservice "github.com/thenoetrevino/todoapi/internal/services/todo"
)

// TodoCmd returns the todo parent command
func TodoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage todos in the local database",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

func addOutputFlags(cmd *cobra.Command) {
	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

func newFormatter(cmd *cobra.Command) *cli.OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

func openCLI(cmd *cobra.Command, formatter *cli.OutputFormatter) (*cli.CLI, error) {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return nil, err
	}
	return cliInstance, nil
}

func closeCLI(cliInstance *cli.CLI) {
	if err := cliInstance.Close(); err != nil {
		slog.Error("Error closing CLI", "error", err)
	}
}

// reportError prints err through formatter and attaches the matching exit code
func reportError(formatter *cli.OutputFormatter, id int, err error) error {
	var code, message, suggestion string
	exitCode := cli.ExitError

	switch {
	case errors.Is(err, todoservice.ErrTodoNotFound), errors.Is(err, todoservice.ErrInvalidTodoID):
		code, message = "TODO_NOT_FOUND", "todo not found"
		suggestion = "Use 'todoapi todo list' to see existing todos"
		exitCode = cli.ExitNotFound
	case errors.Is(err, todoservice.ErrEmptyTitle):
		code, message = "VALIDATION_ERROR", err.Error()
		exitCode = cli.ExitValidation
	default:
		code, message = "DATABASE_ERROR", err.Error()
	}

	if fmtErr := formatter.ErrorWithSuggestion(code, message, suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr, "todo_id", id)
	}
	return cli.WithExitCode(exitCode, err)
}
