package todo

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// DeleteCmd returns the todo delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a todo",
		Long:  "Delete a todo by ID. Deleted ids are never reused.",
		RunE:  runDelete,
	}

	cmd.Flags().Int("id", 0, "Todo ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	addOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	todoID, _ := cmd.Flags().GetInt("id")

	formatter := newFormatter(cmd)

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	if err := cliInstance.App.TodoService.DeleteTodo(ctx, todoID); err != nil {
		return reportError(formatter, todoID, err)
	}

	return formatter.Message(fmt.Sprintf("Todo %d deleted successfully", todoID))
}
