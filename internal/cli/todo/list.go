package todo

import (
	"github.com/spf13/cobra"
)

// ListCmd returns the todo list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all todos",
		Long:  "List every todo ordered by id.",
		RunE:  runList,
	}

	addOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	formatter := newFormatter(cmd)

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	todos, err := cliInstance.App.TodoService.ListTodos(ctx)
	if err != nil {
		return reportError(formatter, 0, err)
	}

	return formatter.Success(todos)
}
