// Package cmd assembles the todoapi command tree
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todoapi/internal/cli"
	"github.com/thenoetrevino/todoapi/internal/cli/configure"
	"github.com/thenoetrevino/todoapi/internal/cli/serve"
	"github.com/thenoetrevino/todoapi/internal/cli/todo"
)

// NewRootCmd builds a fresh command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "todoapi",
		Short: "todoapi - a minimal todo HTTP backend",
		Long: `todoapi serves create, list, update and delete endpoints for todos
backed by SQLite, and can manage the same database from the command line.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serve.ServeCmd())
	rootCmd.AddCommand(todo.TodoCmd())
	rootCmd.AddCommand(configure.ConfigCmd())

	return rootCmd
}

// Execute runs the command tree and returns the process exit code
func Execute() int {
	return cli.ExitCode(NewRootCmd().Execute())
}
