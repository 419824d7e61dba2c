package configure

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todoapi/internal/cli"
	"github.com/thenoetrevino/todoapi/internal/config"
	"gopkg.in/yaml.v3"
)

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	cmd.AddCommand(InitCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(PathCmd())

	return cmd
}

// InitCmd returns the config init subcommand
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			path, _ := cmd.Flags().GetString("path")
			if path == "" {
				var err error
				if path, err = resolvePath(); err != nil {
					return err
				}
			}

			if _, err := os.Stat(path); err == nil && !force {
				return cli.WithExitCode(cli.ExitUsage,
					fmt.Errorf("config file %s already exists (use --force to overwrite)", path))
			}

			if err := config.Default().Save(path); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing file")
	cmd.Flags().String("path", "", "Destination (default: the config path)")

	return cmd
}

// ShowCmd returns the config show subcommand
func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective config after environment overrides",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return cli.WithExitCode(cli.ExitDataErr, err)
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			fmt.Print(string(data))
			return nil
		},
	}
}

// PathCmd returns the config path subcommand
func PathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolvePath()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
}

func resolvePath() (string, error) {
	if path := os.Getenv(config.EnvConfigFile); path != "" {
		return path, nil
	}
	path, err := config.ConfigPath()
	if err != nil {
		return "", errors.New("could not determine config directory; set " + config.EnvConfigFile)
	}
	return path, nil
}
