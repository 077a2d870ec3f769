package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/diogo/agentdash/internal/config"
)

func newConfigCmd(deps *Dependencies, opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Open configuration menu",
		Long: `Interactive menu to configure agentdash settings.

When stdout is not a terminal the effective configuration is printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := deps.loadConfig(opts.server)
			if err != nil {
				return err
			}
			if !deps.StdoutIsTerminal() {
				return printConfig(deps, cfg, path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
				return fmt.Errorf("failed to create config directory: %w", err)
			}
			return deps.RunConfig(cfg, path)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, path, err := deps.loadConfig(opts.server)
				if err != nil {
					return err
				}
				return printConfig(deps, cfg, path)
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Change one setting",
			Long: fmt.Sprintf(`Change one setting and save it to the config file.

Keys: %v`, config.Keys()),
			Args: cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				// The --server override must not leak into the saved file
				cfg, path, err := deps.loadConfig("")
				if err != nil {
					return err
				}
				if err := config.Set(&cfg, args[0], args[1]); err != nil {
					return err
				}
				if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
					return fmt.Errorf("failed to create config directory: %w", err)
				}
				if err := config.SaveConfigTo(path, cfg); err != nil {
					return err
				}
				fmt.Fprintln(deps.Stdout, successStyle.Render(fmt.Sprintf("✓ %s = %s", args[0], args[1])))
				return nil
			},
		},
	)
	return cmd
}

func printConfig(deps *Dependencies, cfg config.Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Fprintln(deps.Stdout, dimStyle.Render("# "+path))
	fmt.Fprintln(deps.Stdout, string(data))
	return nil
}
