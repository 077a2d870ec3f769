// Package commands provides CLI commands for agentdash.
package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/diogo/agentdash/internal/render"
	"github.com/diogo/agentdash/internal/tui"
)

var (
	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// errUnhealthy makes the process exit non-zero without printing an error;
// the command already reported the state.
var errUnhealthy = errors.New("server not connected")

// rootOptions holds the persistent flags shared by every command
type rootOptions struct {
	server string
}

// NewRootCmd creates the agentdash command tree
func NewRootCmd(deps *Dependencies) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "agentdash",
		Short: "Terminal dashboard for an AI agent server",
		Long: `agentdash is a terminal dashboard for an AI agent server. It shows the
server health, a chat with the agent and the files the agent has stored,
refreshing the file list in the background.

Examples:
  agentdash                                  Open the dashboard
  agentdash -s http://10.0.0.5:8000          Use another server
  agentdash chat "What files do I have?"     Send one message
  echo "Read notes.txt" | agentdash chat     Read the message from stdin
  agentdash files list                       List stored files
  agentdash files rm notes.txt --yes         Delete without asking
  agentdash health                           Check the server
  agentdash config set file_poll_interval 5  Change a setting`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Fprintf(deps.Stdout, "agentdash %s (built %s)\n", Version, BuildTime)
				return nil
			}

			conn, err := deps.connect(opts.server)
			if err != nil {
				return err
			}
			conn.logger.Printf("dashboard starting against %s", conn.client.BaseURL())
			return deps.RunDashboard(conn.client, conn.cfg, conn.logger)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.server, "server", "s", "", "Agent server URL (overrides server_url)")
	cmd.Flags().BoolP("version", "v", false, "Show version and exit")

	cmd.AddCommand(
		newChatCmd(deps, opts),
		newFilesCmd(deps, opts),
		newHealthCmd(deps, opts),
		newConfigCmd(deps, opts),
	)
	return cmd
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	deps := NewDependencies()
	if cfg, _, err := deps.loadConfig(""); err == nil {
		render.SetDefaultOptions(render.OptionsFromConfig(cfg))
	}

	if err := NewRootCmd(deps).ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errUnhealthy) {
			fmt.Fprintln(os.Stderr, tui.FormatError(err))
		}
		stop()
		os.Exit(1)
	}
}
