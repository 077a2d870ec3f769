package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diogo/agentdash/internal/dashboard"
	"github.com/diogo/agentdash/internal/models"
)

func newHealthCmd(deps *Dependencies, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check whether the agent server is ready",
		Long: `Probe the server health endpoint and print Connected, Not Ready or
Disconnected. The exit code is non-zero unless the server is Connected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := deps.connect(opts.server)
			if err != nil {
				return err
			}

			report, err := conn.client.Health(cmd.Context())
			status := dashboard.ClassifyHealth(report, err)

			fmt.Fprintln(deps.Stdout, healthLine(status)+dimStyle.Render("  "+conn.client.BaseURL()))
			if err != nil {
				conn.logger.Printf("health probe failed: %v", err)
				fmt.Fprintln(deps.Stderr, dimStyle.Render("  "+err.Error()))
			} else {
				fmt.Fprintln(deps.Stdout, dimStyle.Render(fmt.Sprintf("  status: %s", report.Status)))
				fmt.Fprintln(deps.Stdout, dimStyle.Render(fmt.Sprintf("  agent: %s", initialized(report.AgentInitialized))))
				fmt.Fprintln(deps.Stdout, dimStyle.Render(fmt.Sprintf("  storage: %s", initialized(report.StorageInitialized))))
			}

			if status != models.HealthConnected {
				return errUnhealthy
			}
			return nil
		},
	}
}

func healthLine(status models.HealthStatus) string {
	switch status {
	case models.HealthConnected:
		return successStyle.Render("● " + status.Label())
	case models.HealthNotReady:
		return warningStyle.Render("● " + status.Label())
	default:
		return errorStyle.Render("● " + status.Label())
	}
}

func initialized(ok bool) string {
	if ok {
		return "initialized"
	}
	return "not initialized"
}
