package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/diogo/agentdash/internal/dashboard"
	"github.com/diogo/agentdash/internal/render"
)

func newFilesCmd(deps *Dependencies, opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "Manage files stored by the agent",
	}

	cmd.AddCommand(
		newFilesListCmd(deps, opts),
		newFilesShowCmd(deps, opts),
		newFilesRmCmd(deps, opts),
	)
	return cmd
}

func newFilesListCmd(deps *Dependencies, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored files",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := deps.connect(opts.server)
			if err != nil {
				return err
			}

			files, err := conn.client.ListFiles(cmd.Context())
			if err != nil {
				return err
			}

			var registry dashboard.FileRegistry
			view := dashboard.BuildFileListView(registry.Replace(files), time.Now())
			printFileList(deps.Stdout, view)
			return nil
		},
	}
}

// printFileList writes the listing as a table followed by the totals
func printFileList(w io.Writer, view dashboard.FileListView) {
	if view.Empty {
		fmt.Fprintln(w, dimStyle.Render(dashboard.EmptyFilesIcon+" "+dashboard.EmptyFilesTitle))
		fmt.Fprintln(w, dimStyle.Render(dashboard.EmptyFilesHint))
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("", "NAME", "SIZE", "MODIFIED").
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Inherit(headerStyle)
			}
			if col == 2 {
				return style.Align(lipgloss.Right)
			}
			return style
		})

	for _, row := range view.Rows {
		t.Row(row.Icon, row.Name, row.Size, row.Age)
	}

	label := "files"
	if view.Count == 1 {
		label = "file"
	}
	fmt.Fprintln(w, t.String())
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%d %s • %s", view.Count, label, view.TotalSize)))
}

func newFilesShowCmd(deps *Dependencies, opts *rootOptions) *cobra.Command {
	var copyContent bool

	cmd := &cobra.Command{
		Use:     "show <name>",
		Aliases: []string{"cat"},
		Short:   "Print the content of a stored file",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := deps.connect(opts.server)
			if err != nil {
				return err
			}

			file, err := conn.client.GetFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if deps.StdoutIsTerminal() {
				fmt.Fprintln(deps.Stderr, headerStyle.Render(render.FileIcon(file.Filename)+" "+file.Filename)+
					dimStyle.Render("  "+render.FileSize(file.Size)))
			}

			content := file.Content
			if content != "" && !strings.HasSuffix(content, "\n") {
				content += "\n"
			}
			if _, err := io.WriteString(deps.Stdout, content); err != nil {
				return err
			}

			if copyContent {
				if err := deps.WriteClipboard(file.Content); err != nil {
					fmt.Fprintln(deps.Stderr, warningStyle.Render(fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err)))
				} else {
					fmt.Fprintln(deps.Stderr, successStyle.Render("✓ Copied to clipboard"))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&copyContent, "copy", "c", false, "Copy the content to the clipboard")
	return cmd
}

func newFilesRmCmd(deps *Dependencies, opts *rootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"delete"},
		Short:   "Delete a stored file",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			pending := dashboard.PendingDelete{}.Request(name)

			if !yes && !confirm(deps.Stdin, deps.Stderr, pending.Prompt()) {
				fmt.Fprintln(deps.Stderr, dimStyle.Render("Cancelled"))
				return nil
			}

			conn, err := deps.connect(opts.server)
			if err != nil {
				return err
			}

			result, err := conn.client.DeleteFile(cmd.Context(), name)
			if err != nil {
				conn.logger.Printf("delete %s failed: %v", name, err)
				return err
			}

			message := result.Message
			if message == "" {
				message = fmt.Sprintf("Deleted %s", name)
			}
			fmt.Fprintln(deps.Stdout, successStyle.Render("✓ "+message))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking for confirmation")
	return cmd
}

// confirm asks a y/N question; anything but y or yes declines, including EOF
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, warningStyle.Render(prompt)+" [y/N] ")

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		fmt.Fprintln(out)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
