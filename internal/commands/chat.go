package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diogo/agentdash/internal/render"
)

func newChatCmd(deps *Dependencies, opts *rootOptions) *cobra.Command {
	var raw, copyReply bool

	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Send one message to the agent and print the reply",
		Long: `Send a single message to the agent and print its reply.

The message is taken from the argument, or from stdin when it is piped.
On a terminal the reply is rendered as markdown; --raw prints the plain text.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := deps.readMessage(args)
			if err != nil {
				return err
			}
			return runChat(cmd, deps, opts, message, raw, copyReply)
		},
	}

	cmd.Flags().BoolVarP(&raw, "raw", "r", false, "Print the reply without decoration")
	cmd.Flags().BoolVarP(&copyReply, "copy", "c", false, "Copy the reply to the clipboard")
	return cmd
}

// readMessage takes the message from args, falling back to piped stdin
func (d *Dependencies) readMessage(args []string) (string, error) {
	var message string
	switch {
	case len(args) > 0:
		message = args[0]
	case !d.StdinIsTerminal():
		data, err := io.ReadAll(d.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		message = string(data)
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return "", errors.New("message cannot be empty")
	}
	return message, nil
}

func runChat(cmd *cobra.Command, deps *Dependencies, opts *rootOptions, message string, raw, copyReply bool) error {
	conn, err := deps.connect(opts.server)
	if err != nil {
		return err
	}

	decorated := !raw && deps.StdoutIsTerminal()

	var spin *spinner
	if decorated {
		spin = newSpinner(deps.Stderr, "Agent is typing")
		spin.start()
	}

	reply, err := conn.client.Chat(cmd.Context(), message)
	if err != nil {
		if spin != nil {
			spin.stopWithError()
		}
		conn.logger.Printf("chat failed: %v", err)
		return err
	}
	if spin != nil {
		spin.stopWithSuccess("Done")
	}

	copyReply = copyReply || conn.cfg.CopyToClipboard
	if copyReply {
		if err := deps.WriteClipboard(reply.Response); err != nil {
			fmt.Fprintln(deps.Stderr, warningStyle.Render(fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err)))
		} else {
			fmt.Fprintln(deps.Stderr, successStyle.Render("✓ Copied to clipboard"))
		}
	}

	if !decorated {
		text := reply.Response
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		_, err := io.WriteString(deps.Stdout, text)
		return err
	}

	width := bubbleWidth(deps.TerminalWidth())
	rendered, err := render.MarkdownWithWidth(reply.Response, width-4)
	if err != nil {
		rendered = reply.Response
	}
	rendered = strings.TrimRight(rendered, "\n")

	fmt.Fprintln(deps.Stdout, agentLabelStyle.Render("🤖 Agent"))
	fmt.Fprintln(deps.Stdout, agentBubbleStyle.Width(width).Render(rendered))
	return nil
}
