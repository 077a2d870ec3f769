// Command agentdash is a terminal dashboard for an AI agent server.
package main

import "github.com/diogo/agentdash/internal/commands"

func main() {
	commands.Execute()
}
