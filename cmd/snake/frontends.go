package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-snake/internal/registry"
)

var frontendsCmd = &cobra.Command{
	Use:   "frontends",
	Short: "List available frontends",
	Long:  `Shows the terminal frontends the game can be played on.`,
	Args:  cobra.NoArgs,
	Run:   runFrontends,
}

func runFrontends(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	frontends := registry.List()

	if len(frontends) == 0 {
		fmt.Fprintln(out, "No frontends available.")
		return
	}

	fmt.Fprintln(out, "Available frontends:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, f := range frontends {
		if len(f.Name) > maxNameLen {
			maxNameLen = len(f.Name)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, f := range frontends {
		fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, f.Name, f.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'snake --frontend <name>' to play on one.")
}
