package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-drift/internal/registry"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List all seed patterns",
	Long:  `Shows the seed patterns that can populate a fresh grid.`,
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		listPatterns(os.Stdout)
	},
}

func listPatterns(w io.Writer) {
	patterns := registry.List()

	if len(patterns) == 0 {
		fmt.Fprintln(w, "No patterns available.")
		return
	}

	fmt.Fprintln(w, "Available patterns:")
	fmt.Fprintln(w)

	maxIDLen := 2 // "ID" header
	for _, p := range patterns {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "--", "-----------")
	for _, p := range patterns {
		fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, p.ID, p.Title)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'drift play --pattern <id>' to start with a pattern.")
}
