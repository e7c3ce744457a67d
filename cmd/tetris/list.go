package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game variants",
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	width := len("ID")
	for _, g := range games {
		width = max(width, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", width, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", width, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", width, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'tetris play <id>' to play a variant.")
}
