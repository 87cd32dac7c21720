package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/railgrid/railgrid/internal/scenario"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available scenarios",
	Long:  `Shows a list of all registered starting layouts.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	scenarios := scenario.List()

	if len(scenarios) == 0 {
		fmt.Println("No scenarios available.")
		return
	}

	fmt.Println("Available scenarios:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, s := range scenarios {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Title")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----")

	// Print scenarios
	for _, s := range scenarios {
		fmt.Printf("  %-*s  %s\n", maxNameLen, s.Name, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'railgrid play <name>' to start one.")
}
