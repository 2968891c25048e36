package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridworm/gridworm/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available variants",
	Long:  `Shows a list of all registered simulation variants.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, v := range variants {
		fmt.Printf("  %-*s  %s\n", maxIDLen, v.ID, v.Title)
	}

	fmt.Println()
	fmt.Println("Run 'gridworm play <id>' to start a simulation.")
}
