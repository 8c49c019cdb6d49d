package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stages",
	Long:  `Shows every stage in play order with its size and shift allowance.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	opts := mustLoadOptions()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	maxIDLen := 2 // "ID" header
	for _, st := range opts.Stages {
		if len(st.ID) > maxIDLen {
			maxIDLen = len(st.ID)
		}
	}

	fmt.Println("Stages:")
	fmt.Println()
	fmt.Printf("  %3s  %-*s  %-24s  %-5s  %-6s  %s\n", "#", maxIDLen, "ID", "Name", "Size", "Shifts", "Best")
	fmt.Printf("  %3s  %-*s  %-24s  %-5s  %-6s  %s\n", "-", maxIDLen, "--", "----", "----", "------", "----")

	for i, st := range opts.Stages {
		shifts := opts.SessionConfig(st, 0).MaxShifts
		best := "-"
		if store != nil {
			if c, err := store.BestClear(st.ID); err == nil && c != nil {
				best = fmt.Sprintf("%d moves", c.Moves)
			}
		}
		size := fmt.Sprintf("%dx%d", st.Width, st.Height)
		fmt.Printf("  %3d  %-*s  %-24s  %-5s  %-6d  %s\n", i+1, maxIDLen, st.ID, st.Title(), size, shifts, best)
	}

	fmt.Println()
	fmt.Println("Run 'rubik play <id>' to start from a stage.")
}
