package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/full-fish/RubicksDungeon/internal/config"
	"github.com/full-fish/RubicksDungeon/internal/games/rubik/core"
)

var tilesCmd = &cobra.Command{
	Use:   "tiles",
	Short: "Print the tile catalog",
	Long: `Shows every tile id with its glyph and rule flags, as loaded from
the active config (see --config).`,
	Args: cobra.NoArgs,
	Run:  runTiles,
}

func runTiles(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadRubik(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("  %-4s  %-5s  %-10s  %s\n", "ID", "Glyph", "Name", "Flags")
	fmt.Printf("  %-4s  %-5s  %-10s  %s\n", "--", "-----", "----", "-----")
	for _, def := range catalog.All() {
		fmt.Printf("  %-4d  %-5c  %-10s  %s\n", def.ID, def.Glyph, def.Name, tileFlags(def))
	}
	fmt.Println()
	fmt.Println("Ground id 0 marks the player start; -1 leaves a cell empty.")
}

func tileFlags(def core.TileDefinition) string {
	var flags []string
	for _, f := range []struct {
		on   bool
		name string
	}{
		{def.Stop, "stop"},
		{def.Push, "push"},
		{def.Shift, "shift"},
		{def.Dead, "dead"},
		{def.Goal, "goal"},
		{def.Fire, "fire"},
		{def.Ice, "ice"},
	} {
		if f.on {
			flags = append(flags, f.name)
		}
	}
	if !def.Shift {
		flags = append(flags, "anchor")
	}
	return strings.Join(flags, " ")
}
