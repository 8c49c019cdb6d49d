package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/full-fish/RubicksDungeon/internal/games/rubik"
	"github.com/full-fish/RubicksDungeon/internal/platform/tui"
	"github.com/full-fish/RubicksDungeon/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [stage]",
	Short: "Play from a stage",
	Long: `Start playing from the given stage, or from the first one.
The stage may be an id, the name part of an id, or its number.

Controls:
  Arrows/hjkl  - Walk
  W/A/S/D      - Rotate your column up/down or your row left/right
  U/Z          - Undo
  R            - Restart the stage
  N/Enter      - Next stage after a clear
  Esc          - Leave
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 50% more shifts per stage
  normal - The stage's own shift allowance
  hard   - A quarter fewer shifts
  fixed  - Same as normal

Examples:
  rubik play
  rubik play crate
  rubik play 4 --difficulty hard
  rubik play --stages ./my-stages`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	opts := mustLoadOptions()

	if len(args) == 1 {
		idx, err := stageIndex(opts.Stages, args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'rubik list' to see available stages.")
			os.Exit(1)
		}
		opts.StartStage = idx
	}
	rubik.Configure(opts)

	game, err := registry.Create(rubik.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	_, runErr := tui.Run(game, store, runtimeConfig(), logger)
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
