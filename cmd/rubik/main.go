// rubik is a terminal dungeon puzzle where rows and columns of the map
// rotate around the player.
//
// Usage:
//
//	rubik list                    - List stages
//	rubik play [stage]            - Play from a stage (id, name or number)
//	rubik menu                    - Pick stages interactively
//	rubik serve                   - Start SSH server for remote play
//	rubik scores [stage]          - Show scores and best clears
//	rubik check <stage> [script]  - Replay a command script headless
//	rubik tiles                   - Print the tile catalog
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for tile variants
//	--db <path>           - Set database path (default: ~/.rubik/scores.db)
//	--config <path>       - Custom rules/tiles YAML
//	--stages <dir>        - Load stages from a directory
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagStagesDir  string
	flagDifficulty string
	flagVerbose    bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "rubik",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rubik",
	Short: "Rubik's Dungeon - a rotating dungeon puzzle for your terminal",
	Long: `Rubik's Dungeon is a turn-based puzzle. Walk to the treasure chest,
push crates out of the way and rotate whole rows and columns of the
dungeon around you. Shifts are limited per stage.

Available commands:
  list     - Show all stages
  play     - Play from a specific stage
  menu     - Interactive stage picker
  serve    - Start SSH server for remote play
  scores   - View scores and best clears
  check    - Replay a move script without a terminal UI
  tiles    - Show the tile catalog

Examples:
  rubik list
  rubik play crate
  rubik play 3 --difficulty easy
  rubik check 02-crate RDRD
  rubik serve --ssh :2222`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed for tile variants (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.rubik/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom rules and tiles YAML")
	pf.StringVar(&flagStagesDir, "stages", "", "Directory of stage files (default: built-in stages)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tilesCmd)
}
