package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/full-fish/RubicksDungeon/internal/games/rubik"
	"github.com/full-fish/RubicksDungeon/internal/games/rubik/core"
	"github.com/full-fish/RubicksDungeon/internal/games/rubik/stages"
)

var (
	flagCheckAll   bool
	flagCheckBoard bool
)

var checkCmd = &cobra.Command{
	Use:   "check <stage> [script]",
	Short: "Replay a command script without the terminal UI",
	Long: `Replay a move script against a stage and report the outcome.
Without a script the stage's stored solution is used. The exit status
is non-zero unless the script reaches the treasure.

Script notation:
  U D L R   walk
  ^ v       rotate your column up or down
  < >       rotate your row left or right
  z         undo
Spaces and commas are ignored.

Examples:
  rubik check 02-crate RDRD
  rubik check slide ">"
  rubik check --all --stages ./my-stages`,
	Args: func(cmd *cobra.Command, args []string) error {
		if flagCheckAll {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.RangeArgs(1, 2)(cmd, args)
	},
	Run: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&flagCheckAll, "all", false, "Replay the stored solution of every stage")
	checkCmd.Flags().BoolVar(&flagCheckBoard, "board", false, "Print the final board")
}

func runCheck(_ *cobra.Command, args []string) {
	opts := mustLoadOptions()

	if flagCheckAll {
		failed := 0
		for _, st := range opts.Stages {
			if err := checkStage(opts, st, st.Solution); err != nil {
				fmt.Printf("FAIL  %-24s %v\n", st.ID, err)
				failed++
				continue
			}
			fmt.Printf("ok    %s\n", st.ID)
		}
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	idx, err := stageIndex(opts.Stages, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	st := opts.Stages[idx]
	script := st.Solution
	if len(args) == 2 {
		script = args[1]
	}

	if err := checkStage(opts, st, script); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", st.ID, err)
		os.Exit(1)
	}
	fmt.Printf("%s: cleared\n", st.ID)
}

// checkStage replays script on a fresh session of st.
func checkStage(opts rubik.Options, st stages.Stage, script string) error {
	if strings.TrimSpace(script) == "" {
		return errors.New("no script and no stored solution")
	}
	cmds, err := core.ParseScript(script)
	if err != nil {
		return err
	}
	catalog, err := opts.Config.Catalog()
	if err != nil {
		return err
	}
	session, err := st.NewSession(catalog, opts.SessionConfig(st, flagSeed))
	if err != nil {
		return err
	}

	res, err := session.Replay(cmds)
	if err != nil {
		return err
	}
	logger.Debug("replay finished", "stage", st.ID,
		"applied", res.Applied, "rejected", res.Rejected, "status", res.Status,
		"history", core.FormatScript(session.History()))

	if flagCheckBoard {
		fmt.Println(boardString(session))
	}

	fmt.Printf("  applied %d, rejected %d, moves %d, shifts %d/%d\n",
		res.Applied, res.Rejected, session.Moves(), session.ShiftsUsed(), session.MaxShifts())
	if res.Status != core.StatusCleared {
		return fmt.Errorf("%w (status %s)", core.ErrScriptIncomplete, res.Status)
	}
	return nil
}

// boardString draws the grid with tile glyphs, topmost layer first.
func boardString(s *core.Session) string {
	g := s.Grid()
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			b.WriteRune(glyphAt(s, x, y))
		}
		if y < g.Height()-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func glyphAt(s *core.Session, x, y int) rune {
	if s.Grid().Player() == core.C(x, y) {
		return '@'
	}
	for _, l := range []core.Layer{core.LayerObject, core.LayerSky, core.LayerFloor} {
		id := s.Grid().LayerID(x, y, l)
		if id == 0 {
			continue
		}
		if def, ok := s.Catalog().Lookup(id); ok {
			return def.Glyph
		}
		return '?'
	}
	return ' '
}
