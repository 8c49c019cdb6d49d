package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/full-fish/RubicksDungeon/internal/games/rubik"
	"github.com/full-fish/RubicksDungeon/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [stage]",
	Short: "Show run scores, or the best clears of a stage",
	Long: `Without a stage, shows the top run scores and a per-stage summary.
With a stage, lists its best clears (fewest moves, then fewest shifts).

Examples:
  rubik scores
  rubik scores crate`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	opts := mustLoadOptions()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		idx, err := stageIndex(opts.Stages, args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := printStageClears(store, opts, idx); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving clears: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printRunScores(store, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printRunScores(store *storage.Store, opts rubik.Options) error {
	scores, err := store.TopScores(rubik.GameID, 10)
	if err != nil {
		return err
	}
	stats, err := store.AllStageStats()
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Rubik's Dungeon")
	fmt.Println()
	if len(scores) == 0 {
		fmt.Println("  No finished runs yet.")
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	fmt.Println()
	fmt.Println("Stages")
	fmt.Println()
	fmt.Printf("  %-24s  %-6s  %-10s  %s\n", "Stage", "Clears", "Best moves", "Fewest shifts")
	fmt.Printf("  %-24s  %-6s  %-10s  %s\n", "-----", "------", "----------", "-------------")
	for _, st := range opts.Stages {
		s, ok := stats[st.ID]
		if !ok {
			fmt.Printf("  %-24s  %-6d  %-10s  %s\n", st.ID, 0, "-", "-")
			continue
		}
		fmt.Printf("  %-24s  %-6d  %-10d  %d\n", st.ID, s.Clears, s.BestMoves, s.BestShifts)
	}
	return nil
}

func printStageClears(store *storage.Store, opts rubik.Options, idx int) error {
	st := opts.Stages[idx]
	clears, err := store.ClearsForStage(st.ID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Best Clears - %s (%s)\n", st.Title(), st.ID)
	fmt.Println()
	if len(clears) == 0 {
		fmt.Println("No clears recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'rubik play %s' to set the first record!\n", st.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %s\n", "Rank", "Moves", "Shifts", "Undos", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %s\n", "----", "-----", "------", "-----", "----")
	for i, c := range clears {
		fmt.Printf("  %-4d  %-6d  %-6d  %-6d  %s\n", i+1, c.Moves, c.ShiftsUsed, c.Undos, c.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
