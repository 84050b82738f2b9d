package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmalakhov/flapterm/internal/platform/tui"
	"github.com/dmalakhov/flapterm/internal/storage"
)

var (
	flagScoresPlain bool
	flagScoresClear bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Browse past scores and the all-time best.

By default opens an interactive table; use --plain for plain output.

Examples:
  flapterm scores
  flapterm scores --plain --limit 5
  flapterm scores --clear`,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print scores without the interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "How many scores to show with --plain")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(storage.GameID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	if !flagScoresPlain {
		return tui.RunScoreboard(store)
	}

	scores, err := store.TopScores(storage.GameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Flappy Bird")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'flapterm' to set the first one!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.BestScore(storage.GameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}
