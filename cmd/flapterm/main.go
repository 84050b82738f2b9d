// flapterm is a Flappy Bird clone for the terminal.
//
// Usage:
//
//	flapterm                 - Play (same as 'flapterm play')
//	flapterm play            - Play the game
//	flapterm scores          - Show high scores
//	flapterm serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.flapterm/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flapterm",
	Short: "Flappy Bird in your terminal",
	Long: `flapterm is a terminal Flappy Bird: flap through the pipe gaps,
don't touch anything, beat your best score.

Running flapterm with no arguments starts a game.

Examples:
  flapterm
  flapterm play --config ./my-tuning.yaml
  flapterm scores
  flapterm serve --ssh :2222`,
	RunE: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flapterm/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
