package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dmalakhov/flapterm/internal/config"
	"github.com/dmalakhov/flapterm/internal/core"
	"github.com/dmalakhov/flapterm/internal/flappy"
	"github.com/dmalakhov/flapterm/internal/platform/tui"
	"github.com/dmalakhov/flapterm/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game session.

Controls:
  Space/Up/W  - Flap (also starts and restarts)
  Mouse click - Flap
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Examples:
  flapterm play
  flapterm play --config ./my-tuning.yaml
  flapterm play --seed 42`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", flagFPS)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rcfg := core.DefaultConfig()
	rcfg.TickRate = flagFPS
	rcfg.Seed = seed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rcfg.ScreenW = w
		rcfg.ScreenH = h
	}

	game := flappy.NewSeeded(cfg, seed)

	// Open score storage
	store, storeErr := storage.Open(flagDBPath)
	if storeErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", storeErr)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, rcfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
