package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nilemile/nilemile/internal/config"
	"github.com/nilemile/nilemile/internal/core"
	"github.com/nilemile/nilemile/internal/platform/tui"
	"github.com/nilemile/nilemile/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagName       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Ski a run",
	Long: `Start a run down the Nile Mile.

Controls:
  Left/Right or A/D  - Steer
  Enter              - Start from the menu
  R                  - Ski again (after a run ends)
  Esc                - Back to menu
  Q/Ctrl+C           - Quit

Difficulty options:
  easy  - Lower top speed, fewer hazards, a lazier yeti
  hard  - Full speed, hazard lanes, the yeti hunts from the start

Examples:
  nilemile play
  nilemile play --difficulty hard
  nilemile play --name grace
  nilemile play --config ./my-slope.yaml --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom slope config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, hard")
	playCmd.Flags().StringVar(&flagName, "name", "", "Leaderboard name (defaults to asking after a run)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	var difficulty config.Difficulty
	if flagDifficulty != "" {
		difficulty, err = config.ParseDifficulty(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open leaderboard storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open leaderboard database: %v\n", err)
		// Continue without storage - the run still works
		store = nil
	}

	runErr := tui.Run(cfg, rt, store, flagName, difficulty)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
