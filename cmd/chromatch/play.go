package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/askoryk/chromatch/internal/config"
	"github.com/askoryk/chromatch/internal/game"
	"github.com/askoryk/chromatch/internal/platform/tui"
	"github.com/askoryk/chromatch/internal/storage"
)

var (
	flagMode       string
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Chromatch",
	Long: `Start a Chromatch session.

Controls:
  1-4        - Pick a swatch
  R          - Restart (after game over)
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Modes:
  unified - Timed rounds, three wrong answers end the game (default)
  zen     - Untimed, never ends; still rotates harmony types

Difficulty options:
  easy   - Longer countdowns, looser distractors
  normal - Default curves
  hard   - Shorter countdowns, tighter distractors
  fixed  - No per-level progression

Examples:
  chromatch play
  chromatch play --mode zen
  chromatch play --difficulty hard
  chromatch play --config ./my-chromatch.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", string(game.ModeUnified), "Play mode: unified, zen")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	mode := game.Mode(flagMode)
	if mode != game.ModeUnified && mode != game.ModeZen {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q (want unified or zen)\n", flagMode)
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, config.Preset(flagDifficulty))
	}

	// Get terminal size early for the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open score storage
	var persist game.Persistence
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the game still works
	} else {
		persist = store
		defer store.Close()
	}

	runErr := tui.Run(persist, tui.Options{
		Mode:     mode,
		Config:   cfg,
		Seed:     flagSeed,
		TickRate: flagFPS,
		Width:    width,
		Height:   height,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
