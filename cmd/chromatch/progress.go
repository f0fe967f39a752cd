package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/askoryk/chromatch/internal/config"
	"github.com/askoryk/chromatch/internal/game"
	"github.com/askoryk/chromatch/internal/harmony"
	"github.com/askoryk/chromatch/internal/storage"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show lifetime score, unlocked harmonies and discovered colors",
	Long: `Display lifetime progression: the cumulative score earned across timed
sessions, which harmony types that score has unlocked, castle progress for
the current timed best, and how many colors have been discovered.`,
	Args: cobra.NoArgs,
	Run:  runProgress,
}

func runProgress(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	lifetime, err := store.LifetimeScore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving lifetime score: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Lifetime score: %d\n", lifetime)
	fmt.Println()

	// Unlocks
	fmt.Println("Harmony types:")
	unlocked := make(map[harmony.Type]bool)
	for _, h := range harmony.Unlocked(lifetime) {
		unlocked[h.Type] = true
	}
	for _, h := range harmony.Table {
		if unlocked[h.Type] {
			fmt.Printf("  [x] %-22s\n", h.Title)
		} else {
			fmt.Printf("  [ ] %-22s unlocks at %d\n", h.Title, h.UnlockThreshold)
		}
	}
	fmt.Println()

	// Castle progress tracks the best timed session
	cfg := config.Default()
	best, err := store.HighScore(string(game.ModeUnified))
	if err == nil {
		castle := game.CastleProgressFor(best, cfg.Rules.CastleMilestones)
		fmt.Printf("Castle: stage %d/%d (%d%%) at best score %d\n",
			castle.Stage+1, len(cfg.Rules.CastleMilestones), int(castle.Percentage), best)
	}

	colors, err := store.DiscoveredColors()
	if err == nil {
		fmt.Printf("Colors discovered: %d\n", len(colors))
	}
}
