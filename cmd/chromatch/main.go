// chromatch is a terminal color-harmony arcade game.
//
// Usage:
//
//	chromatch play             - Play (unified timed mode)
//	chromatch play --mode zen  - Untimed practice mode
//	chromatch scores <mode>    - Show high scores for a mode
//	chromatch progress         - Show lifetime score, unlocks and colors
//	chromatch serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible rounds
//	--db <path>     - Set database path (default: ~/.chromatch/scores.db)
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
	Use:   "chromatch",
	Short: "Chromatch - color harmony arcade in your terminal",
	Long: `Chromatch is a terminal game about color theory: complete complementary
pairs, triadic wheels, analogous runs and more before the clock runs out.
Higher lifetime scores unlock trickier harmony types.

Available commands:
  play      - Start a session (timed by default, --mode zen for untimed)
  scores    - View high scores
  progress  - View lifetime score, unlocked harmonies and discovered colors
  serve     - Start SSH server for remote play

Examples:
  chromatch play
  chromatch play --mode zen
  chromatch play --difficulty hard
  chromatch scores unified
  chromatch serve --ssh :23235`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.chromatch/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(serveCmd)
}
