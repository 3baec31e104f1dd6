// nilemile is a terminal downhill skiing game: race a mile of winding slope,
// dodge the forest, and stay ahead of the yeti.
//
// Usage:
//
//	nilemile play            - Ski a run
//	nilemile times           - Show the leaderboard
//	nilemile serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.nilemile/runs.db)
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
	Use:   "nilemile",
	Short: "Nile Mile - downhill skiing in your terminal",
	Long: `Nile Mile is a terminal skiing game. Steer down a mile of winding
slope, dodge trees, rocks and stumps, and outrun the yeti to the finish line.

Available commands:
  play     - Ski a run
  times    - View the leaderboard
  serve    - Start SSH server for remote play

Examples:
  nilemile play
  nilemile play --difficulty hard
  nilemile times
  nilemile serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.nilemile/runs.db", "Path to leaderboard database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(timesCmd)
	rootCmd.AddCommand(serveCmd)
}
