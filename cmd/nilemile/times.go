package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nilemile/nilemile/internal/config"
	"github.com/nilemile/nilemile/internal/storage"
)

var flagTimesLimit int

var timesCmd = &cobra.Command{
	Use:   "times [difficulty]",
	Short: "Show the leaderboard",
	Long: `Display the fastest recorded runs, one board per difficulty.

Examples:
  nilemile times
  nilemile times hard
  nilemile times easy --limit 25`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTimes,
}

func init() {
	timesCmd.Flags().IntVar(&flagTimesLimit, "limit", 10, "Number of entries to show")
}

func runTimes(cmd *cobra.Command, args []string) {
	difficulties := []config.Difficulty{config.DifficultyEasy, config.DifficultyHard}
	if len(args) == 1 {
		d, err := config.ParseDifficulty(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		difficulties = []config.Difficulty{d}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening leaderboard database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	for _, d := range difficulties {
		entries, err := store.TopTimes(d, flagTimesLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving times: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Nile Mile - fastest runs [%s]\n", d)
		fmt.Println()

		if len(entries) == 0 {
			fmt.Println("No runs recorded yet.")
			fmt.Printf("Play 'nilemile play --difficulty %s' to set the first time!\n", d)
			fmt.Println()
			continue
		}

		fmt.Printf("  %-4s  %-24s  %-10s  %s\n", "Rank", "Name", "Time", "Date")
		fmt.Printf("  %-4s  %-24s  %-10s  %s\n", "----", "----", "----", "----")

		for i, entry := range entries {
			fmt.Printf("  %-4d  %-24s  %-10s  %s\n",
				i+1, entry.Name, formatTime(entry.Elapsed), entry.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Println()
	}
}

func formatTime(d time.Duration) string {
	total := d.Seconds()
	return fmt.Sprintf("%d:%05.2f", int(total)/60, total-float64(int(total)/60*60))
}
