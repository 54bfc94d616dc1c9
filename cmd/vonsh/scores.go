package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vonsh/internal/games/vonsh"
	"github.com/vovakirdan/vonsh/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the hall of fame",
	Long: `Display the top 10 scores.

Examples:
  vonsh scores
  vonsh scores --clear
  vonsh scores --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Remove all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("Hall of fame cleared.")
		return nil
	}

	entries, err := store.Scores()
	if err != nil {
		return err
	}

	fmt.Println("Hall of fame")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'vonsh play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-15s  %6s  %-10s  %s\n", "Rank", "Player", "Score", "Date", "Board")
	fmt.Printf("  %-4s  %-15s  %6s  %-10s  %s\n", "----", "------", "-----", "----", "-----")
	for i, row := range vonsh.ScoreRows(entries) {
		fmt.Printf("  %-4d  %-15s  %6s  %-10s  %s\n", i+1, row[0], row[1], row[2], row[3])
	}

	best, err := store.HighScore()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d\n", best)
	return nil
}
