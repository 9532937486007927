package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const (
	gameID    = "snake"
	gameTitle = "Snake"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 recorded games and overall statistics.

Examples:
  snake scores
  snake scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var scoreboardCmd = &cobra.Command{
	Use:   "scoreboard",
	Short: "Browse the score history",
	Args:  cobra.NoArgs,
	RunE:  runScoreboard,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores and the high score")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		if flagHighScoreFile != "" {
			fs, err := storage.OpenFile(flagHighScoreFile)
			if err != nil {
				return err
			}
			if err := fs.SaveHighScore(0); err != nil {
				return err
			}
		}
		fmt.Fprintln(out, "Scores cleared.")
		return nil
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n", gameTitle)
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'snake' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	stats, err := store.GameStats(gameID)
	if err != nil {
		return err
	}
	high, err := store.HighScores(gameID).LoadHighScore()
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "High score: %d\n", max(high, stats.HighScore))
	fmt.Fprintf(out, "Games played: %d, average score: %.1f\n", stats.GamesCount, stats.AvgScore)
	return nil
}

func runScoreboard(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	return tui.RunScoreboard(store, gameID, gameTitle, width, height)
}
