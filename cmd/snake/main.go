// snake is a terminal snake game.
//
// Usage:
//
//	snake                    - Play (same as "snake play")
//	snake play               - Play a game
//	snake scores             - Show the best recorded games
//	snake scores --clear     - Delete the score history and high score
//	snake scoreboard         - Browse the score history interactively
//
// Global flags:
//
//	--config <path>          - Custom YAML config
//	--seed <value>           - Set RNG seed for reproducible gameplay
//	--db <path>              - Set database path (default: ~/.snake/scores.db)
//	--highscore-file <path>  - Keep the high score in a plain text file instead
//	--log-file <path>        - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig        string
	flagSeed          int64
	flagDBPath        string
	flagHighScoreFile string
	flagLogFile       string
	flagDebug         bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Steer the snake to the food, grow longer and avoid the walls and
your own tail.

Controls:
  Arrows/WASD/HJKL  - Steer
  R                 - Restart (after game over)
  Q/Esc/Ctrl+C      - Quit

Examples:
  snake
  snake --seed 42
  snake --config ./my-snake.yaml
  snake scores
  snake scoreboard`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagHighScoreFile, "highscore-file", "", "Keep the high score in this text file")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(scoreboardCmd)
}
