package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// defaultHighScoreFile is used when the database cannot be opened.
const defaultHighScoreFile = "~/.snake/highscore.txt"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing snake.

Controls:
  Arrows/WASD/HJKL  - Steer
  R                 - Restart (after game over)
  Q/Esc/Ctrl+C      - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-snake.yaml
  snake play --highscore-file ~/snake-best.txt`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}
	opts, err := snake.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}

	// Score history is optional; the game still works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	highScores, err := highScoreStore(store, logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rtCfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.TickRate,
		Seed:     seed,
	}

	logger.Info("session started",
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"tick_rate", cfg.TickRate,
		"growth", cfg.Growth,
		"seed", seed,
	)

	game := snake.New(opts, highScores)

	var history tui.ScoreRecorder
	if store != nil {
		history = store
	}
	if err := tui.Run(game, history, logger, rtCfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	logger.Info("session ended", "high_score", game.HighScore())
	return nil
}

// highScoreStore picks where the high score lives: the --highscore-file
// text file, the database, or the default text file when there is no
// database.
func highScoreStore(store *storage.Store, logger *log.Logger) (snake.HighScoreStore, error) {
	switch {
	case flagHighScoreFile != "":
		return storage.OpenFile(flagHighScoreFile)
	case store != nil:
		return store.HighScores(gameID), nil
	default:
		fs, err := storage.OpenFile(defaultHighScoreFile)
		if err != nil {
			return nil, err
		}
		logger.Info("keeping high score in file", "path", fs.Path())
		return fs, nil
	}
}
