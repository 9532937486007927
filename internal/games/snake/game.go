// Package snake implements the single-player snake game: a segmented snake
// moves on a fixed board, eats food to grow and score, and the round ends
// when it hits a wall or itself.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// State is the phase of the game state machine.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Reason tells why a round ended.
type Reason string

const (
	ReasonNone      Reason = ""
	ReasonWall      Reason = "hit the wall"
	ReasonSelf      Reason = "ran into itself"
	ReasonBoardFull Reason = "board full"
)

// Options fixes the board and growth rule for the lifetime of a Game.
type Options struct {
	Board  Board
	Growth GrowthPolicy
}

// DefaultOptions returns the classic 23x20 board.
func DefaultOptions() Options {
	return Options{
		Board:  NewBoard(23, 20),
		Growth: GrowBackward,
	}
}

// OptionsFromConfig builds Options from a validated config.
func OptionsFromConfig(cfg config.SnakeConfig) (Options, error) {
	growth, err := ParseGrowthPolicy(cfg.Growth)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Board:  NewBoard(cfg.Board.Width, cfg.Board.Height),
		Growth: growth,
	}, nil
}

// Game owns the whole game state. It is driven by one goroutine.
type Game struct {
	opts  Options
	board Board
	rng   *rand.Rand
	store HighScoreStore

	tick      uint64
	snake     *Snake
	food      *Food
	score     int
	highScore int
	state     State
	reason    Reason

	pending    Direction // last direction requested since the previous tick
	hasPending bool

	storeErr error
}

// New creates a game. A nil store keeps the high score in memory only.
// Reset must be called before the first tick.
func New(opts Options, store HighScoreStore) *Game {
	if store == nil {
		store = NewMemoryStore(0)
	}
	return &Game{
		opts:  opts,
		board: opts.Board,
		store: store,
	}
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset seeds the random source, reloads the high score and starts a
// fresh round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.storeErr = nil

	high, err := g.store.LoadHighScore()
	if err != nil {
		g.storeErr = err
		high = 0
	}
	g.highScore = max(high, 0)

	g.newRound()
}

// newRound builds a centered one-cell snake with a random heading and
// places the first food.
func (g *Game) newRound() {
	dir := Directions[g.rng.Intn(len(Directions))]
	g.snake = NewSnake(g.board.Center(), dir)
	g.score = 0
	g.state = StatePlaying
	g.reason = ReasonNone
	g.hasPending = false

	food, err := NewFood(g.rng, g.board, g.snake.Body())
	if err != nil {
		g.food = &Food{cell: Cell{X: -1, Y: -1}}
		g.end(ReasonBoardFull)
		return
	}
	g.food = food
}

// QueueDirection records a direction request for the next tick.
// Later requests overwrite earlier ones. Requests during GameOver are
// ignored and reported as false.
func (g *Game) QueueDirection(d Direction) bool {
	if g.state != StatePlaying {
		return false
	}
	g.pending = d
	g.hasPending = true
	return true
}

// Restart starts a new round from GameOver. It is a no-op while playing.
func (g *Game) Restart() bool {
	if g.state != StateGameOver {
		return false
	}
	g.newRound()
	return true
}

// Tick runs one update and returns the resulting state.
//
// Order: apply the queued direction, then grow if the next head would land
// on the food, otherwise advance, then check wall and self collision.
func (g *Game) Tick() State {
	if g.state != StatePlaying {
		return g.state
	}
	g.tick++

	if g.hasPending {
		g.snake.SetDirection(g.pending)
		g.hasPending = false
	}

	if g.snake.NextHead() == g.food.Cell() {
		g.snake.Grow(g.opts.Growth)
		g.score++
		if err := g.food.Relocate(g.rng, g.board, g.snake.Body()); err != nil {
			g.end(ReasonBoardFull)
			return g.state
		}
	} else {
		g.snake.Advance()
	}

	switch {
	case !g.board.InBounds(g.snake.Head()):
		g.end(ReasonWall)
	case g.snake.HasSelfCollision():
		g.end(ReasonSelf)
	}

	return g.state
}

// end moves the game to GameOver and records a new high score.
func (g *Game) end(reason Reason) {
	g.state = StateGameOver
	g.reason = reason
	g.UpdateHighScore(g.score)
}

// UpdateHighScore saves score when it beats the known high score, then
// reloads the persisted value. It returns max(previous, score); store
// failures are kept in StoreErr.
func (g *Game) UpdateHighScore(score int) int {
	if score <= g.highScore {
		return g.highScore
	}

	if err := g.store.SaveHighScore(score); err != nil {
		g.storeErr = err
		g.highScore = score
		return g.highScore
	}

	persisted, err := g.store.LoadHighScore()
	if err != nil {
		g.storeErr = err
		persisted = score
	}
	g.highScore = max(persisted, score)
	return g.highScore
}

// Step drains one input frame and runs a tick.
// Direction actions feed QueueDirection in arrival order; restart applies
// only in GameOver and replaces the tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	restart := false
	for _, a := range in.Actions {
		if d, ok := DirectionFromAction(a); ok {
			g.QueueDirection(d)
			continue
		}
		if a == core.ActionRestart {
			restart = true
		}
	}

	if restart && g.Restart() {
		return core.StepResult{State: g.State()}
	}

	g.Tick()
	return core.StepResult{State: g.State()}
}

// State returns the summary reported to the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		GameOver:  g.state == StateGameOver,
	}
}

// Status returns the current state machine phase.
func (g *Game) Status() State { return g.state }

// Reason returns why the last round ended.
func (g *Game) Reason() Reason { return g.reason }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// HighScore returns the best score known to the game.
func (g *Game) HighScore() int { return g.highScore }

// Board returns the playing field.
func (g *Game) Board() Board { return g.board }

// Snake returns the live snake.
func (g *Game) Snake() *Snake { return g.snake }

// FoodCell returns the food position.
func (g *Game) FoodCell() Cell { return g.food.Cell() }

// Ticks returns the number of updates run since Reset.
func (g *Game) Ticks() uint64 { return g.tick }

// StoreErr returns the last high score persistence error, if any.
func (g *Game) StoreErr() error { return g.storeErr }

// ClearStoreErr forgets the last persistence error once it is reported.
func (g *Game) ClearStoreErr() { g.storeErr = nil }
