package snake

// Snapshot captures the game state for determinism tests and debugging.
type Snapshot struct {
	Tick      uint64
	Score     int
	HighScore int
	SnakeLen  int
	Head      Cell
	Dir       Direction
	Food      Cell
	State     State
	Reason    Reason
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		HighScore: g.highScore,
		SnakeLen:  g.snake.Len(),
		Head:      g.snake.Head(),
		Dir:       g.snake.Direction(),
		Food:      g.food.Cell(),
		State:     g.state,
		Reason:    g.reason,
	}
}
