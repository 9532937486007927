package snake

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestGame(t *testing.T, seed int64, store HighScoreStore) *Game {
	t.Helper()
	g := New(DefaultOptions(), store)
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 10})
	return g
}

// place puts the snake and food at known cells.
func place(g *Game, body []Cell, dir Direction, food Cell) {
	g.snake = &Snake{body: body, direction: dir}
	g.food = &Food{cell: food}
}

type failingStore struct{ loadErr, saveErr error }

func (f failingStore) LoadHighScore() (int, error) { return 0, f.loadErr }
func (f failingStore) SaveHighScore(int) error     { return f.saveErr }

func TestNewRoundStartsCentered(t *testing.T) {
	g := newTestGame(t, 42, nil)

	if g.Status() != StatePlaying {
		t.Fatalf("Status() = %v, expected playing", g.Status())
	}
	if g.Snake().Len() != 1 || g.Snake().Head() != (Cell{X: 11, Y: 10}) {
		t.Errorf("snake should start as [(11,10)], got %v", g.Snake().Body())
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", g.Score())
	}
	if g.Snake().Contains(g.FoodCell()) {
		t.Error("initial food placed on the snake")
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345, nil)
	g2 := newTestGame(t, 12345, nil)

	script := map[int]core.Action{
		3:  core.ActionLeft,
		7:  core.ActionDown,
		12: core.ActionRight,
		20: core.ActionUp,
		40: core.ActionRestart,
	}

	input := core.NewInputFrame()
	for i := 0; i < 100; i++ {
		input.Clear()
		if a, ok := script[i]; ok {
			input.Set(a)
		}
		g1.Step(input)
		g2.Step(input)

		if g1.Snapshot() != g2.Snapshot() {
			t.Fatalf("tick %d: snapshots diverged:\n%+v\n%+v", i, g1.Snapshot(), g2.Snapshot())
		}
	}
}

func TestTickAdvancesWithoutFood(t *testing.T) {
	g := newTestGame(t, 1, nil)
	place(g, []Cell{{X: 11, Y: 10}}, DirRight, Cell{X: 0, Y: 0})

	for range 3 {
		if g.Tick() != StatePlaying {
			t.Fatal("game ended unexpectedly")
		}
	}

	if g.Snake().Head() != (Cell{X: 14, Y: 10}) || g.Snake().Len() != 1 {
		t.Errorf("expected [(14,10)], got %v", g.Snake().Body())
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", g.Score())
	}
}

func TestWallCollisionEndsGame(t *testing.T) {
	g := newTestGame(t, 2, nil)
	place(g, []Cell{{X: 0, Y: 10}}, DirLeft, Cell{X: 20, Y: 1})

	state := g.Tick()

	if state != StateGameOver {
		t.Fatalf("Tick() = %v, expected game_over", state)
	}
	if g.Snake().Head() != (Cell{X: -1, Y: 10}) {
		t.Errorf("Head() = %v, expected (-1,10)", g.Snake().Head())
	}
	if g.Reason() != ReasonWall {
		t.Errorf("Reason() = %q, expected %q", g.Reason(), ReasonWall)
	}
	if !g.State().GameOver {
		t.Error("State().GameOver should be true")
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g := newTestGame(t, 3, nil)
	place(g, []Cell{
		{X: 5, Y: 5}, // Head
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 7, Y: 5},
	}, DirRight, Cell{X: 20, Y: 1})

	if g.Tick() != StateGameOver {
		t.Fatal("moving into the body should end the game")
	}
	if g.Reason() != ReasonSelf {
		t.Errorf("Reason() = %q, expected %q", g.Reason(), ReasonSelf)
	}
}

func TestEatingFoodGrowsAndScores(t *testing.T) {
	g := newTestGame(t, 4, nil)
	place(g, []Cell{{X: 11, Y: 10}}, DirRight, Cell{X: 12, Y: 10})

	if g.Tick() != StatePlaying {
		t.Fatal("eating should not end the game")
	}

	if g.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", g.Score())
	}
	if g.Snake().Len() != 2 {
		t.Errorf("Len() = %d, expected 2", g.Snake().Len())
	}
	if g.Snake().Head() != (Cell{X: 11, Y: 10}) {
		t.Errorf("growing tick must not move the head, got %v", g.Snake().Head())
	}
	if g.Snake().Contains(g.FoodCell()) {
		t.Errorf("food relocated onto the snake at %v", g.FoodCell())
	}

	// Next tick moves onto the old food cell
	g.food.cell = Cell{X: 0, Y: 0}
	g.Tick()
	if g.Snake().Head() != (Cell{X: 12, Y: 10}) || g.Snake().Len() != 2 {
		t.Errorf("expected head (12,10) with length 2, got %v", g.Snake().Body())
	}
}

func TestOppositeDirectionRejected(t *testing.T) {
	g := newTestGame(t, 5, nil)
	place(g, []Cell{{X: 11, Y: 10}}, DirUp, Cell{X: 0, Y: 0})

	g.QueueDirection(DirDown)
	g.Tick()

	if g.Snake().Direction() != DirUp {
		t.Errorf("Direction() = %v, expected up", g.Snake().Direction())
	}
	if g.Snake().Head() != (Cell{X: 11, Y: 9}) {
		t.Errorf("Head() = %v, expected (11,9)", g.Snake().Head())
	}
}

func TestLastDirectionWins(t *testing.T) {
	g := newTestGame(t, 6, nil)
	place(g, []Cell{{X: 11, Y: 10}}, DirRight, Cell{X: 0, Y: 0})

	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	in.Set(core.ActionDown)
	g.Step(in)

	if g.Snake().Direction() != DirDown {
		t.Errorf("Direction() = %v, expected down", g.Snake().Direction())
	}
}

func TestGuardUsesDirectionAtTickStart(t *testing.T) {
	g := newTestGame(t, 7, nil)
	place(g, []Cell{{X: 11, Y: 10}}, DirRight, Cell{X: 0, Y: 0})

	// Up would be legal, but only the last request counts and Left
	// reverses the heading the tick started with.
	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	in.Set(core.ActionLeft)
	g.Step(in)

	if g.Snake().Direction() != DirRight {
		t.Errorf("Direction() = %v, expected right", g.Snake().Direction())
	}
	if g.Snake().Head() != (Cell{X: 12, Y: 10}) {
		t.Errorf("Head() = %v, expected (12,10)", g.Snake().Head())
	}
}

func TestDirectionIgnoredDuringGameOver(t *testing.T) {
	g := newTestGame(t, 8, nil)
	place(g, []Cell{{X: 0, Y: 10}}, DirLeft, Cell{X: 20, Y: 1})
	g.Tick()

	if g.QueueDirection(DirUp) {
		t.Error("QueueDirection should be rejected during game over")
	}
	before := g.Snapshot()
	if g.Tick() != StateGameOver {
		t.Error("game over should persist without restart")
	}
	if g.Snapshot() != before {
		t.Error("ticks during game over must not change the state")
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(t, 9, nil)

	if g.Restart() {
		t.Error("Restart should be ignored while playing")
	}

	place(g, []Cell{{X: 0, Y: 10}, {X: 1, Y: 10}, {X: 2, Y: 10}}, DirLeft, Cell{X: 20, Y: 1})
	g.score = 7
	g.Tick()
	if g.Status() != StateGameOver {
		t.Fatal("expected game over")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	res := g.Step(in)

	if res.State.GameOver || g.Status() != StatePlaying {
		t.Error("restart should return to playing")
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d, expected 0 after restart", g.Score())
	}
	if g.Snake().Len() != 1 || g.Snake().Head() != g.Board().Center() {
		t.Errorf("restart should create a centered one-cell snake, got %v", g.Snake().Body())
	}
	if g.Reason() != ReasonNone {
		t.Errorf("Reason() = %q, expected none after restart", g.Reason())
	}
	if g.HighScore() != 7 {
		t.Errorf("HighScore() = %d, expected 7 to survive restart", g.HighScore())
	}
}

func TestHighScoreSavedOnGameOver(t *testing.T) {
	store := NewMemoryStore(3)
	g := newTestGame(t, 10, store)

	if g.HighScore() != 3 {
		t.Fatalf("HighScore() = %d, expected loaded value 3", g.HighScore())
	}

	place(g, []Cell{{X: 0, Y: 10}}, DirLeft, Cell{X: 20, Y: 1})
	g.score = 5
	g.Tick()

	saved, _ := store.LoadHighScore()
	if saved != 5 || g.HighScore() != 5 {
		t.Errorf("high score = (store %d, game %d), expected 5", saved, g.HighScore())
	}
}

func TestUpdateHighScoreIsMax(t *testing.T) {
	tests := []struct{ prev, score, want int }{
		{0, 0, 0},
		{0, 4, 4},
		{10, 4, 10},
		{10, 10, 10},
		{10, 11, 11},
	}

	for _, tc := range tests {
		store := NewMemoryStore(tc.prev)
		g := newTestGame(t, 11, store)
		if got := g.UpdateHighScore(tc.score); got != tc.want {
			t.Errorf("UpdateHighScore(%d) with prev %d = %d, expected %d", tc.score, tc.prev, got, tc.want)
		}
		if saved, _ := store.LoadHighScore(); saved != tc.want {
			t.Errorf("stored high score = %d, expected %d", saved, tc.want)
		}
	}
}

func TestStoreFailuresAreTolerated(t *testing.T) {
	boom := errors.New("disk on fire")
	g := newTestGame(t, 12, failingStore{loadErr: boom, saveErr: boom})

	if g.HighScore() != 0 {
		t.Errorf("unreadable high score should read as 0, got %d", g.HighScore())
	}
	if !errors.Is(g.StoreErr(), boom) {
		t.Errorf("StoreErr() = %v, expected load error", g.StoreErr())
	}

	g.ClearStoreErr()
	place(g, []Cell{{X: 0, Y: 10}}, DirLeft, Cell{X: 20, Y: 1})
	g.score = 2
	if g.Tick() != StateGameOver {
		t.Fatal("expected game over")
	}
	if g.HighScore() != 2 {
		t.Errorf("HighScore() = %d, expected 2 even when saving fails", g.HighScore())
	}
	if !errors.Is(g.StoreErr(), boom) {
		t.Errorf("StoreErr() = %v, expected save error", g.StoreErr())
	}
}

func TestBoardFullEndsGame(t *testing.T) {
	g := New(Options{Board: NewBoard(1, 1), Growth: GrowBackward}, nil)
	g.Reset(core.RuntimeConfig{Seed: 1})

	if g.Status() != StateGameOver {
		t.Fatal("expected game over when the board has no free cell for food")
	}
	if g.Reason() != ReasonBoardFull {
		t.Errorf("Reason() = %q, expected %q", g.Reason(), ReasonBoardFull)
	}

	// Rendering must cope with the missing food
	g.Render(core.NewScreen(80, 24))
}

// TestTickInvariants drives many seeded games with random input and checks
// the per-tick rules against the state captured before each tick.
func TestTickInvariants(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		for _, growth := range []GrowthPolicy{GrowBackward, GrowTrail} {
			opts := DefaultOptions()
			opts.Growth = growth
			g := New(opts, nil)
			g.Reset(core.RuntimeConfig{Seed: seed})
			input := rand.New(rand.NewSource(seed * 31))

			for tick := 0; tick < 400; tick++ {
				if g.Status() == StateGameOver {
					g.Restart()
					continue
				}

				req := Directions[input.Intn(len(Directions))]
				effective := g.Snake().Direction()
				if req != effective.Opposite() {
					effective = req
				}
				// Keep the heading now and then so runs last longer
				if input.Intn(3) == 0 {
					effective = g.Snake().Direction()
					req = effective
				}
				g.QueueDirection(req)

				preLen := g.Snake().Len()
				preScore := g.Score()
				preHigh := g.HighScore()
				ate := g.Snake().Head().Step(effective) == g.FoodCell()

				state := g.Tick()

				if g.Snake().Direction() != effective {
					t.Fatalf("seed %d tick %d: direction %v, expected %v", seed, tick, g.Snake().Direction(), effective)
				}
				wantLen, wantScore := preLen, preScore
				if ate {
					wantLen++
					wantScore++
				}
				if g.Snake().Len() != wantLen {
					t.Fatalf("seed %d tick %d: len %d, expected %d", seed, tick, g.Snake().Len(), wantLen)
				}
				if g.Score() != wantScore {
					t.Fatalf("seed %d tick %d: score %d, expected %d", seed, tick, g.Score(), wantScore)
				}
				if g.HighScore() < preHigh {
					t.Fatalf("seed %d tick %d: high score decreased", seed, tick)
				}
				if state == StatePlaying {
					if g.Snake().HasSelfCollision() {
						t.Fatalf("seed %d tick %d: duplicate cells while playing", seed, tick)
					}
					if !g.Board().InBounds(g.Snake().Head()) {
						t.Fatalf("seed %d tick %d: head out of bounds while playing", seed, tick)
					}
					if g.Snake().Contains(g.FoodCell()) {
						t.Fatalf("seed %d tick %d: food on snake", seed, tick)
					}
				} else if g.HighScore() < g.Score() {
					t.Fatalf("seed %d tick %d: high score %d below final score %d", seed, tick, g.HighScore(), g.Score())
				}
			}
		}
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 13, NewMemoryStore(9))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	content := screen.String()

	if !strings.Contains(content, "Score: 0") || !strings.Contains(content, "High Score: 9") {
		t.Errorf("HUD missing score line:\n%s", content)
	}
	if !strings.Contains(content, "█") {
		t.Error("snake not drawn")
	}
	if !strings.Contains(content, "●") {
		t.Error("food not drawn")
	}

	// Head is drawn in bright green
	w, _ := RequiredScreenSize(g.Board())
	x := (80-w)/2 + 1 + g.Snake().Head().X*cellWidth
	y := hudHeight + 1 + g.Snake().Head().Y
	if cell := screen.GetCell(x, y); cell.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %+v, expected bright green", cell)
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t, 14, nil)
	place(g, []Cell{{X: 0, Y: 10}}, DirLeft, Cell{X: 20, Y: 1})
	g.score = 4
	g.Tick()

	f := g.Frame()
	if !f.GameOver || len(f.Overlay) != 2 {
		t.Fatalf("expected a two-line game over overlay, got %+v", f.Overlay)
	}
	if f.Overlay[0] != "Game Over! Score: 4 High Score: 4" {
		t.Errorf("overlay line 1 = %q", f.Overlay[0])
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Press 'R' to try again") {
		t.Error("restart prompt not drawn")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, 15, nil)
	screen := core.NewScreen(20, 10)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected too-small notice, got:\n%s", screen.String())
	}
}

func TestFrameSegments(t *testing.T) {
	g := newTestGame(t, 16, nil)
	place(g, []Cell{{X: 3, Y: 3}, {X: 2, Y: 3}, {X: 1, Y: 3}}, DirRight, Cell{X: 9, Y: 9})

	f := g.Frame()
	if len(f.Segments) != 3 {
		t.Fatalf("Segments = %d, expected 3", len(f.Segments))
	}
	if f.Segments[0].Color != core.ColorBrightGreen || f.Segments[1].Color != core.ColorGreen {
		t.Error("head and body colors wrong")
	}
	if f.Food.Cell != (Cell{X: 9, Y: 9}) || f.Food.Color != core.ColorRed {
		t.Errorf("Food sprite = %+v", f.Food)
	}
}
