package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Layout constants for the terminal renderer.
const (
	cellWidth = 2 // Terminal columns per board cell, keeps cells square
	hudHeight = 1 // Status line above the board
)

// Sprite is one colored board cell to draw.
type Sprite struct {
	Cell  Cell
	Color core.Color
}

// Frame is everything the renderer needs for one tick: the board, one
// sprite per snake segment, the food, a status line and, after a game over,
// the two overlay lines.
type Frame struct {
	Board    Board
	Segments []Sprite
	Food     Sprite
	HUD      string
	Overlay  []string
	GameOver bool
}

// Frame builds the draw list for the current state.
func (g *Game) Frame() Frame {
	body := g.snake.Body()
	segments := make([]Sprite, len(body))
	for i, c := range body {
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen
		}
		segments[i] = Sprite{Cell: c, Color: color}
	}

	f := Frame{
		Board:    g.board,
		Segments: segments,
		Food:     Sprite{Cell: g.food.Cell(), Color: core.ColorRed},
		HUD:      fmt.Sprintf(" Snake | Score: %d  High Score: %d", g.score, g.highScore),
		GameOver: g.state == StateGameOver,
	}

	if f.GameOver {
		f.HUD = fmt.Sprintf(" Snake | Game over: %s", g.reason)
		f.Overlay = []string{
			fmt.Sprintf("Game Over! Score: %d High Score: %d", g.score, g.highScore),
			"Press 'R' to try again",
		}
	}
	return f
}

// RequiredScreenSize returns the smallest screen that fits the board,
// its frame and the HUD.
func RequiredScreenSize(b Board) (w, h int) {
	return b.Width()*cellWidth + 2, b.Height() + 2 + hudHeight
}

// Render draws the current state onto dst.
func (g *Game) Render(dst *core.Screen) {
	RenderFrame(dst, g.Frame())
}

// RenderFrame clears dst and draws f centered horizontally.
func RenderFrame(dst *core.Screen, f Frame) {
	dst.Clear()

	needW, needH := RequiredScreenSize(f.Board)
	if dst.Width() < needW || dst.Height() < needH {
		renderTooSmall(dst, needW, needH)
		return
	}

	dst.DrawTextColored(0, 0, f.HUD, core.ColorWhite)

	box := core.NewRect((dst.Width()-needW)/2, hudHeight, needW, f.Board.Height()+2)
	dst.DrawBox(box, core.ColorGray)

	originX, originY := box.X+1, box.Y+1
	draw := func(s Sprite, r rune) {
		if !f.Board.InBounds(s.Cell) {
			return
		}
		x := originX + s.Cell.X*cellWidth
		y := originY + s.Cell.Y
		for i := 0; i < cellWidth; i++ {
			dst.SetColored(x+i, y, r, s.Color)
		}
	}

	draw(f.Food, '●')
	for _, s := range f.Segments {
		draw(s, '█')
	}

	if len(f.Overlay) > 0 {
		renderOverlay(dst, f.Overlay)
	}
}

// renderOverlay draws a centered message box.
func renderOverlay(dst *core.Screen, lines []string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}

	boxW := maxLen + 4
	boxH := len(lines)*2 + 1
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.SetColored(x, y, '+', core.ColorWhite)
			case isTopOrBottom:
				dst.SetColored(x, y, '-', core.ColorWhite)
			case isLeftOrRight:
				dst.SetColored(x, y, '|', core.ColorWhite)
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	for i, l := range lines {
		dst.DrawTextCentered(boxY+1+i*2, l, core.ColorWhite)
	}
}

func renderTooSmall(dst *core.Screen, needW, needH int) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "Window too small", core.ColorYellow)
	dst.DrawTextCentered(mid, fmt.Sprintf("Need %dx%d, have %dx%d", needW, needH, dst.Width(), dst.Height()), core.ColorYellow)
	dst.DrawTextCentered(mid+1, "Resize to continue", core.ColorYellow)
}
