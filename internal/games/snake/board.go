package snake

// Board is the fixed-size playing field.
type Board struct {
	width  int
	height int
}

// NewBoard creates a board of the given dimensions.
func NewBoard(width, height int) Board {
	return Board{width: width, height: height}
}

// Width returns the number of columns.
func (b Board) Width() int { return b.width }

// Height returns the number of rows.
func (b Board) Height() int { return b.height }

// Area returns the number of cells on the board.
func (b Board) Area() int { return b.width * b.height }

// InBounds reports whether c lies on the board.
func (b Board) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < b.width && c.Y >= 0 && c.Y < b.height
}

// Center returns the middle cell, rounding toward the origin.
func (b Board) Center() Cell {
	return Cell{X: b.width / 2, Y: b.height / 2}
}
