package snake

import "errors"

// ErrBoardFull is returned when no free cell is left for food.
var ErrBoardFull = errors.New("snake: no free cell for food")

// Rand is the random source used for placement. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Food is the single item the snake eats.
type Food struct {
	cell Cell
}

// NewFood places food on a random free cell of the board.
func NewFood(rng Rand, board Board, excluding []Cell) (*Food, error) {
	f := &Food{}
	if err := f.Relocate(rng, board, excluding); err != nil {
		return nil, err
	}
	return f, nil
}

// Cell returns the food position.
func (f *Food) Cell() Cell {
	return f.cell
}

// Relocate moves the food to a cell chosen uniformly among the board cells
// not listed in excluding. The food is left in place on ErrBoardFull.
func (f *Food) Relocate(rng Rand, board Board, excluding []Cell) error {
	taken := make(map[Cell]struct{}, len(excluding))
	for _, c := range excluding {
		taken[c] = struct{}{}
	}

	free := make([]Cell, 0, board.Area())
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			c := Cell{X: x, Y: y}
			if _, ok := taken[c]; !ok {
				free = append(free, c)
			}
		}
	}

	if len(free) == 0 {
		return ErrBoardFull
	}

	f.cell = free[rng.Intn(len(free))]
	return nil
}
