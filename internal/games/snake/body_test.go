package snake

import (
	"errors"
	"testing"
)

func TestSetDirectionRejectsReversal(t *testing.T) {
	tests := []struct {
		current, requested Direction
		accepted           bool
	}{
		{DirUp, DirDown, false},
		{DirDown, DirUp, false},
		{DirLeft, DirRight, false},
		{DirRight, DirLeft, false},
		{DirUp, DirLeft, true},
		{DirUp, DirRight, true},
		{DirUp, DirUp, true},
		{DirLeft, DirDown, true},
	}

	for _, tc := range tests {
		t.Run(tc.current.String()+"->"+tc.requested.String(), func(t *testing.T) {
			s := NewSnake(Cell{X: 5, Y: 5}, tc.current)
			got := s.SetDirection(tc.requested)
			if got != tc.accepted {
				t.Errorf("SetDirection(%v) = %v, expected %v", tc.requested, got, tc.accepted)
			}
			want := tc.current
			if tc.accepted {
				want = tc.requested
			}
			if s.Direction() != want {
				t.Errorf("Direction() = %v, expected %v", s.Direction(), want)
			}
		})
	}
}

func TestAdvanceSingleCellThreeSteps(t *testing.T) {
	board := NewBoard(23, 20)
	start := board.Center()
	if start != (Cell{X: 11, Y: 10}) {
		t.Fatalf("Center() = %v, expected (11,10)", start)
	}

	for _, d := range Directions {
		t.Run(d.String(), func(t *testing.T) {
			s := NewSnake(start, d)
			for range 3 {
				s.Advance()
			}
			dx, dy := d.Delta()
			want := Cell{X: start.X + 3*dx, Y: start.Y + 3*dy}
			if s.Len() != 1 {
				t.Errorf("Len() = %d, expected 1", s.Len())
			}
			if s.Head() != want {
				t.Errorf("Head() = %v, expected %v", s.Head(), want)
			}
		})
	}
}

func TestAdvanceShiftsBody(t *testing.T) {
	s := &Snake{
		body:      []Cell{{X: 3, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}},
		direction: DirDown,
	}
	s.Advance()

	want := []Cell{{X: 3, Y: 2}, {X: 3, Y: 1}, {X: 2, Y: 1}}
	got := s.Body()
	if len(got) != len(want) {
		t.Fatalf("Body() length = %d, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestGrowBackward(t *testing.T) {
	s := NewSnake(Cell{X: 11, Y: 10}, DirRight)
	s.Grow(GrowBackward)

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", s.Len())
	}
	if s.Head() != (Cell{X: 11, Y: 10}) {
		t.Errorf("Grow must not move the head, got %v", s.Head())
	}
	if s.Tail() != (Cell{X: 10, Y: 10}) {
		t.Errorf("Tail() = %v, expected (10,10)", s.Tail())
	}
}

func TestGrowTrailUsesVacatedCell(t *testing.T) {
	backward := NewSnake(Cell{X: 5, Y: 5}, DirRight)
	trail := NewSnake(Cell{X: 5, Y: 5}, DirRight)

	for _, s := range []*Snake{backward, trail} {
		s.Advance()
		s.SetDirection(DirDown)
	}

	backward.Grow(GrowBackward)
	trail.Grow(GrowTrail)

	if backward.Tail() != (Cell{X: 6, Y: 4}) {
		t.Errorf("backward tail = %v, expected (6,4)", backward.Tail())
	}
	if trail.Tail() != (Cell{X: 5, Y: 5}) {
		t.Errorf("trail tail = %v, expected (5,5)", trail.Tail())
	}
}

func TestGrowTrailFallsBackWhenOccupied(t *testing.T) {
	s := &Snake{
		body:       []Cell{{X: 1, Y: 1}, {X: 2, Y: 1}},
		direction:  DirLeft,
		vacated:    Cell{X: 1, Y: 1},
		hasVacated: true,
	}
	s.Grow(GrowTrail)

	if s.Tail() != (Cell{X: 3, Y: 1}) {
		t.Errorf("Tail() = %v, expected fallback (3,1)", s.Tail())
	}
	if s.HasSelfCollision() {
		t.Error("fallback growth should not overlap the body")
	}
}

func TestHasSelfCollision(t *testing.T) {
	tests := []struct {
		name string
		body []Cell
		want bool
	}{
		{"single", []Cell{{X: 0, Y: 0}}, false},
		{"straight", []Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, false},
		{"head on body", []Cell{{X: 1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}}, true},
		{"tail duplicated", []Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0}}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := &Snake{body: tc.body}
			if got := s.HasSelfCollision(); got != tc.want {
				t.Errorf("HasSelfCollision() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestHeadOfEmptySnakePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Head() on an empty snake should panic")
		}
	}()
	s := &Snake{}
	s.Head()
}

func TestBodyReturnsCopy(t *testing.T) {
	s := NewSnake(Cell{X: 1, Y: 1}, DirUp)
	b := s.Body()
	b[0] = Cell{X: 9, Y: 9}
	if s.Head() != (Cell{X: 1, Y: 1}) {
		t.Error("mutating Body() result must not change the snake")
	}
}

func TestParseGrowthPolicy(t *testing.T) {
	tests := []struct {
		in   string
		want GrowthPolicy
		err  bool
	}{
		{"", GrowBackward, false},
		{"backward", GrowBackward, false},
		{"trail", GrowTrail, false},
		{"sideways", 0, true},
	}
	for _, tc := range tests {
		got, err := ParseGrowthPolicy(tc.in)
		if tc.err {
			if !errors.Is(err, ErrUnknownGrowth) {
				t.Errorf("ParseGrowthPolicy(%q) error = %v, expected ErrUnknownGrowth", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseGrowthPolicy(%q) = (%v, %v), expected %v", tc.in, got, err, tc.want)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() = %v", d, d.Opposite().Opposite())
		}
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx != -ox || dy != -oy {
			t.Errorf("%v and its opposite should have inverse deltas", d)
		}
	}
}

func TestBoardInBounds(t *testing.T) {
	b := NewBoard(23, 20)
	tests := []struct {
		c    Cell
		want bool
	}{
		{Cell{X: 0, Y: 0}, true},
		{Cell{X: 22, Y: 19}, true},
		{Cell{X: -1, Y: 10}, false},
		{Cell{X: 23, Y: 10}, false},
		{Cell{X: 5, Y: -1}, false},
		{Cell{X: 5, Y: 20}, false},
	}
	for _, tc := range tests {
		if got := b.InBounds(tc.c); got != tc.want {
			t.Errorf("InBounds(%v) = %v, expected %v", tc.c, got, tc.want)
		}
	}
	if b.Area() != 460 {
		t.Errorf("Area() = %d, expected 460", b.Area())
	}
}
