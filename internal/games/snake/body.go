package snake

import (
	"errors"
	"fmt"
)

// GrowthPolicy decides where the extra segment goes when the snake grows.
type GrowthPolicy int

const (
	// GrowBackward appends the cell one step behind the tail, opposite the
	// current heading.
	GrowBackward GrowthPolicy = iota
	// GrowTrail appends the cell the tail vacated on the last move. It falls
	// back to GrowBackward when there is no such cell or it is occupied.
	GrowTrail
)

// ErrUnknownGrowth is returned by ParseGrowthPolicy for unrecognised names.
var ErrUnknownGrowth = errors.New("snake: unknown growth policy")

// ParseGrowthPolicy converts a config name into a policy.
func ParseGrowthPolicy(name string) (GrowthPolicy, error) {
	switch name {
	case "", "backward":
		return GrowBackward, nil
	case "trail":
		return GrowTrail, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGrowth, name)
}

func (p GrowthPolicy) String() string {
	switch p {
	case GrowBackward:
		return "backward"
	case GrowTrail:
		return "trail"
	default:
		return "unknown"
	}
}

// Snake is the player's body and heading. The head is body[0].
type Snake struct {
	body      []Cell
	direction Direction

	vacated    Cell // cell released by the last Advance
	hasVacated bool
}

// NewSnake creates a one-segment snake at head facing dir.
func NewSnake(head Cell, dir Direction) *Snake {
	return &Snake{
		body:      []Cell{head},
		direction: dir,
	}
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.direction
}

// SetDirection changes the heading unless d is the exact reverse of it.
// It reports whether the change was accepted.
func (s *Snake) SetDirection(d Direction) bool {
	if d == s.direction.Opposite() {
		return false
	}
	s.direction = d
	return true
}

// NextHead returns where the head would be after one Advance.
func (s *Snake) NextHead() Cell {
	return s.Head().Step(s.direction)
}

// Advance moves the snake one cell along its heading, keeping its length.
func (s *Snake) Advance() {
	next := s.NextHead()
	last := len(s.body) - 1
	s.vacated = s.body[last]
	s.hasVacated = true

	copy(s.body[1:], s.body[:last])
	s.body[0] = next
}

// Grow appends one segment at the tail. The head never moves.
func (s *Snake) Grow(policy GrowthPolicy) {
	tail := s.Tail()
	extra := tail.Step(s.direction.Opposite())
	if policy == GrowTrail && s.hasVacated && !s.Contains(s.vacated) {
		extra = s.vacated
	}
	s.hasVacated = false
	s.body = append(s.body, extra)
}

// Head returns the first segment. The body is never empty after NewSnake;
// an empty snake is a programming error and panics.
func (s *Snake) Head() Cell {
	if len(s.body) == 0 {
		panic("snake: head of empty snake")
	}
	return s.body[0]
}

// Tail returns the last segment.
func (s *Snake) Tail() Cell {
	if len(s.body) == 0 {
		panic("snake: tail of empty snake")
	}
	return s.body[len(s.body)-1]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Contains reports whether any segment occupies c.
func (s *Snake) Contains(c Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}

// HasSelfCollision reports whether two segments share a cell.
func (s *Snake) HasSelfCollision() bool {
	seen := make(map[Cell]struct{}, len(s.body))
	for _, seg := range s.body {
		if _, dup := seen[seg]; dup {
			return true
		}
		seen[seg] = struct{}{}
	}
	return false
}
