package snake

import "github.com/vovakirdan/tapsnake/internal/core"

// GrowthStub is where a freshly eaten segment is parked until the next
// Move shifts it into place behind the tail.
var GrowthStub = core.Cell{X: -10, Y: -10}

// turnTable maps (heading, tap side) to the new heading. A right tap turns
// clockwise, a left tap counter-clockwise, so a reversal is never possible.
var turnTable = [4][2]core.Direction{
	core.DirUp:    {core.SideLeft: core.DirLeft, core.SideRight: core.DirRight},
	core.DirRight: {core.SideLeft: core.DirUp, core.SideRight: core.DirDown},
	core.DirDown:  {core.SideLeft: core.DirRight, core.SideRight: core.DirLeft},
	core.DirLeft:  {core.SideLeft: core.DirDown, core.SideRight: core.DirUp},
}

// Turn returns the heading after a tap on the given side.
func Turn(d core.Direction, s core.Side) core.Direction {
	return turnTable[d][s]
}

// Snake is an ordered run of cells, head first.
type Snake struct {
	segments []core.Cell
	heading  core.Direction
}

// NewSnake creates an empty snake. Call Reset before use.
func NewSnake() *Snake {
	return &Snake{heading: core.DirRight}
}

// Reset puts a single segment at the grid center heading right.
func (s *Snake) Reset(g core.Grid) {
	s.heading = core.DirRight
	s.segments = append(s.segments[:0], g.Center())
}

// Move shifts every body segment onto its predecessor's cell, then advances
// the head one cell along the heading.
func (s *Snake) Move() {
	if len(s.segments) == 0 {
		return
	}
	for i := len(s.segments) - 1; i > 0; i-- {
		s.segments[i] = s.segments[i-1]
	}
	dx, dy := s.heading.Delta()
	s.segments[0] = s.segments[0].Add(dx, dy)
}

// DetectDeath reports whether the head left the grid or hit the body.
// The boundary test lets the head sit one cell past the right and bottom
// edges: only x == -1, x > Width, y == -1 or y > Height is fatal.
func (s *Snake) DetectDeath(g core.Grid) bool {
	if len(s.segments) == 0 {
		return false
	}
	head := s.segments[0]
	if head.X == -1 || head.X > g.Width || head.Y == -1 || head.Y > g.Height {
		return true
	}
	for i := len(s.segments) - 1; i > 0; i-- {
		if head == s.segments[i] {
			return true
		}
	}
	return false
}

// CheckDinner reports whether the head is on the apple. On a hit the snake
// grows by one GrowthStub segment.
func (s *Snake) CheckDinner(apple core.Cell) bool {
	if len(s.segments) == 0 || s.segments[0] != apple {
		return false
	}
	s.segments = append(s.segments, GrowthStub)
	return true
}

// SwitchHeading rotates the heading by a quarter turn toward the tapped side.
func (s *Snake) SwitchHeading(side core.Side) {
	s.heading = Turn(s.heading, side)
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	if len(s.segments) == 0 {
		return core.Cell{}
	}
	return s.segments[0]
}

// Heading returns the current direction of travel.
func (s *Snake) Heading() core.Direction {
	return s.heading
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Segments returns a copy of the segments, head first.
func (s *Snake) Segments() []core.Cell {
	out := make([]core.Cell, len(s.segments))
	copy(out, s.segments)
	return out
}

// Occupies reports whether any segment is on c.
func (s *Snake) Occupies(c core.Cell) bool {
	for _, seg := range s.segments {
		if seg == c {
			return true
		}
	}
	return false
}
