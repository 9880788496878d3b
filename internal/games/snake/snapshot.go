package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tapsnake/internal/core"
)

// Snapshot captures the game state for determinism testing and session logs.
type Snapshot struct {
	Tick     uint64
	Games    int
	Score    int
	SnakeLen int
	Head     core.Cell
	Heading  core.Direction
	Apple    core.Cell
	State    State
}

// Snapshot returns the current game snapshot. Loop context only, or after
// the loop has stopped.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Games:    g.games,
		Score:    g.score,
		SnakeLen: g.snake.Len(),
		Head:     g.snake.Head(),
		Heading:  g.snake.Heading(),
		Apple:    g.apple.Location(),
		State:    g.State(),
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	s := g.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Games: %d\n", s.Tick, s.Score, s.Games)
	fmt.Fprintf(&b, "Snake len: %d, Heading: %s\n", s.SnakeLen, s.Heading)
	fmt.Fprintf(&b, "Head: %s, Apple: %s\n", s.Head, s.Apple)
	fmt.Fprintf(&b, "State: %s\n", s.State)
	return b.String()
}
