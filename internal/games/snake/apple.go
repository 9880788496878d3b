package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tapsnake/internal/core"
)

// ErrNoFreeCell is returned by Spawn when the snake covers the whole grid.
var ErrNoFreeCell = errors.New("snake: no free cell for apple")

// Apple is the single piece of food on the grid.
type Apple struct {
	grid     core.Grid
	rng      *rand.Rand
	location core.Cell
}

// NewApple creates an apple for the grid. It has no location until Spawn.
func NewApple(g core.Grid, rng *rand.Rand) *Apple {
	return &Apple{
		grid:     g,
		rng:      rng,
		location: core.Cell{X: -1, Y: -1},
	}
}

// Spawn moves the apple to a uniformly random grid cell not in forbidden.
// It collects the free cells first so it always terminates; when none are
// left it returns ErrNoFreeCell and keeps the old location.
func (a *Apple) Spawn(forbidden []core.Cell) error {
	taken := make(map[core.Cell]struct{}, len(forbidden))
	for _, c := range forbidden {
		taken[c] = struct{}{}
	}

	free := make([]core.Cell, 0, a.grid.Size())
	for y := 0; y < a.grid.Height; y++ {
		for x := 0; x < a.grid.Width; x++ {
			c := core.Cell{X: x, Y: y}
			if _, ok := taken[c]; !ok {
				free = append(free, c)
			}
		}
	}

	if len(free) == 0 {
		return ErrNoFreeCell
	}

	a.location = free[a.rng.Intn(len(free))]
	return nil
}

// Location returns the apple's current cell.
func (a *Apple) Location() core.Cell {
	return a.location
}
