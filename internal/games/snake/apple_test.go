package snake

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tapsnake/internal/core"
)

func TestAppleSpawnAvoidsSnake(t *testing.T) {
	a := NewApple(grid10, rand.New(rand.NewSource(999)))

	// A snake filling the top half of the grid.
	var body []core.Cell
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			body = append(body, core.Cell{X: x, Y: y})
		}
	}
	s := newSnakeAt(core.DirRight, body...)

	for i := 0; i < 200; i++ {
		if err := a.Spawn(s.Segments()); err != nil {
			t.Fatalf("Spawn() error: %v", err)
		}
		loc := a.Location()
		if s.Occupies(loc) {
			t.Fatalf("apple spawned on snake at %v", loc)
		}
		if !grid10.Contains(loc) {
			t.Fatalf("apple spawned out of bounds at %v", loc)
		}
	}
}

func TestAppleSpawnLastFreeCell(t *testing.T) {
	a := NewApple(grid10, rand.New(rand.NewSource(1)))

	var body []core.Cell
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if x == 7 && y == 3 {
				continue
			}
			body = append(body, core.Cell{X: x, Y: y})
		}
	}

	if err := a.Spawn(body); err != nil {
		t.Fatalf("Spawn() error: %v", err)
	}
	if a.Location() != (core.Cell{X: 7, Y: 3}) {
		t.Errorf("Location() = %v, expected the only free cell (7,3)", a.Location())
	}
}

func TestAppleSpawnFullGrid(t *testing.T) {
	g := core.Grid{Width: 2, Height: 2, BlockSize: 1}
	a := NewApple(g, rand.New(rand.NewSource(1)))
	if err := a.Spawn(nil); err != nil {
		t.Fatalf("Spawn() on empty grid error: %v", err)
	}
	before := a.Location()

	full := []core.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	err := a.Spawn(full)
	if !errors.Is(err, ErrNoFreeCell) {
		t.Fatalf("Spawn() on full grid = %v, expected ErrNoFreeCell", err)
	}
	if a.Location() != before {
		t.Errorf("failed Spawn moved the apple from %v to %v", before, a.Location())
	}
}

func TestAppleSpawnDeterministic(t *testing.T) {
	a1 := NewApple(grid10, rand.New(rand.NewSource(42)))
	a2 := NewApple(grid10, rand.New(rand.NewSource(42)))

	for i := 0; i < 20; i++ {
		if err := a1.Spawn(nil); err != nil {
			t.Fatal(err)
		}
		if err := a2.Spawn(nil); err != nil {
			t.Fatal(err)
		}
		if a1.Location() != a2.Location() {
			t.Fatalf("spawn %d differs: %v vs %v", i, a1.Location(), a2.Location())
		}
	}
}

func TestAppleStartsOffGrid(t *testing.T) {
	a := NewApple(grid10, rand.New(rand.NewSource(1)))
	if grid10.Contains(a.Location()) {
		t.Errorf("unspawned apple should be off grid, got %v", a.Location())
	}
}
