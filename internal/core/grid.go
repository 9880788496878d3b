package core

import (
	"errors"
	"fmt"
)

// ErrScreenTooSmall is returned when the screen cannot fit a single block.
var ErrScreenTooSmall = errors.New("core: screen too small for grid")

// Cell identifies one discrete grid position.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is the axis-aligned heading of the snake.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Delta returns the unit step for one move in this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Side is the half of the play area a tap landed in.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// Grid is the discrete coordinate space shared by all entities.
// It is fixed once constructed.
type Grid struct {
	Width     int // Cells across
	Height    int // Cells down
	BlockSize int // Pixels per cell, used only for rendering and tap mapping
}

// NewGrid derives the grid from the screen size in pixels and a fixed
// number of blocks across the width.
func NewGrid(screenW, screenH, blocksWide int) (Grid, error) {
	if blocksWide < 1 {
		return Grid{}, fmt.Errorf("core: blocks wide must be positive, got %d", blocksWide)
	}
	blockSize := screenW / blocksWide
	if blockSize < 1 {
		return Grid{}, fmt.Errorf("%w: %dx%d for %d blocks", ErrScreenTooSmall, screenW, screenH, blocksWide)
	}
	height := screenH / blockSize
	if height < 1 {
		return Grid{}, fmt.Errorf("%w: %dx%d for %d blocks", ErrScreenTooSmall, screenW, screenH, blocksWide)
	}
	return Grid{Width: blocksWide, Height: height, BlockSize: blockSize}, nil
}

// Center returns the cell where a fresh snake starts.
func (g Grid) Center() Cell {
	return Cell{X: g.Width / 2, Y: g.Height / 2}
}

// Contains reports whether c lies inside the grid.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Size returns the number of cells in the grid.
func (g Grid) Size() int {
	return g.Width * g.Height
}

// HalfwayX is the pixel column separating left taps from right taps.
func (g Grid) HalfwayX() int {
	return g.Width * g.BlockSize / 2
}

// SideOf returns which half of the play area the pixel column x falls in.
func (g Grid) SideOf(x int) Side {
	if x >= g.HalfwayX() {
		return SideRight
	}
	return SideLeft
}

// PixelOf returns the top-left pixel of a cell.
func (g Grid) PixelOf(c Cell) (x, y int) {
	return c.X * g.BlockSize, c.Y * g.BlockSize
}
