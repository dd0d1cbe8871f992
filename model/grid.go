package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Grid is a fixed-size row-major board of cells
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates a new all-dead grid with the specified dimensions.
// Negative dimensions are treated as zero.
func NewGrid(width, height int) *Grid {
	width, height = max(0, width), max(0, height)
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resizes the grid to new dimensions, leaving every cell dead
func (g *Grid) Reset(width, height int) {
	width, height = max(0, width), max(0, height)
	g.width = width
	g.height = height

	if len(g.cells) != height {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]bool, width)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	for y := range g.height {
		clear(g.cells[y])
	}
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) error {
	if !(Coord{X: x, Y: y}).InBounds(g.width, g.height) {
		return errors.Wrapf(ErrOutOfRange, "[Set] (%d,%d) outside %dx%d grid", x, y, g.width, g.height)
	}
	g.cells[y][x] = alive
	return nil
}

// Get returns the state of a cell. Cells outside the grid are dead.
func (g *Grid) Get(x, y int) bool {
	if !(Coord{X: x, Y: y}).InBounds(g.width, g.height) {
		return false
	}
	return g.cells[y][x]
}

// Row returns a copy of row y
func (g *Grid) Row(y int) []bool {
	if y < 0 || y >= g.height {
		return nil
	}
	return append([]bool(nil), g.cells[y]...)
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.width, g.height)
	c.copyFrom(g)
	return c
}

// copyFrom overwrites g with the cells of src. Both grids must share dimensions.
func (g *Grid) copyFrom(src *Grid) {
	for y := range g.height {
		copy(g.cells[y], src.cells[y])
	}
}

// Equal reports whether both grids hold the same cells. Grids of different
// shape are never equal and yield ErrDimensionMismatch.
func (g *Grid) Equal(other *Grid) (bool, error) {
	if g.width != other.width || g.height != other.height {
		return false, errors.Wrapf(ErrDimensionMismatch, "[Equal] %dx%d vs %dx%d",
			g.width, g.height, other.width, other.height)
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != other.cells[y][x] {
				return false, nil
			}
		}
	}
	return true, nil
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 digest of the grid state
func (g *Grid) Hash() string {
	h := md5.New()
	row := make([]byte, g.width)
	for y := range g.height {
		for x := range g.width {
			row[x] = 0
			if g.cells[y][x] {
				row[x] = 1
			}
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Randomize fills the grid with living cells at the given density
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for y := range g.height {
		for x := range g.width {
			g.cells[y][x] = rng.Float64() < density
		}
	}
}
