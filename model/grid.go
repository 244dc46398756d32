package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// Grid is a dense width x height matrix of cell states. Every in-range
// coordinate has a defined state; cells are indexed cells[y][x].
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates a grid with the specified dimensions and every cell dead
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] %dx%d", width, height)
	}
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// Dimensions returns the width and height of the grid
func (g *Grid) Dimensions() (int, int) {
	return g.width, g.height
}

// InBounds reports whether (x, y) lies inside [0,width) x [0,height)
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, errors.Wrapf(ErrOutOfBounds, "[Grid.Get] (%d,%d) outside %dx%d", x, y, g.width, g.height)
	}
	return g.cells[y][x], nil
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) error {
	if !g.InBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "[Grid.Set] (%d,%d) outside %dx%d", x, y, g.width, g.height)
	}
	g.cells[y][x] = alive
	return nil
}

// alive reads a cell the caller has already bounds-checked.
func (g *Grid) alive(x, y int) bool {
	return g.cells[y][x]
}

// Clear clears all cells
func (g *Grid) Clear() {
	for y := range g.height {
		for x := range g.width {
			g.cells[y][x] = false
		}
	}
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

// Hash returns an MD5 digest of the current cell states
func (g *Grid) Hash() string {
	h := md5.New()
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

func sameDimensions(a, b *Grid) error {
	if a.width != b.width || a.height != b.height {
		return errors.Wrapf(ErrInvalidDimension, "%dx%d vs %dx%d", a.width, a.height, b.width, b.height)
	}
	return nil
}
