package model

import (
	"strings"

	"github.com/pkg/errors"
)

// Pattern is a named set of live-cell offsets relative to a top-left anchor.
type Pattern struct {
	Name  string
	Cells [][2]int
}

var (
	// Block is the 2x2 still life.
	Block = Pattern{Name: "block", Cells: [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}}
	// Blinker is the horizontal period-2 oscillator.
	Blinker = Pattern{Name: "blinker", Cells: [][2]int{{0, 0}, {1, 0}, {2, 0}}}
	// Glider travels one cell diagonally every 4 generations.
	Glider = Pattern{Name: "glider", Cells: [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}}
)

var patterns = map[string]Pattern{
	Block.Name:   Block,
	Blinker.Name: Blinker,
	Glider.Name:  Glider,
}

// LookupPattern returns the built-in pattern with the given name.
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[strings.ToLower(name)]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrInvalidArgument, "[LookupPattern] unknown pattern %q", name)
	}
	return p, nil
}

// Stamp sets the pattern's cells alive with its anchor at (x, y). Nothing is
// written unless every cell fits inside the grid.
func (p Pattern) Stamp(g *Grid, x, y int) error {
	for _, c := range p.Cells {
		if !g.InBounds(x+c[0], y+c[1]) {
			return errors.Wrapf(ErrOutOfBounds, "[Pattern.Stamp] %s at (%d,%d) does not fit %dx%d", p.Name, x, y, g.width, g.height)
		}
	}
	for _, c := range p.Cells {
		g.cells[y+c[1]][x+c[0]] = true
	}
	return nil
}
