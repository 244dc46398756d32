package model

import (
	"github.com/pkg/errors"

	"github.com/hichamlamine/game-of-life/rules"
)

// CountNeighbors counts living cells among the 8 positions around (x, y).
// Positions rejected by the boundary policy contribute nothing.
func (g *Grid) CountNeighbors(x, y int, boundary rules.Boundary) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !boundary.Contains(nx, ny, g.width, g.height) {
				continue
			}
			if g.alive(nx, ny) {
				count++
			}
		}
	}
	return count
}

// NextGeneration writes the generation following cur into next. Every cell of
// next is overwritten and every cell is evaluated against the unmodified cur,
// so cur and next must be distinct grids of identical dimensions.
func NextGeneration(cur, next *Grid, boundary rules.Boundary) error {
	if cur == nil || next == nil {
		return errors.Wrap(ErrInvalidArgument, "[NextGeneration] nil grid")
	}
	if cur == next {
		return errors.Wrap(ErrInvalidArgument, "[NextGeneration] input and output must be distinct buffers")
	}
	if err := sameDimensions(cur, next); err != nil {
		return errors.Wrap(err, "[NextGeneration]")
	}

	for y := range cur.height {
		for x := range cur.width {
			next.cells[y][x] = rules.ApplyConwayRules(cur.CountNeighbors(x, y, boundary), cur.cells[y][x])
		}
	}
	return nil
}
