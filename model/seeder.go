package model

import (
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
)

// Seeder places live cells at random positions using the generator it owns.
type Seeder struct {
	rng *rand.Rand
}

// NewSeeder wraps an existing generator. Pass a fixed-seed generator for
// reproducible fills.
func NewSeeder(rng *rand.Rand) *Seeder {
	return &Seeder{rng: rng}
}

// NewSeederFromSeed creates a Seeder backed by a PCG generator. A zero seed
// selects a time-based seed.
func NewSeederFromSeed(seed int64) *Seeder {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewSeeder(rand.New(rand.NewPCG(uint64(seed), 0)))
}

// Clear sets every cell of the grid dead.
func (s *Seeder) Clear(g *Grid) {
	g.Clear()
}

// CanFill reports whether RandomFill(g, count) would succeed, without touching g.
func (s *Seeder) CanFill(g *Grid, count int) error {
	if count < 0 {
		return errors.Wrapf(ErrInvalidArgument, "[Seeder.CanFill] negative count %d", count)
	}
	if count > 0 && (g.width <= 2 || g.height <= 2) {
		return errors.Wrapf(ErrInvalidArgument, "[Seeder.CanFill] %dx%d grid has no interior to seed", g.width, g.height)
	}
	return nil
}

// RandomFill sets count randomly chosen interior cells alive. The interior
// excludes the outermost ring: x in [1,width-1), y in [1,height-1). Positions
// may repeat, so fewer than count cells may end up alive.
func (s *Seeder) RandomFill(g *Grid, count int) error {
	if err := s.CanFill(g, count); err != nil {
		return err
	}
	for range count {
		x := 1 + s.rng.IntN(g.width-2)
		y := 1 + s.rng.IntN(g.height-2)
		g.cells[y][x] = true
	}
	return nil
}
