// Package game owns a running simulation: the current grid, its generation
// counter and whether ticks advance it.
package game

import (
	"github.com/pkg/errors"

	"github.com/hichamlamine/game-of-life/model"
	"github.com/hichamlamine/game-of-life/rules"
	"github.com/hichamlamine/game-of-life/utils"
)

// Controller drives a simulation in response to host ticks and commands. It is
// not safe for concurrent use; a single host loop owns it.
type Controller struct {
	current *model.Grid
	next    *model.Grid
	seeder  *model.Seeder

	boundary   rules.Boundary
	state      model.RunState
	generation uint64

	tickRate  float64
	seedCount int
}

// New creates a controller with an all-dead grid at generation 0. A nil seeder
// is replaced by one seeded from config.Seed.
func New(config utils.Config, seeder *model.Seeder) (*Controller, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "[game.New]")
	}
	current, err := model.NewGrid(config.Width, config.Height)
	if err != nil {
		return nil, errors.Wrap(err, "[game.New]")
	}
	next, err := model.NewGrid(config.Width, config.Height)
	if err != nil {
		return nil, errors.Wrap(err, "[game.New]")
	}
	if seeder == nil {
		seeder = model.NewSeederFromSeed(config.Seed)
	}
	return &Controller{
		current:   current,
		next:      next,
		seeder:    seeder,
		boundary:  config.Boundary,
		state:     config.InitialRunState,
		tickRate:  config.TickRate,
		seedCount: config.SeedCount,
	}, nil
}

// Tick advances one generation when running and does nothing when paused.
func (c *Controller) Tick() error {
	if c.state != model.Running {
		return nil
	}
	if err := model.NextGeneration(c.current, c.next, c.boundary); err != nil {
		return errors.Wrap(err, "[Controller.Tick]")
	}
	c.current, c.next = c.next, c.current
	c.generation++
	return nil
}

// TogglePause flips between Running and Paused.
func (c *Controller) TogglePause() {
	c.state = c.state.Toggle()
}

// ResetAndReseed clears the grid, places count random interior cells and
// resets the generation counter. The run state is kept. The grid is left
// untouched when count cannot be satisfied.
func (c *Controller) ResetAndReseed(count int) error {
	if err := c.seeder.CanFill(c.current, count); err != nil {
		return errors.Wrap(err, "[Controller.ResetAndReseed]")
	}
	c.seeder.Clear(c.current)
	if err := c.seeder.RandomFill(c.current, count); err != nil {
		return errors.Wrap(err, "[Controller.ResetAndReseed]")
	}
	c.generation = 0
	return nil
}

// Stamp places a pattern on the current grid without changing the generation.
func (c *Controller) Stamp(p model.Pattern, x, y int) error {
	return errors.Wrap(p.Stamp(c.current, x, y), "[Controller.Stamp]")
}

// Grid returns a read-only view of the current generation, valid until the
// next call to Tick.
func (c *Controller) Grid() model.View { return model.NewView(c.current) }

// Generation returns the number of transitions since the last reset.
func (c *Controller) Generation() uint64 { return c.generation }

// RunState reports whether ticks currently advance the simulation.
func (c *Controller) RunState() model.RunState { return c.state }

// Paused is shorthand for RunState() == model.Paused.
func (c *Controller) Paused() bool { return c.state == model.Paused }

// TickRate is the configured host clock rate in ticks per second.
func (c *Controller) TickRate() float64 { return c.tickRate }

// SeedCount is the configured number of cells placed by a reseed.
func (c *Controller) SeedCount() int { return c.seedCount }

// Boundary is the neighbor boundary policy in use.
func (c *Controller) Boundary() rules.Boundary { return c.boundary }
