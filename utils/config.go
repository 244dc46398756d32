package utils

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"

	"github.com/hichamlamine/game-of-life/model"
	"github.com/hichamlamine/game-of-life/rules"
)

// Placement stamps a named pattern with its top-left corner at X, Y.
type Placement struct {
	Name string `json:"name"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// Config holds the configuration for the game
type Config struct {
	Width               int            `json:"width"`
	Height              int            `json:"height"`
	TickRate            float64        `json:"tick_rate"`
	SeedCount           int            `json:"seed_count"`
	InitialRunState     model.RunState `json:"initial_run_state"`
	Boundary            rules.Boundary `json:"boundary"`
	Seed                int64          `json:"seed"`
	AutoRestart         bool           `json:"auto_restart"`
	StagnationThreshold int            `json:"stagnation_threshold"`
	MaxGenerations      int            `json:"max_generations"`
	CellSize            int            `json:"cell_size"`
	Patterns            []Placement    `json:"patterns"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               50,
		Height:              50,
		TickRate:            10,
		SeedCount:           500,
		InitialRunState:     model.Running,
		Boundary:            rules.BoundaryAsymmetric,
		Seed:                0, // time-based
		AutoRestart:         false,
		StagnationThreshold: 5,
		MaxGenerations:      0,
		CellSize:            20,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet so flags override
// file values.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.Float64Var(&c.TickRate, "tick-rate", c.TickRate, "generations per second")
	fs.IntVar(&c.SeedCount, "seed-count", c.SeedCount, "cells placed on reseed")
	fs.Var(&c.InitialRunState, "initial-run-state", "running or paused")
	fs.Var(&c.Boundary, "boundary", "neighbor boundary: asymmetric or symmetric")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 for time-based")
	fs.BoolVar(&c.AutoRestart, "auto-restart", c.AutoRestart, "reseed on extinction or stagnation")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations, 0 for no limit")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "window pixels per cell")
}

// Validate checks the values the engine depends on.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(model.ErrInvalidDimension, "[Config.Validate] %dx%d", c.Width, c.Height)
	}
	if c.TickRate <= 0 {
		return errors.Wrapf(model.ErrInvalidArgument, "[Config.Validate] tick_rate must be positive, got %v", c.TickRate)
	}
	if c.SeedCount < 0 {
		return errors.Wrapf(model.ErrInvalidArgument, "[Config.Validate] seed_count must not be negative, got %d", c.SeedCount)
	}
	if c.StagnationThreshold < 0 || c.MaxGenerations < 0 {
		return errors.Wrap(model.ErrInvalidArgument, "[Config.Validate] stagnation_threshold and max_generations must not be negative")
	}
	if c.Boundary != rules.BoundaryAsymmetric && c.Boundary != rules.BoundarySymmetric {
		return errors.Wrapf(model.ErrInvalidArgument, "[Config.Validate] unknown boundary %d", c.Boundary)
	}
	if c.InitialRunState != model.Running && c.InitialRunState != model.Paused {
		return errors.Wrapf(model.ErrInvalidArgument, "[Config.Validate] unknown run state %d", c.InitialRunState)
	}
	if c.CellSize <= 0 {
		return errors.Wrapf(model.ErrInvalidArgument, "[Config.Validate] cell_size must be positive, got %d", c.CellSize)
	}
	for _, p := range c.Patterns {
		if _, err := model.LookupPattern(p.Name); err != nil {
			return errors.Wrap(err, "[Config.Validate]")
		}
	}
	return nil
}
