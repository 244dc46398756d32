package game

import (
	"github.com/pkg/errors"

	"github.com/hichamlamine/game-of-life/model"
	"github.com/hichamlamine/game-of-life/utils"
)

// Start creates a controller, seeds it with config.SeedCount random cells and
// stamps the configured patterns on top.
func Start(config utils.Config, seeder *model.Seeder) (*Controller, error) {
	c, err := New(config, seeder)
	if err != nil {
		return nil, err
	}
	if err = c.ResetAndReseed(config.SeedCount); err != nil {
		return nil, errors.Wrap(err, "[game.Start] failed to seed grid")
	}
	for _, p := range config.Patterns {
		pattern, err := model.LookupPattern(p.Name)
		if err != nil {
			return nil, errors.Wrap(err, "[game.Start]")
		}
		if err = c.Stamp(pattern, p.X, p.Y); err != nil {
			return nil, errors.Wrapf(err, "[game.Start] failed to place %s", p.Name)
		}
	}
	return c, nil
}
