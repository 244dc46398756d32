package main

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/hichamlamine/game-of-life/game"
	"github.com/hichamlamine/game-of-life/model"
	"github.com/hichamlamine/game-of-life/render"
	"github.com/hichamlamine/game-of-life/utils"
)

// headlessGenerations bounds a headless run when max_generations is unlimited.
const headlessGenerations = 100

// session wraps a controller with the bookkeeping the hosts display:
// stagnation history, performance stats and auto-restart.
type session struct {
	ctrl   *game.Controller
	config utils.Config

	history       *model.History
	stats         *utils.Stats
	stagnantCount int
	total         int // generations advanced across restarts
	lastFrameTime time.Time
	lastEvent     string
}

// initializeGame sets up the seeded controller and the host bookkeeping
func initializeGame(config utils.Config, seeder *model.Seeder) (*session, error) {
	ctrl, err := game.Start(config, seeder)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame]")
	}
	return &session{
		ctrl:          ctrl,
		config:        config,
		history:       model.NewHistory(5),
		stats:         utils.NewStats(),
		lastFrameTime: time.Now(),
	}, nil
}

// limitReached reports whether max_generations ticks have been advanced.
func (s *session) limitReached() bool {
	return s.config.MaxGenerations > 0 && s.total >= s.config.MaxGenerations
}

// advance runs one host tick. It reports true once the generation limit is reached.
func (s *session) advance() (bool, error) {
	if s.limitReached() {
		return true, nil
	}
	if s.ctrl.Paused() {
		return false, nil
	}
	if err := s.ctrl.Tick(); err != nil {
		return false, err
	}
	s.total++

	view := s.ctrl.Grid()
	livingCells := view.CountLivingCells()

	now := time.Now()
	s.stats.Update(s.ctrl.Generation(), livingCells, now.Sub(s.lastFrameTime))
	s.lastFrameTime = now

	hash := view.Hash()
	if s.history.IsStagnant(hash) {
		s.stagnantCount++
	} else {
		s.stagnantCount = 0
	}
	s.history.Update(hash)

	if shouldRestart, reason := checkRestartConditions(livingCells, s.stagnantCount, s.config); shouldRestart && s.config.AutoRestart {
		if err := s.reseed(); err != nil {
			return false, err
		}
		s.lastEvent = fmt.Sprintf("Restarted due to %s", reason)
	}
	return s.limitReached(), nil
}

// reseed clears the grid and places seed_count random cells.
func (s *session) reseed() error {
	if err := s.ctrl.ResetAndReseed(s.config.SeedCount); err != nil {
		return err
	}
	s.history.Reset()
	s.stagnantCount = 0
	s.lastEvent = "Reseeded"
	return nil
}

// togglePause flips the run state.
func (s *session) togglePause() {
	s.ctrl.TogglePause()
	s.lastEvent = ""
}

// gameStatus summarizes the current state in one word
func (s *session) gameStatus(livingCells int) string {
	switch {
	case s.ctrl.Paused():
		return "Paused"
	case livingCells == 0:
		return "Extinct"
	case s.stagnantCount > 0:
		return fmt.Sprintf("Stagnant (%d)", s.stagnantCount)
	}
	return "Active"
}

// statusLines renders the status block shown under the grid
func (s *session) statusLines() []string {
	view := s.ctrl.Grid()
	width, height := view.Dimensions()
	livingCells := view.CountLivingCells()
	density := float64(livingCells) / float64(width*height) * 100

	lines := []string{
		fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s",
			s.ctrl.Generation(), livingCells, density, s.gameStatus(livingCells)),
		fmt.Sprintf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs",
			s.stats.GenerationsPerSecond, s.stats.AveragePopulation, time.Since(s.stats.StartTime).Seconds()),
	}
	if s.lastEvent != "" {
		lines = append(lines, s.lastEvent)
	}
	return lines
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// runHeadless advances the simulation without a terminal and prints the final frame
func runHeadless(s *session, w io.Writer) error {
	limit := s.config.MaxGenerations
	if limit == 0 {
		limit = headlessGenerations
	}
	for s.total < limit && !s.ctrl.Paused() {
		done, err := s.advance()
		if err != nil {
			return errors.Wrap(err, "[runHeadless]")
		}
		if done {
			break
		}
	}

	for _, line := range s.statusLines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Wrap(err, "[runHeadless] failed to write status")
		}
	}
	renderer := &render.TerminalRenderer{}
	return errors.Wrap(renderer.Display(w, s.ctrl.Grid()), "[runHeadless] failed to write grid")
}
