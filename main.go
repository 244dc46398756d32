package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/hichamlamine/game-of-life/render"
	"github.com/hichamlamine/game-of-life/utils"
)

type command int

const (
	cmdTogglePause command = iota
	cmdReseed
	cmdQuit
)

// keyCommand maps a key press to a simulation command
func keyCommand(ev *tcell.EventKey) (command, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'p', 'P':
			return cmdTogglePause, true
		case 'r', 'R':
			return cmdReseed, true
		case 'q', 'Q':
			return cmdQuit, true
		}
	}
	return 0, false
}

// pollInput forwards key commands until the screen is finalized or ctx ends.
func pollInput(ctx context.Context, screen tcell.Screen, commands chan<- command) error {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			cmd, ok := keyCommand(ev)
			if !ok {
				continue
			}
			select {
			case commands <- cmd:
			case <-ctx.Done():
				return nil
			}
			if cmd == cmdQuit {
				return nil
			}
		}
	}
}

// loop is the only goroutine touching the controller: it ticks on the
// configured clock, applies commands and redraws after each event.
func (s *session) loop(ctx context.Context, screen tcell.Screen, commands <-chan command) error {
	step := utils.NewFixedStep(s.ctrl.TickRate())
	ticker := time.NewTicker(step.Interval())
	defer ticker.Stop()

	renderer := render.NewScreenRenderer()
	help := "[space] pause  [r] reseed  [q] quit"
	renderer.Draw(screen, s.ctrl.Grid(), append(s.statusLines(), help)...)

	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd := <-commands:
			switch cmd {
			case cmdQuit:
				return nil
			case cmdTogglePause:
				s.togglePause()
			case cmdReseed:
				if err := s.reseed(); err != nil {
					return err
				}
			}
		case <-ticker.C:
			done, err := s.advance()
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
		renderer.Draw(screen, s.ctrl.Grid(), append(s.statusLines(), help)...)
	}
}

// runScreen runs the interactive host on an initialized screen and finalizes
// it before returning.
func runScreen(ctx context.Context, screen tcell.Screen, s *session) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	commands := make(chan command)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return pollInput(egCtx, screen, commands)
	})
	eg.Go(func() error {
		defer screen.Fini()
		defer cancel()
		return s.loop(egCtx, screen, commands)
	})
	return eg.Wait()
}

func runTerminal(ctx context.Context, s *session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[runTerminal] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "[runTerminal] failed to initialize screen")
	}
	return runScreen(ctx, screen, s)
}

func main() {
	fs := flag.NewFlagSet("game-of-life", flag.ContinueOnError)
	headless := fs.Bool("headless", false, "run without a terminal UI and print the final generation")
	config, err := utils.Parse(fs, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	s, err := initializeGame(config, nil)
	if err != nil {
		log.Fatal(err)
	}

	if *headless {
		if err = runHeadless(s, os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = runTerminal(ctx, s); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		s.total, time.Since(s.stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		s.stats.GenerationsPerSecond, s.stats.AveragePopulation)
}
