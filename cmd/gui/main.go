//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hichamlamine/game-of-life/game"
	"github.com/hichamlamine/game-of-life/internal/gui"
	"github.com/hichamlamine/game-of-life/utils"
)

func main() {
	config, err := utils.Parse(flag.NewFlagSet("game-of-life-gui", flag.ExitOnError), os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	ctrl, err := game.Start(config, nil)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetWindowSize(config.Width*config.CellSize, config.Height*config.CellSize)

	if err := ebiten.RunGame(gui.New(ctrl, config.CellSize)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
