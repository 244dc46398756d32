//go:build ebiten

package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hichamlamine/game-of-life/game"
	"github.com/hichamlamine/game-of-life/utils"
)

// Game adapts a game.Controller to the ebiten.Game interface.
type Game struct {
	ctrl *game.Controller
	step *utils.FixedStep

	cellSize int
	img      *ebiten.Image
	buf      []byte

	onColor  color.Color
	offColor color.Color
}

// New constructs a Game drawing each cell as a cellSize square.
func New(ctrl *game.Controller, cellSize int) *Game {
	w, h := ctrl.Grid().Dimensions()
	return &Game{
		ctrl:     ctrl,
		step:     utils.NewFixedStep(ctrl.TickRate()),
		cellSize: cellSize,
		img:      ebiten.NewImage(w, h),
		buf:      make([]byte, 4*w*h),
		onColor:  color.White,
		offColor: color.Black,
	}
}

// Update handles key commands and ticks the simulation at its configured rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.ctrl.ResetAndReseed(g.ctrl.SeedCount()); err != nil {
			return err
		}
	}
	if g.step.ShouldStep() {
		return g.ctrl.Tick()
	}
	return nil
}

// Draw renders the current generation and the generation counter.
func (g *Game) Draw(screen *ebiten.Image) {
	fillCellsRGBA(g.buf, g.ctrl.Grid(), g.onColor, g.offColor)
	g.img.WritePixels(g.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.cellSize), float64(g.cellSize))
	screen.DrawImage(g.img, op)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("Generation: %d (%s)", g.ctrl.Generation(), g.ctrl.RunState()))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.ctrl.Grid().Dimensions()
	return w * g.cellSize, h * g.cellSize
}
