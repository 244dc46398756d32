package render

import (
	"bufio"
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/hichamlamine/game-of-life/model"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "
)

// Grid is the read side of a simulation that renderers draw from.
type Grid interface {
	Dimensions() (int, int)
	Alive(x, y int) bool
}

var _ Grid = model.View{}

// TerminalRenderer writes frames as plain text, two columns per cell.
type TerminalRenderer struct{}

// Display renders the grid to w, one line per row
func (r *TerminalRenderer) Display(w io.Writer, g Grid) error {
	bw := bufio.NewWriter(w)
	width, height := g.Dimensions()
	for y := range height {
		for x := range width {
			if g.Alive(x, y) {
				bw.WriteString(gridPosBlock)
			} else {
				bw.WriteString(gridPosEmpty)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// ScreenRenderer draws cells and a status line onto a tcell screen.
type ScreenRenderer struct {
	Alive tcell.Style
	Dead  tcell.Style
	Text  tcell.Style
}

// NewScreenRenderer uses white live cells on a black background.
func NewScreenRenderer() *ScreenRenderer {
	return &ScreenRenderer{
		Alive: tcell.StyleDefault.Background(tcell.ColorWhite),
		Dead:  tcell.StyleDefault.Background(tcell.ColorBlack),
		Text:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	}
}

// Draw paints the grid starting at row 0 and status lines beneath it, then
// shows the frame.
func (r *ScreenRenderer) Draw(screen tcell.Screen, g Grid, status ...string) {
	screen.Clear()
	width, height := g.Dimensions()
	for y := range height {
		for x := range width {
			style := r.Dead
			if g.Alive(x, y) {
				style = r.Alive
			}
			screen.SetContent(x*2, y, ' ', nil, style)
			screen.SetContent(x*2+1, y, ' ', nil, style)
		}
	}
	for i, line := range status {
		col := 0
		for _, ch := range line {
			screen.SetContent(col, height+i, ch, nil, r.Text)
			col++
		}
	}
	screen.Show()
}
