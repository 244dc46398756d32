package gui

import "image/color"

// Cells is the read side of the simulation the window draws.
type Cells interface {
	Dimensions() (int, int)
	Alive(x, y int) bool
}

// fillCellsRGBA writes one RGBA pixel per cell into buf, row-major.
func fillCellsRGBA(buf []byte, cells Cells, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	w, h := cells.Dimensions()
	for y := range h {
		for x := range w {
			base := (y*w + x) * 4
			if cells.Alive(x, y) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}
