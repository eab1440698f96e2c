package render

import (
	"image/color"

	"conwaylife/pkg/life"
)

// FillRGBA writes one RGBA pixel per cell of grid into buf in row-major
// order. buf must hold at least 4*grid.Size() bytes.
func FillRGBA(buf []byte, grid life.View, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	n := grid.Length()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			base := (row*n + col) * 4
			if grid.Alive(row, col) {
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
