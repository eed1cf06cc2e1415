package render

import "image/color"

// FillTopDownRGBA renders attrs as one pixel per cell into buf, row-major.
// Cells whose wobble has shrunk to nothing take the background colour.
func FillTopDownRGBA(buf []byte, attrs []CellAttr, background color.Color) {
	rBg, gBg, bBg, aBg := background.RGBA()
	for i, a := range attrs {
		base := i * 4
		if Wobble(a) <= 0.01 {
			buf[base+0] = uint8(rBg >> 8)
			buf[base+1] = uint8(gBg >> 8)
			buf[base+2] = uint8(bBg >> 8)
			buf[base+3] = uint8(aBg >> 8)
			continue
		}
		col := CellColor(a, 1)
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
