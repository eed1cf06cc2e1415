//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"cubelife/pkg/camera"
)

const (
	cellHalf       = 0.45
	cellLight      = 0.8
	maxBatchQuads  = 4096
	minVisibleSize = 0.01
)

// CellPainter draws every visible cell as a projected quad on the grid plane.
type CellPainter struct {
	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewCellPainter allocates the painter's source texture.
func NewCellPainter() *CellPainter {
	base := ebiten.NewImage(3, 3)
	base.Fill(color.White)
	return &CellPainter{white: base.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)}
}

// Draw projects and fills each cell, scaled by its wobble.
func (p *CellPainter) Draw(screen *ebiten.Image, attrs []CellAttr, gridW, gridH int, vp camera.Viewport, view, perspective mgl32.Mat4) {
	if gridW <= 0 || gridH <= 0 {
		return
	}
	p.vertices = p.vertices[:0]
	p.indices = p.indices[:0]
	for i, a := range attrs {
		w := Wobble(a)
		if w <= minVisibleSize {
			continue
		}
		x, y := i%gridW, i/gridW
		c := camera.CellCenter(x, y, gridW, gridH)
		h := cellHalf * w
		corners := [4]mgl32.Vec3{
			{c[0] - h, c[1] - h, 0},
			{c[0] + h, c[1] - h, 0},
			{c[0] + h, c[1] + h, 0},
			{c[0] - h, c[1] + h, 0},
		}
		var pts [4][2]float32
		visible := true
		for k, corner := range corners {
			sx, sy, _, ok := camera.WorldToScreen(corner, vp, view, perspective)
			if !ok {
				visible = false
				break
			}
			pts[k] = [2]float32{sx, sy}
		}
		if !visible {
			continue
		}
		p.addQuad(pts, CellColor(a, cellLight))
		if len(p.vertices) >= maxBatchQuads*4 {
			p.flush(screen)
		}
	}
	p.flush(screen)
}

func (p *CellPainter) addQuad(pts [4][2]float32, col color.RGBA) {
	base := uint16(len(p.vertices))
	r, g, b, a := float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, float32(col.A)/255
	for _, pt := range pts {
		p.vertices = append(p.vertices, ebiten.Vertex{
			DstX: pt[0], DstY: pt[1],
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	p.indices = append(p.indices, base, base+1, base+2, base, base+2, base+3)
}

func (p *CellPainter) flush(screen *ebiten.Image) {
	if len(p.indices) == 0 {
		return
	}
	screen.DrawTriangles(p.vertices, p.indices, p.white, &ebiten.DrawTrianglesOptions{})
	p.vertices = p.vertices[:0]
	p.indices = p.indices[:0]
}
