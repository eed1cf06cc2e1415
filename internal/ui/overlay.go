//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"cubelife/internal/core"
	"cubelife/internal/render"
	"cubelife/pkg/camera"
)

// OverlaySource is the scene state the overlay reads.
type OverlaySource interface {
	GridSize() core.Size
	Pointer() (int, int)
	Pick(screenX, screenY float32) (int, int, bool)
	Camera() *camera.Camera
	Viewport() camera.Viewport
	Perspective() mgl32.Mat4
}

// Overlay draws optional visual aids on top of the 3D view. Keys 1-3 toggle
// the top-down minimap, the hovered-cell outline and the grid border.
type Overlay struct {
	source      OverlaySource
	showMinimap bool
	showHover   bool
	showBorder  bool

	minimapImg *ebiten.Image
	minimapBuf []byte
	pixel      *ebiten.Image
}

// NewOverlay constructs an overlay with the hover outline enabled.
func NewOverlay(source OverlaySource) *Overlay {
	o := &Overlay{source: source, showHover: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showMinimap = !o.showMinimap
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showHover = !o.showHover
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showBorder = !o.showBorder
	}
}

// Draw renders the enabled aids. attrs is the frame's cell attributes.
func (o *Overlay) Draw(screen *ebiten.Image, attrs []render.CellAttr) {
	size := o.source.GridSize()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if o.showBorder {
		o.drawBorder(screen, size)
	}
	if o.showHover {
		mx, my := o.source.Pointer()
		if x, y, ok := o.source.Pick(float32(mx), float32(my)); ok {
			o.drawCellOutline(screen, x, y, size, color.RGBA{R: 250, G: 220, B: 90, A: 220})
		}
	}
	if o.showMinimap {
		o.drawMinimap(screen, attrs, size)
	}
}

func (o *Overlay) project(p mgl32.Vec3) (float64, float64, bool) {
	cam := o.source.Camera()
	sx, sy, _, ok := camera.WorldToScreen(p, o.source.Viewport(), cam.ViewMatrix(), o.source.Perspective())
	return float64(sx), float64(sy), ok
}

func (o *Overlay) drawPolygon(screen *ebiten.Image, pts []mgl32.Vec3, thickness float64, col color.RGBA) {
	for i := range pts {
		x1, y1, ok1 := o.project(pts[i])
		x2, y2, ok2 := o.project(pts[(i+1)%len(pts)])
		if ok1 && ok2 {
			o.drawLine(screen, x1, y1, x2, y2, thickness, col)
		}
	}
}

func (o *Overlay) drawCellOutline(screen *ebiten.Image, x, y int, size core.Size, col color.RGBA) {
	c := camera.CellCenter(x, y, size.W, size.H)
	const h = 0.5
	o.drawPolygon(screen, []mgl32.Vec3{
		{c[0] - h, c[1] - h, 0},
		{c[0] + h, c[1] - h, 0},
		{c[0] + h, c[1] + h, 0},
		{c[0] - h, c[1] + h, 0},
	}, 2, col)
}

func (o *Overlay) drawBorder(screen *ebiten.Image, size core.Size) {
	lo := camera.CellCenter(0, 0, size.W, size.H).Sub(mgl32.Vec3{0.5, 0.5, 0})
	hi := camera.CellCenter(size.W-1, size.H-1, size.W, size.H).Add(mgl32.Vec3{0.5, 0.5, 0})
	o.drawPolygon(screen, []mgl32.Vec3{
		{lo[0], lo[1], 0},
		{hi[0], lo[1], 0},
		{hi[0], hi[1], 0},
		{lo[0], hi[1], 0},
	}, 1, color.RGBA{R: 90, G: 130, B: 170, A: 180})
}

func (o *Overlay) drawMinimap(screen *ebiten.Image, attrs []render.CellAttr, size core.Size) {
	total := size.W * size.H
	if len(attrs) != total {
		return
	}
	if o.minimapImg == nil || o.minimapImg.Bounds().Dx() != size.W || o.minimapImg.Bounds().Dy() != size.H {
		o.minimapImg = ebiten.NewImage(size.W, size.H)
		o.minimapBuf = make([]byte, 4*total)
	}
	render.FillTopDownRGBA(o.minimapBuf, attrs, color.RGBA{R: 12, G: 12, B: 16, A: 200})
	o.minimapImg.WritePixels(o.minimapBuf)

	const (
		margin  = 8
		maxSide = 160.0
	)
	scale := math.Max(1, math.Floor(maxSide/float64(max(size.W, size.H))))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(margin, margin)
	screen.DrawImage(o.minimapImg, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
