//go:build ebiten

package app

import (
	"image/color"

	"cubelife/internal/render"
	"cubelife/internal/ui"
	"cubelife/pkg/camera"
	"cubelife/pkg/engine"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Scene to the ebiten.Game interface.
type Game struct {
	scene   *Scene
	painter *render.CellPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	attrs   []render.CellAttr

	background color.Color
}

// New constructs a Game for scene with a status panel hudWidth pixels wide.
func New(scene *Scene, title string, hudWidth int) *Game {
	g := &Game{
		scene:      scene,
		painter:    render.NewCellPainter(),
		hud:        ui.NewHUD(scene, title, hudWidth),
		overlay:    ui.NewOverlay(scene),
		background: color.RGBA{R: 8, G: 8, B: 12, A: 255},
	}
	g.hud.Place(scene.Viewport().W)
	return g
}

// Update maps input to engine and camera calls, then runs one scene frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	eng := g.scene.Engine()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		eng.StartStop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		eng.Trigger(engine.Randomize)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		eng.Trigger(engine.Clear)
	}
	if justPressedAny(ebiten.KeyArrowUp, ebiten.KeyEqual, ebiten.KeyNumpadAdd) {
		eng.ChangeLifecycle(1)
	}
	if justPressedAny(ebiten.KeyArrowDown, ebiten.KeyMinus, ebiten.KeyNumpadSubtract) {
		eng.ChangeLifecycle(-1)
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.scene.Zoom(float32(-dy))
	}

	g.hud.Update(g.scene.Viewport().W)
	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !g.hud.Contains(mx, my) {
		eng.StartPainting()
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		eng.StopPainting()
	}
	g.scene.Paint(mx, my)

	g.overlay.Update()
	g.scene.Update()
	return nil
}

func justPressedAny(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.attrs = g.scene.Attributes(g.attrs)
	size := g.scene.GridSize()
	vp := g.scene.Viewport()
	g.painter.Draw(screen, g.attrs, size.W, size.H, vp, g.scene.Camera().ViewMatrix(), g.scene.Perspective())
	g.overlay.Draw(screen, g.attrs)
	g.hud.Draw(screen, vp.W, screen.Bounds().Dy())
}

// Layout keeps the scene viewport in sync with the window, leaving room for
// the HUD on the right.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := max(1, outsideWidth-g.hud.Width())
	vp := camera.Viewport{W: w, H: outsideHeight}
	if vp != g.scene.Viewport() {
		g.scene.Resize(vp)
	}
	g.hud.Place(w)
	return outsideWidth, outsideHeight
}
