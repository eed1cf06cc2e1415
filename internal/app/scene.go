// Package app drives the per-frame interaction protocol shared by the
// windowed and terminal front-ends.
package app

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"cubelife/internal/config"
	"cubelife/internal/core"
	"cubelife/internal/render"
	"cubelife/internal/telemetry"
	"cubelife/pkg/camera"
	"cubelife/pkg/engine"
	"cubelife/pkg/sims/life"
)

// FrameResult summarises what a call to Scene.Update did.
type FrameResult struct {
	Command    engine.Command
	HasCommand bool
	Stepped    bool
	Generation int
}

// Scene owns a universe, its engine and the camera looking at it.
type Scene struct {
	universe    *life.Universe
	engine      *engine.Engine
	camera      *camera.Camera
	viewport    camera.Viewport
	perspective mgl32.Mat4
	cfg         *config.Config

	generation int
	recorder   telemetry.Recorder
	logger     *slog.Logger
}

// NewScene builds a scene from cfg and seeds the universe with the configured
// pattern, or a random fill when none is set.
func NewScene(cfg *config.Config) (*Scene, error) {
	u, err := life.New(cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.Seed)
	if err != nil {
		return nil, err
	}
	s := &Scene{
		universe: u,
		engine:   engine.New(cfg.Lifecycle()),
		camera:   cfg.NewCamera(),
		cfg:      cfg,
		logger:   slog.Default(),
	}
	s.Resize(cfg.Viewport())
	if err := s.Seed(cfg.Grid.Pattern); err != nil {
		return nil, err
	}
	return s, nil
}

// Seed replaces the universe contents with the named pattern centred on the
// grid. An empty name refills the grid randomly from the configured seed.
func (s *Scene) Seed(pattern string) error {
	if pattern == "" {
		s.universe.Reseed(s.cfg.Grid.Seed)
		s.universe.Randomize()
		return nil
	}
	p, err := core.LookupPattern(pattern)
	if err != nil {
		return err
	}
	ox, oy := p.Origin(core.Size{W: s.universe.Width(), H: s.universe.Height()})
	s.universe.Clear()
	s.universe.Stamp(p.Cells, ox, oy)
	return nil
}

// SetLogger replaces the scene logger. nil restores slog.Default().
func (s *Scene) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	s.logger = l
}

// SetRecorder installs r to receive a row per generation and per command.
// The current state is recorded immediately as the start row.
func (s *Scene) SetRecorder(r telemetry.Recorder) {
	s.recorder = r
	s.record(telemetry.EventStart)
}

// Resize updates the viewport and its perspective projection.
func (s *Scene) Resize(vp camera.Viewport) {
	s.viewport = vp
	s.perspective = s.cfg.Perspective(vp)
}

// Universe returns the simulated grid.
func (s *Scene) Universe() *life.Universe { return s.universe }

// Engine returns the pacing state machine.
func (s *Scene) Engine() *engine.Engine { return s.engine }

// Camera returns the view camera.
func (s *Scene) Camera() *camera.Camera { return s.camera }

// Viewport returns the current screen size.
func (s *Scene) Viewport() camera.Viewport { return s.viewport }

// Perspective returns the projection matrix for the current viewport.
func (s *Scene) Perspective() mgl32.Mat4 { return s.perspective }

// GridSize returns the universe dimensions.
func (s *Scene) GridSize() core.Size {
	return core.Size{W: s.universe.Width(), H: s.universe.Height()}
}

// Pointer returns the last pointer position passed to Paint.
func (s *Scene) Pointer() (int, int) { return s.engine.Mouse() }

// Generation returns the number of generations stepped so far.
func (s *Scene) Generation() int { return s.generation }

// Pick returns the grid cell under the screen pixel, if any.
func (s *Scene) Pick(screenX, screenY float32) (int, int, bool) {
	return camera.ScreenToCell(screenX, screenY, s.viewport, s.camera, s.perspective,
		s.universe.Width(), s.universe.Height())
}

// Paint records the pointer position and, while a paint gesture is active,
// toggles the cell under it unless that cell was the last one painted.
// It reports whether a cell was toggled.
func (s *Scene) Paint(screenX, screenY int) bool {
	s.engine.SetMouse(screenX, screenY)
	if !s.engine.IsPainting() {
		return false
	}
	x, y, ok := s.Pick(float32(screenX), float32(screenY))
	if !ok {
		return false
	}
	return s.PaintCell(x, y)
}

// PaintCell applies the paint gesture to a cell picked by the caller.
func (s *Scene) PaintCell(x, y int) bool {
	if !s.engine.IsPainting() || s.engine.AlreadyPainted(x, y) {
		return false
	}
	s.universe.Toggle(x, y)
	s.engine.MarkPainted(x, y)
	return true
}

// Zoom shifts the camera's zoom destination by steps zoom increments.
func (s *Scene) Zoom(steps float32) {
	s.camera.Shift(steps * s.cfg.Camera.ZoomStep)
}

// Update runs the command, frame and generation steps of one visual frame.
// Commands are applied and the frame rewound before the frame advances so a
// fresh fill always animates from frame zero.
func (s *Scene) Update() FrameResult {
	var res FrameResult
	if cmd, ok := s.engine.PollCommand(); ok {
		res.Command, res.HasCommand = cmd, true
		s.apply(cmd)
	}
	s.engine.AdvanceFrame()
	if s.engine.IsNewGeneration() {
		s.universe.Step()
		s.generation++
		res.Stepped = true
		s.record(telemetry.EventStep)
	}
	s.camera.Step()
	res.Generation = s.generation
	return res
}

func (s *Scene) apply(cmd engine.Command) {
	switch cmd {
	case engine.Randomize:
		s.universe.Randomize()
		s.record(telemetry.EventRandomize)
	case engine.Clear:
		s.universe.Clear()
		s.record(telemetry.EventClear)
	default:
		return
	}
	s.engine.ResetFrame()
	s.logger.Debug("command applied", "command", cmd.String(), "generation", s.generation,
		"population", s.universe.Population())
}

func (s *Scene) record(event telemetry.Event) {
	if s.recorder == nil {
		return
	}
	row := telemetry.Collect(s.universe, s.generation, event)
	if err := s.recorder.Record(row); err != nil {
		s.logger.Warn("telemetry disabled", "err", err)
		s.recorder = nil
	}
}

// Attributes fills dst with the render attributes of every cell.
func (s *Scene) Attributes(dst []render.CellAttr) []render.CellAttr {
	return render.FillAttributes(dst, s.universe, s.engine.Frame(), s.engine.Lifecycle())
}

// Parameters reports the scene state for status panels.
func (s *Scene) Parameters() core.ParameterSnapshot {
	mx, my := s.engine.Mouse()
	pos := s.camera.Position()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "engine", Params: []core.Parameter{
			core.StringParam("state", "State", s.engine.State().String()),
			core.IntParam("lifecycle", "Lifecycle", s.engine.Lifecycle()),
			core.IntParam("frame", "Frame", s.engine.Frame()),
			core.IntParam("generation", "Generation", s.generation),
		}},
		{Name: "grid", Params: []core.Parameter{
			core.StringParam("size", "Size", fmt.Sprintf("%dx%d", s.universe.Width(), s.universe.Height())),
			core.IntParam("population", "Population", s.universe.Population()),
		}},
		{Name: "camera", Params: []core.Parameter{
			core.FloatParam("distance", "Distance", float64(abs32(pos[2])), 1),
			core.BoolParam("settled", "Settled", s.camera.Settled()),
		}},
		{Name: "pointer", Params: []core.Parameter{
			core.StringParam("mouse", "Mouse", fmt.Sprintf("%d,%d", mx, my)),
			core.BoolParam("painting", "Painting", s.engine.IsPainting()),
		}},
	}}
}

// ParameterControls lists the values the HUD can adjust.
func (s *Scene) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "lifecycle", Label: "Lifecycle", Type: core.ParamTypeInt, Step: 1,
			Min: engine.MinLifecycle, Max: engine.MaxLifecycle, HasMin: true, HasMax: true},
		{Key: "distance", Label: "Distance", Type: core.ParamTypeFloat, Step: float64(s.cfg.Camera.ZoomStep),
			Min: float64(s.cfg.Camera.ZoomMin), Max: float64(s.cfg.Camera.ZoomMax), HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies a HUD change to an integer control.
func (s *Scene) SetIntParameter(key string, value int) bool {
	if key != "lifecycle" {
		return false
	}
	s.engine.SetLifecycle(value)
	return true
}

// SetFloatParameter applies a HUD change to a floating-point control.
func (s *Scene) SetFloatParameter(key string, value float64) bool {
	if key != "distance" {
		return false
	}
	dest := s.camera.Destination()
	s.camera.Shift(float32(value) - abs32(dest[2]))
	return true
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
