package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ZoomConfig bounds the dolly zoom. Min and Max are distances from the grid
// plane; Frequency is the spring's natural frequency in cycles per frame.
type ZoomConfig struct {
	Min, Max  float32
	Frequency float32
}

// DefaultZoom returns the stock zoom range.
func DefaultZoom() ZoomConfig {
	return ZoomConfig{Min: 10, Max: 30, Frequency: 0.05}
}

const settleEpsilon = 1e-3

type zoomState struct {
	cfg         ZoomConfig
	destination mgl32.Vec3
	velocity    mgl32.Vec3
	offset0     mgl32.Vec3
	velocity0   mgl32.Vec3
	elapsed     float32
	moving      bool
}

func (z *zoomState) reset(position mgl32.Vec3) {
	z.destination = position
	z.velocity = mgl32.Vec3{}
	z.elapsed = 0
	z.moving = false
}

// SetZoom replaces the zoom bounds.
func (c *Camera) SetZoom(cfg ZoomConfig) {
	if cfg.Min > cfg.Max {
		cfg.Min, cfg.Max = cfg.Max, cfg.Min
	}
	c.zoom.cfg = cfg
}

// Destination returns where the zoom spring is heading.
func (c *Camera) Destination() mgl32.Vec3 { return c.zoom.destination }

// Settled reports whether the zoom spring has come to rest.
func (c *Camera) Settled() bool { return !c.zoom.moving }

// Shift moves the zoom destination delta units away from the grid plane,
// clamped to the configured range, and restarts the spring from the
// current position and velocity.
func (c *Camera) Shift(delta float32) {
	z := &c.zoom
	dest := z.destination
	side := float32(1)
	if dest[2] < 0 {
		side = -1
	}
	dist := mgl32.Clamp(side*dest[2]+delta, z.cfg.Min, z.cfg.Max)
	dest[2] = side * dist

	z.destination = dest
	z.offset0 = c.position.Sub(dest)
	z.velocity0 = z.velocity
	z.elapsed = 0
	z.moving = true
}

// Step advances the zoom spring by one frame and rebuilds the view matrix.
// It reports whether the camera moved.
func (c *Camera) Step() bool {
	z := &c.zoom
	if !z.moving {
		return false
	}
	z.elapsed++
	omega := 2 * math.Pi * float64(z.cfg.Frequency)
	t := float64(z.elapsed)
	decay := float32(math.Exp(-omega * t))

	// Critically damped: x(t) = (x0 + (v0 + w*x0) t) e^(-wt).
	w := float32(omega)
	tf := float32(t)
	b := z.velocity0.Add(z.offset0.Mul(w))
	offset := z.offset0.Add(b.Mul(tf)).Mul(decay)
	z.velocity = z.velocity0.Sub(b.Mul(w * tf)).Mul(decay)

	if offset.Len() < settleEpsilon && z.velocity.Len() < settleEpsilon {
		offset = mgl32.Vec3{}
		z.velocity = mgl32.Vec3{}
		z.moving = false
	}
	c.position = z.destination.Add(offset)
	c.rebuild()
	return true
}
