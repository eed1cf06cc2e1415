// Package camera provides the 3D view transform and the inverse projection
// used to pick grid cells under the mouse pointer.
//
// The grid rests on the world plane z = 0 with cell (x, y) centred at
// (x - W/2, y - H/2, 0), matching the instance layout used by the renderers.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a right-handed look-at view with an optional damped dolly zoom.
type Camera struct {
	position mgl32.Vec3
	target   mgl32.Vec3
	up       mgl32.Vec3
	view     mgl32.Mat4

	zoom zoomState
}

// New builds a camera at position looking at target.
func New(position, target, up mgl32.Vec3) *Camera {
	c := &Camera{position: position, target: target, up: up}
	c.zoom.cfg = DefaultZoom()
	c.zoom.destination = position
	c.rebuild()
	return c
}

// BuildView returns the right-handed look-at transform for the given frame.
func BuildView(position, target, up mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(position, target, up)
}

func (c *Camera) rebuild() {
	c.view = BuildView(c.position, c.target, c.up)
}

// Position returns the eye position in world space.
func (c *Camera) Position() mgl32.Vec3 { return c.position }

// Target returns the point the camera looks at.
func (c *Camera) Target() mgl32.Vec3 { return c.target }

// Up returns the up hint used to build the view.
func (c *Camera) Up() mgl32.Vec3 { return c.up }

// ViewMatrix returns the current world-to-eye transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 { return c.view }

// LookAt moves the camera and cancels any zoom in flight.
func (c *Camera) LookAt(position, target, up mgl32.Vec3) {
	c.position, c.target, c.up = position, target, up
	c.zoom.reset(position)
	c.rebuild()
}

// Viewport is the size of the drawing surface in pixels.
type Viewport struct {
	W, H int
}

// Aspect returns the width to height ratio.
func (v Viewport) Aspect() float32 {
	if v.H == 0 {
		return 1
	}
	return float32(v.W) / float32(v.H)
}

// Perspective builds a projection for the viewport. fovy is in radians.
func (v Viewport) Perspective(fovy, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(fovy, v.Aspect(), near, far)
}

// DefaultFovY is the vertical field of view used by the front-ends.
const DefaultFovY = float32(math.Pi / 3)

// CellCenter returns the world-space centre of cell (x, y) on a w×h grid.
func CellCenter(x, y, w, h int) mgl32.Vec3 {
	return mgl32.Vec3{float32(x) - float32(w)/2, float32(y) - float32(h)/2, 0}
}
