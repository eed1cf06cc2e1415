package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ScreenRay converts a pixel position into a normalized world-space direction
// leaving the camera.
func ScreenRay(sx, sy float32, vp Viewport, view, perspective mgl32.Mat4) mgl32.Vec3 {
	ndcX := 2*sx/float32(vp.W) - 1
	ndcY := 1 - 2*sy/float32(vp.H)
	clip := mgl32.Vec4{ndcX, ndcY, -1, 1}

	eye := perspective.Inv().Mul4x1(clip)
	// Keep only the direction; the near-plane depth is irrelevant for picking.
	eye[2], eye[3] = -1, 0

	world := view.Inv().Mul4x1(eye).Vec3()
	return world.Normalize()
}

// ScreenToCell returns the grid cell under pixel (sx, sy). ok is false when the
// ray misses the grid, which is the common case for an off-grid pointer.
func ScreenToCell(sx, sy float32, vp Viewport, cam *Camera, perspective mgl32.Mat4, gridW, gridH int) (x, y int, ok bool) {
	if vp.W <= 0 || vp.H <= 0 {
		return 0, 0, false
	}
	ray := ScreenRay(sx, sy, vp, cam.view, perspective)
	if ray[2] == 0 {
		return 0, 0, false
	}
	pos := cam.position
	t := float64(-pos[2] / ray[2])
	if !(t > 0) || math.IsInf(t, 0) {
		return 0, 0, false
	}
	wx := pos[0] + ray[0]*float32(t)
	wy := pos[1] + ray[1]*float32(t)

	gx := math.Floor(float64(wx + float32(gridW)/2 + 0.5))
	gy := math.Floor(float64(wy + float32(gridH)/2 + 0.5))
	// Written so that NaN coordinates fall through to a miss.
	if !(gx >= 0 && gx < float64(gridW) && gy >= 0 && gy < float64(gridH)) {
		return 0, 0, false
	}
	return int(gx), int(gy), true
}

// WorldToScreen projects p onto the viewport. depth is the normalized device
// depth; ok is false for points behind the camera.
func WorldToScreen(p mgl32.Vec3, vp Viewport, view, perspective mgl32.Mat4) (sx, sy, depth float32, ok bool) {
	clip := perspective.Mul4(view).Mul4x1(p.Vec4(1))
	if clip[3] <= 0 {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip[3])
	sx = (ndc[0] + 1) / 2 * float32(vp.W)
	sy = (1 - ndc[1]) / 2 * float32(vp.H)
	return sx, sy, ndc[2], true
}
