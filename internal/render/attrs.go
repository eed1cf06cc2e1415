// Package render turns universe state into per-cell drawing attributes.
package render

import (
	"image/color"
	"math"
)

// CellSource is the readback surface a renderer needs from a universe.
type CellSource interface {
	Len() int
	IsAlive(i int) bool
	HasChanged(i int) bool
}

// CellAttr is the per-instance state fed to the cell renderer.
type CellAttr struct {
	Alive float32
	Tick  float32
}

// Progress returns how far through the generation animation frame is, in [0,1].
func Progress(frame, lifecycle int) float32 {
	if lifecycle <= 1 {
		return 1
	}
	return float32(frame) / float32(lifecycle-1)
}

// FillAttributes writes one CellAttr per cell into dst, growing it if needed.
// Changed cells carry the animation progress; settled cells are complete.
func FillAttributes(dst []CellAttr, src CellSource, frame, lifecycle int) []CellAttr {
	n := src.Len()
	if cap(dst) < n {
		dst = make([]CellAttr, n)
	}
	dst = dst[:n]
	tick := Progress(frame, lifecycle)
	for i := range dst {
		var a CellAttr
		if src.IsAlive(i) {
			a.Alive = 1
		}
		a.Tick = 1
		if src.HasChanged(i) {
			a.Tick = tick
		}
		dst[i] = a
	}
	return dst
}

// BounceOut is the bounce-out easing curve.
func BounceOut(t float32) float32 {
	const (
		a  = 4.0 / 11.0
		b  = 8.0 / 11.0
		c  = 9.0 / 10.0
		ca = 4356.0 / 361.0
		cb = 35442.0 / 1805.0
		cc = 16061.0 / 1805.0
	)
	t2 := t * t
	switch {
	case t < a:
		return 7.5625 * t2
	case t < b:
		return 9.075*t2 - 9.9*t + 3.4
	case t < c:
		return ca*t2 - cb*t + cc
	case t > 1:
		return 1
	default:
		return 10.8*t*t - 20.52*t + 10.72
	}
}

// Smoothstep is the Hermite interpolation between edge0 and edge1.
func Smoothstep(edge0, edge1, x float32) float32 {
	t := clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// Wobble returns the scale of a cell instance: living cells bounce in,
// dead cells shrink away within the first half of the generation.
func Wobble(a CellAttr) float32 {
	birth := BounceOut(a.Tick * 1.2)
	death := 1 - Smoothstep(0, 0.5, a.Tick)
	return a.Alive*birth + (1-a.Alive)*death
}

var (
	baseColor  = [3]float32{0.6, 0.6, 0.6}
	birthColor = [3]float32{0.0, 0.6, 0.0}
	deathColor = [3]float32{0.6, 0.0, 0.0}
	ambient    = [3]float32{0.3, 0.3, 0.3}
)

// CellColor shades a cell. Newborn cells start green and fade to grey;
// dying cells redden quickly. light is the diffuse intensity in [0,1].
func CellColor(a CellAttr, light float32) color.RGBA {
	born := mix(birthColor, baseColor, a.Tick)
	died := mix(baseColor, deathColor, clamp01(a.Tick*2.5))
	light = clamp01(light)
	var out color.RGBA
	ch := func(i int) uint8 {
		diffuse := a.Alive*born[i] + (1-a.Alive)*died[i]
		return toByte(ambient[i] + light*diffuse)
	}
	out.R, out.G, out.B, out.A = ch(0), ch(1), ch(2), 255
	return out
}

func mix(x, y [3]float32, t float32) [3]float32 {
	return [3]float32{
		x[0] + (y[0]-x[0])*t,
		x[1] + (y[1]-x[1])*t,
		x[2] + (y[2]-x[2])*t,
	}
}

func clamp01(v float32) float32 {
	return float32(math.Max(0, math.Min(1, float64(v))))
}

func toByte(v float32) uint8 {
	return uint8(math.Round(float64(clamp01(v)) * 255))
}
