package core

// Torus describes a W×H grid stored in row-major order whose edges wrap.
type Torus struct {
	W, H int
}

// Len returns the number of cells on the torus.
func (t Torus) Len() int { return t.W * t.H }

// Index returns the linear slice index for coordinates (x, y).
func (t Torus) Index(x, y int) int { return y*t.W + x }

// Coords is the inverse of Index.
func (t Torus) Coords(idx int) (int, int) { return idx % t.W, idx / t.W }

// Wrap applies toroidal wrapping to the provided coordinates.
func (t Torus) Wrap(x, y int) (int, int) {
	x = (x%t.W + t.W) % t.W
	y = (y%t.H + t.H) % t.H
	return x, y
}

// Neighbors writes the indices of the eight cells surrounding (x, y) into
// dst. Offsets are added as W-1/H-1 so x and y must already be in range.
func (t Torus) Neighbors(x, y int, dst *[8]int) {
	n := 0
	for _, dy := range [3]int{t.H - 1, 0, 1} {
		for _, dx := range [3]int{t.W - 1, 0, 1} {
			if dx == 0 && dy == 0 {
				continue
			}
			dst[n] = t.Index((x+dx)%t.W, (y+dy)%t.H)
			n++
		}
	}
}
