package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var up = mgl32.Vec3{0, 1, 0}

func TestBuildViewMovesEyeToOrigin(t *testing.T) {
	eye := mgl32.Vec3{3, -2, 25}
	view := BuildView(eye, mgl32.Vec3{0, 0, 0}, up)
	got := view.Mul4x1(eye.Vec4(1))
	for i := 0; i < 3; i++ {
		if math.Abs(float64(got[i])) > 1e-4 {
			t.Fatalf("eye maps to %v, want origin", got)
		}
	}
	// The target lies straight ahead on the -z axis in eye space.
	ahead := view.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if ahead[2] >= 0 || math.Abs(float64(ahead[0])) > 1e-4 || math.Abs(float64(ahead[1])) > 1e-4 {
		t.Fatalf("target in eye space = %v, want on -z axis", ahead)
	}
}

func TestCenterPixelPicksCenterCell(t *testing.T) {
	vp := Viewport{W: 800, H: 600}
	proj := vp.Perspective(DefaultFovY, 0.1, 1024)
	for _, z := range []float32{25, -25} {
		cam := New(mgl32.Vec3{0, 0, z}, mgl32.Vec3{0, 0, 0}, up)
		for _, dims := range [][2]int{{60, 60}, {10, 8}, {2, 2}} {
			x, y, ok := ScreenToCell(400, 300, vp, cam, proj, dims[0], dims[1])
			if !ok || x != dims[0]/2 || y != dims[1]/2 {
				t.Fatalf("z=%v grid %v: got (%d,%d,%v), want (%d,%d,true)", z, dims, x, y, ok, dims[0]/2, dims[1]/2)
			}
		}
	}
}

func TestOffGridPixelMisses(t *testing.T) {
	vp := Viewport{W: 800, H: 600}
	proj := vp.Perspective(DefaultFovY, 0.1, 1024)
	cam := New(mgl32.Vec3{0, 0, 25}, mgl32.Vec3{0, 0, 0}, up)
	for _, px := range [][2]float32{{0, 0}, {799, 599}, {-4000, 300}, {400, 9000}} {
		if x, y, ok := ScreenToCell(px[0], px[1], vp, cam, proj, 10, 10); ok {
			t.Errorf("pixel %v picked (%d,%d), want miss", px, x, y)
		}
	}
}

func TestRayParallelToPlaneMisses(t *testing.T) {
	vp := Viewport{W: 640, H: 480}
	proj := vp.Perspective(DefaultFovY, 0.1, 1024)
	// Eye on the plane looking along it: the centre ray never crosses z = 0.
	cam := New(mgl32.Vec3{0, -40, 0}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1})
	if _, _, ok := ScreenToCell(320, 240, vp, cam, proj, 10, 10); ok {
		t.Fatal("ray parallel to the grid should miss")
	}
}

func TestDegenerateViewMisses(t *testing.T) {
	vp := Viewport{W: 800, H: 600}
	proj := vp.Perspective(DefaultFovY, 0.1, 1024)
	cams := map[string]*Camera{
		"up along view": New(mgl32.Vec3{0, 0, -25}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1}),
		"eye on target": New(mgl32.Vec3{0, 0, -25}, mgl32.Vec3{0, 0, -25}, up),
	}
	for name, cam := range cams {
		if x, y, ok := ScreenToCell(400, 300, vp, cam, proj, 10, 10); ok {
			t.Fatalf("%s: picked (%d,%d) from a degenerate view", name, x, y)
		}
	}
}

func TestProjectionRoundTrip(t *testing.T) {
	vp := Viewport{W: 1024, H: 768}
	proj := vp.Perspective(DefaultFovY, 0.1, 1024)
	cam := New(mgl32.Vec3{0, 0, -25}, mgl32.Vec3{0, 8, 1}, up)
	const w, h = 30, 20
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx, sy, _, visible := WorldToScreen(CellCenter(x, y, w, h), vp, cam.ViewMatrix(), proj)
			if !visible {
				t.Fatalf("cell (%d,%d) projected behind the camera", x, y)
			}
			gx, gy, ok := ScreenToCell(sx, sy, vp, cam, proj, w, h)
			if !ok || gx != x || gy != y {
				t.Fatalf("cell (%d,%d) -> pixel (%.2f,%.2f) -> (%d,%d,%v)", x, y, sx, sy, gx, gy, ok)
			}
		}
	}
}

func TestZeroViewportMisses(t *testing.T) {
	cam := New(mgl32.Vec3{0, 0, 25}, mgl32.Vec3{}, up)
	if _, _, ok := ScreenToCell(0, 0, Viewport{}, cam, mgl32.Ident4(), 4, 4); ok {
		t.Fatal("empty viewport should never pick")
	}
}

func TestZoomSettlesWithoutOvershoot(t *testing.T) {
	cam := New(mgl32.Vec3{0, 0, 25}, mgl32.Vec3{}, up)
	cam.Shift(-5)
	if cam.Destination()[2] != 20 {
		t.Fatalf("destination z = %v, want 20", cam.Destination()[2])
	}
	steps := 0
	for !cam.Settled() {
		if !cam.Step() {
			t.Fatal("Step reported no motion while unsettled")
		}
		if z := cam.Position()[2]; z < 20-1e-3 || z > 25+1e-3 {
			t.Fatalf("step %d: z = %v escaped [20,25]", steps, z)
		}
		steps++
		if steps > 1000 {
			t.Fatal("zoom never settled")
		}
	}
	if cam.Position()[2] != 20 {
		t.Fatalf("settled z = %v, want 20", cam.Position()[2])
	}
	if cam.Step() {
		t.Fatal("a settled camera should not move")
	}
}

func TestZoomClampsAndKeepsSide(t *testing.T) {
	cam := New(mgl32.Vec3{0, 0, -25}, mgl32.Vec3{0, 8, 1}, up)
	cam.Shift(100)
	if got := cam.Destination()[2]; got != -30 {
		t.Fatalf("destination z = %v, want -30", got)
	}
	cam.Shift(-100)
	if got := cam.Destination()[2]; got != -10 {
		t.Fatalf("destination z = %v, want -10", got)
	}
	for i := 0; i < 1000 && !cam.Settled(); i++ {
		cam.Step()
	}
	if got := cam.Position()[2]; got != -10 {
		t.Fatalf("settled z = %v, want -10", got)
	}
}

func TestZoomRebuildsViewMatrix(t *testing.T) {
	cam := New(mgl32.Vec3{0, 0, 25}, mgl32.Vec3{}, up)
	before := cam.ViewMatrix()
	cam.Shift(-3)
	cam.Step()
	if cam.ViewMatrix() == before {
		t.Fatal("view matrix not rebuilt after a zoom step")
	}
}
