package life

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func mustNew(t *testing.T, w, h int) *Universe {
	t.Helper()
	u, err := New(w, h, 1)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", w, h, err)
	}
	return u
}

func expectAlive(t *testing.T, u *Universe, alive map[[2]int]bool, stage string) {
	t.Helper()
	for y := 0; y < u.Height(); y++ {
		for x := 0; x < u.Width(); x++ {
			got := u.Cell(x, y).Alive
			if got != alive[[2]int{x, y}] {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", stage, x, y, got, alive[[2]int{x, y}])
			}
		}
	}
}

func TestNewRejectsEmptyDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {0, 0}, {-3, 4}} {
		if _, err := New(dims[0], dims[1], 1); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("New(%d,%d) err = %v, want ErrInvalidSize", dims[0], dims[1], err)
		}
	}
}

func TestNewStartsDeadAndChanged(t *testing.T) {
	u := mustNew(t, 4, 3)
	if u.Len() != 12 {
		t.Fatalf("Len() = %d, want 12", u.Len())
	}
	for i := 0; i < u.Len(); i++ {
		if u.IsAlive(i) || !u.HasChanged(i) {
			t.Fatalf("cell %d alive=%v changed=%v, want dead and changed", i, u.IsAlive(i), u.HasChanged(i))
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	u := mustNew(t, 5, 5)
	u.Stamp([][2]int{{1, 2}, {2, 2}, {3, 2}}, 0, 0)

	u.Step()
	expectAlive(t, u, map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}, "after first step")
	for _, xy := range [][2]int{{1, 2}, {3, 2}, {2, 1}, {2, 3}} {
		if !u.Cell(xy[0], xy[1]).Changed {
			t.Fatalf("cell %v should be marked changed", xy)
		}
	}
	if u.Cell(2, 2).Changed {
		t.Fatal("centre cell survived and must not be marked changed")
	}

	u.Step()
	expectAlive(t, u, map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}, "after second step")
}

func TestStillLifeBlockUnchanged(t *testing.T) {
	u := mustNew(t, 6, 6)
	u.Stamp([][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, 2, 2)
	before := u.String()

	u.Step()

	if got := u.String(); got != before {
		t.Fatalf("block changed:\n%s\nwant:\n%s", got, before)
	}
	for i := 0; i < u.Len(); i++ {
		if u.HasChanged(i) {
			t.Fatalf("cell %d marked changed in a still life", i)
		}
	}
}

func TestStepWrapsAcrossEdges(t *testing.T) {
	u := mustNew(t, 5, 5)
	// Vertical blinker straddling the top/bottom seam in column 0.
	u.Stamp([][2]int{{0, 4}, {0, 0}, {0, 1}}, 0, 0)

	u.Step()

	expectAlive(t, u, map[[2]int]bool{{4, 0}: true, {0, 0}: true, {1, 0}: true}, "seam blinker")
}

func TestToggleTwiceRestores(t *testing.T) {
	u := mustNew(t, 5, 5)
	u.Toggle(3, 1)
	if !u.Cell(3, 1).Alive || !u.Cell(3, 1).Changed {
		t.Fatal("first toggle should bring the cell alive and mark it changed")
	}
	u.Toggle(3, 1)
	c := u.Cell(3, 1)
	if c.Alive || !c.Changed {
		t.Fatalf("second toggle: alive=%v changed=%v, want dead and changed", c.Alive, c.Changed)
	}
}

func TestToggleWrapsCoordinates(t *testing.T) {
	u := mustNew(t, 4, 4)
	u.Toggle(-1, 5)
	if !u.Cell(3, 1).Alive {
		t.Fatal("Toggle(-1,5) should land on (3,1)")
	}
}

func TestRandomizeChangedMatchesFlip(t *testing.T) {
	u, err := NewWithRand(16, 12, rand.New(rand.NewPCG(3, 9)))
	if err != nil {
		t.Fatal(err)
	}
	for round := 0; round < 5; round++ {
		before := make([]bool, u.Len())
		for i := range before {
			before[i] = u.IsAlive(i)
		}
		u.Randomize()
		if u.Len() != 16*12 {
			t.Fatalf("round %d: Len() = %d", round, u.Len())
		}
		for i := range before {
			if u.HasChanged(i) != (u.IsAlive(i) != before[i]) {
				t.Fatalf("round %d cell %d: changed=%v but alive %v -> %v", round, i, u.HasChanged(i), before[i], u.IsAlive(i))
			}
		}
	}
}

func TestReseedRepeatsFill(t *testing.T) {
	u, _ := New(16, 16, 5)
	u.Randomize()
	first := u.String()
	u.Randomize()
	u.Reseed(5)
	u.Randomize()
	if got := u.String(); got != first {
		t.Fatalf("reseeded fill differs:\n%s\nwant\n%s", got, first)
	}
}

func TestRandomizeDeterministicForSeed(t *testing.T) {
	a, _ := New(20, 20, 99)
	b, _ := New(20, 20, 99)
	a.Randomize()
	b.Randomize()
	if a.String() != b.String() {
		t.Fatal("identical seeds produced different boards")
	}
	if a.Population() == 0 || a.Population() == a.Len() {
		t.Fatalf("population %d looks degenerate for a fair coin", a.Population())
	}
}

func TestClearMarksOnlyLivingCells(t *testing.T) {
	u := mustNew(t, 4, 4)
	u.Stamp([][2]int{{1, 1}, {2, 3}}, 0, 0)
	u.Clear()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := u.Cell(x, y)
			wasAlive := (x == 1 && y == 1) || (x == 2 && y == 3)
			if c.Alive {
				t.Fatalf("cell (%d,%d) survived Clear", x, y)
			}
			if c.Changed != wasAlive {
				t.Fatalf("cell (%d,%d) changed=%v, want %v", x, y, c.Changed, wasAlive)
			}
		}
	}
}

func TestStringGolden(t *testing.T) {
	u := mustNew(t, 4, 3)
	u.Stamp([][2]int{{0, 0}, {3, 0}, {1, 2}}, 0, 0)
	want := "◼  ◼\n    \n ◼  \n"
	if got := u.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
