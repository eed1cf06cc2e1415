package life

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"cubelife/pkg/core"
)

// ErrInvalidSize is returned when a universe is built with a non-positive dimension.
var ErrInvalidSize = errors.New("life: width and height must be positive")

// Cell is one site of the universe. Changed reports whether Alive differs
// from its value before the most recent mutating operation.
type Cell struct {
	Alive   bool
	Changed bool
}

// Universe implements Conway's Game of Life with toroidal wrapping.
type Universe struct {
	tor core.Torus
	cur []Cell
	nxt []Cell
	rng *core.RNG
}

// New returns a dead universe whose randomizer is seeded with seed.
func New(w, h int, seed int64) (*Universe, error) {
	return newUniverse(w, h, core.NewRNG(seed))
}

// NewWithRand returns a dead universe drawing randomness from r.
func NewWithRand(w, h int, r *rand.Rand) (*Universe, error) {
	return newUniverse(w, h, core.WrapRNG(r))
}

func newUniverse(w, h int, rng *core.RNG) (*Universe, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, w, h)
	}
	tor := core.Torus{W: w, H: h}
	cells := make([]Cell, tor.Len())
	for i := range cells {
		cells[i].Changed = true
	}
	return &Universe{tor: tor, cur: cells, nxt: make([]Cell, len(cells)), rng: rng}, nil
}

// Width returns the number of columns.
func (u *Universe) Width() int { return u.tor.W }

// Height returns the number of rows.
func (u *Universe) Height() int { return u.tor.H }

// Len returns the number of cells.
func (u *Universe) Len() int { return len(u.cur) }

// IsAlive reports whether the cell at index is alive.
func (u *Universe) IsAlive(index int) bool { return u.cur[index].Alive }

// HasChanged reports whether the cell at index flipped during the last mutation.
func (u *Universe) HasChanged(index int) bool { return u.cur[index].Changed }

// Cell returns a copy of the cell at (x, y), wrapping out-of-range coordinates.
func (u *Universe) Cell(x, y int) Cell {
	x, y = u.tor.Wrap(x, y)
	return u.cur[u.tor.Index(x, y)]
}

// Population counts the living cells.
func (u *Universe) Population() int {
	n := 0
	for _, c := range u.cur {
		if c.Alive {
			n++
		}
	}
	return n
}

// Toggle flips the cell at (x, y). A toggle is always reported as a change.
func (u *Universe) Toggle(x, y int) {
	x, y = u.tor.Wrap(x, y)
	c := &u.cur[u.tor.Index(x, y)]
	c.Alive = !c.Alive
	c.Changed = true
}

// Randomize gives every cell an independent fifty-percent chance of life.
func (u *Universe) Randomize() {
	for i := range u.cur {
		alive := u.rng.Bool()
		u.cur[i].Changed = alive != u.cur[i].Alive
		u.cur[i].Alive = alive
	}
}

// Reseed restarts the randomizer so the next Randomize is reproducible.
func (u *Universe) Reseed(seed int64) {
	u.rng.Reseed(seed)
}

// Clear kills every cell. Only cells that were alive are marked changed.
func (u *Universe) Clear() {
	for i := range u.cur {
		u.cur[i].Changed = u.cur[i].Alive
		u.cur[i].Alive = false
	}
}

// Stamp brings the listed offsets to life relative to (ox, oy). Every other
// cell keeps its state and has its changed flag reset.
func (u *Universe) Stamp(offsets [][2]int, ox, oy int) {
	for i := range u.cur {
		u.cur[i].Changed = false
	}
	for _, off := range offsets {
		x, y := u.tor.Wrap(ox+off[0], oy+off[1])
		c := &u.cur[u.tor.Index(x, y)]
		if !c.Alive {
			c.Alive = true
			c.Changed = true
		}
	}
}

// Step advances the simulation by one generation. The next generation is
// computed into the spare buffer and swapped in once complete.
func (u *Universe) Step() {
	var nb [8]int
	for idx, c := range u.cur {
		x, y := u.tor.Coords(idx)
		u.tor.Neighbors(x, y, &nb)
		neighbors := 0
		for _, n := range nb {
			if u.cur[n].Alive {
				neighbors++
			}
		}
		next := c.Alive
		switch {
		case c.Alive && (neighbors < 2 || neighbors > 3):
			next = false
		case !c.Alive && neighbors == 3:
			next = true
		}
		u.nxt[idx] = Cell{Alive: next, Changed: next != c.Alive}
	}
	u.cur, u.nxt = u.nxt, u.cur
}

// String renders one line per row, "◼" for living cells and a space otherwise.
func (u *Universe) String() string {
	var b strings.Builder
	b.Grow(len(u.cur)*2 + u.tor.H)
	for y := 0; y < u.tor.H; y++ {
		for x := 0; x < u.tor.W; x++ {
			if u.cur[u.tor.Index(x, y)].Alive {
				b.WriteString("◼")
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
