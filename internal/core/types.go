package core

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownPattern is returned when a pattern name is not registered.
var ErrUnknownPattern = errors.New("core: unknown pattern")

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Pattern is a named set of live-cell offsets used to seed a universe.
type Pattern struct {
	Name        string
	Description string
	Cells       [][2]int
}

// Bounds returns the extent of the pattern's offsets.
func (p Pattern) Bounds() Size {
	var s Size
	for _, c := range p.Cells {
		if c[0]+1 > s.W {
			s.W = c[0] + 1
		}
		if c[1]+1 > s.H {
			s.H = c[1] + 1
		}
	}
	return s
}

// Origin returns the offset that centres the pattern on a grid of the given size.
func (p Pattern) Origin(grid Size) (int, int) {
	b := p.Bounds()
	return (grid.W - b.W) / 2, (grid.H - b.H) / 2
}

var patterns = map[string]Pattern{}

// RegisterPattern adds a pattern under its name.
func RegisterPattern(p Pattern) {
	if p.Name == "" || len(p.Cells) == 0 {
		return
	}
	patterns[p.Name] = p
}

// LookupPattern returns the pattern registered under name.
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// Patterns lists the registered patterns sorted by name.
func Patterns() []Pattern {
	out := make([]Pattern, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
