// Package telemetry records per-generation statistics of a universe.
package telemetry

import "cubelife/internal/render"

// Event names the operation that produced a generation row.
type Event string

const (
	EventStart     Event = "start"
	EventStep      Event = "step"
	EventRandomize Event = "randomize"
	EventClear     Event = "clear"
)

// Generation is one row of statistics.
type Generation struct {
	Generation int   `csv:"generation"`
	Population int   `csv:"population"`
	Births     int   `csv:"births"`
	Deaths     int   `csv:"deaths"`
	Event      Event `csv:"event"`
}

// Collect counts living cells and the births and deaths flagged by the most
// recent mutation of src.
func Collect(src render.CellSource, generation int, event Event) Generation {
	g := Generation{Generation: generation, Event: event}
	for i := 0; i < src.Len(); i++ {
		alive := src.IsAlive(i)
		if alive {
			g.Population++
		}
		if !src.HasChanged(i) {
			continue
		}
		if alive {
			g.Births++
		} else {
			g.Deaths++
		}
	}
	return g
}

// Recorder receives generation rows.
type Recorder interface {
	Record(Generation) error
}

// History keeps rows in memory.
type History struct {
	Rows []Generation
}

// Record appends g.
func (h *History) Record(g Generation) error {
	h.Rows = append(h.Rows, g)
	return nil
}

// Populations returns the population column as float64 for plotting.
func (h *History) Populations() []float64 {
	out := make([]float64, len(h.Rows))
	for i, r := range h.Rows {
		out[i] = float64(r.Population)
	}
	return out
}

type multiRecorder []Recorder

func (m multiRecorder) Record(g Generation) error {
	for _, r := range m {
		if err := r.Record(g); err != nil {
			return err
		}
	}
	return nil
}

// Tee fans rows out to every non-nil recorder.
func Tee(recorders ...Recorder) Recorder {
	var m multiRecorder
	for _, r := range recorders {
		if r != nil {
			m = append(m, r)
		}
	}
	return m
}
