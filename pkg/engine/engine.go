// Package engine paces the animation of a Life universe and gates user input.
//
// An Engine never touches the universe itself. The caller drives it once per
// visual frame in this order:
//
//  1. feed input (SetMouse, StartPainting/StopPainting, StartStop, Trigger, ChangeLifecycle)
//  2. while painting, toggle the picked cell unless AlreadyPainted, then MarkPainted
//  3. PollCommand; apply Randomize/Clear to the universe and ResetFrame
//  4. AdvanceFrame
//  5. if IsNewGeneration, step the universe
package engine

// Lifecycle bounds, in visual frames per generation.
const (
	MinLifecycle = 2
	MaxLifecycle = 60
)

// RunState is either Running or Stopped.
type RunState int

const (
	Running RunState = iota
	Stopped
)

func (s RunState) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Command is a pending action for the universe.
type Command int

const (
	Randomize Command = iota + 1
	Clear
)

func (c Command) String() string {
	switch c {
	case Randomize:
		return "randomize"
	case Clear:
		return "clear"
	default:
		return "none"
	}
}

type paint struct {
	active  bool
	hasLast bool
	x, y    int
}

// Engine holds run/pause state, the frame counter and the paint gesture.
type Engine struct {
	state     RunState
	pending   Command
	frame     int
	lifecycle int
	paint     paint
	mouseX    int
	mouseY    int
}

// New returns a running engine. lifecycle is clamped to [MinLifecycle, MaxLifecycle].
func New(lifecycle int) *Engine {
	return &Engine{state: Running, lifecycle: clampLifecycle(lifecycle)}
}

func clampLifecycle(n int) int {
	if n < MinLifecycle {
		return MinLifecycle
	}
	if n > MaxLifecycle {
		return MaxLifecycle
	}
	return n
}

// Trigger stores cmd as the pending command, replacing any unconsumed one.
func (e *Engine) Trigger(cmd Command) { e.pending = cmd }

// PollCommand returns and clears the pending command.
func (e *Engine) PollCommand() (Command, bool) {
	cmd := e.pending
	e.pending = 0
	return cmd, cmd != 0
}

// SetMouse records the latest pointer position in screen pixels.
func (e *Engine) SetMouse(x, y int) {
	e.mouseX, e.mouseY = x, y
}

// Mouse returns the last recorded pointer position.
func (e *Engine) Mouse() (int, int) { return e.mouseX, e.mouseY }

// StartPainting begins a paint gesture.
func (e *Engine) StartPainting() { e.paint.active = true }

// StopPainting ends the gesture and forgets the last painted cell.
func (e *Engine) StopPainting() { e.paint = paint{} }

// IsPainting reports whether a paint gesture is in progress.
func (e *Engine) IsPainting() bool { return e.paint.active }

// MarkPainted remembers (x, y) as the most recently painted cell.
func (e *Engine) MarkPainted(x, y int) {
	e.paint.hasLast = true
	e.paint.x, e.paint.y = x, y
}

// AlreadyPainted reports whether (x, y) is the most recently painted cell.
// Only one cell is remembered, so returning to an earlier cell in the same
// drag paints it again.
func (e *Engine) AlreadyPainted(x, y int) bool {
	return e.paint.hasLast && e.paint.x == x && e.paint.y == y
}

// StartStop flips between Running and Stopped.
func (e *Engine) StartStop() {
	if e.state == Running {
		e.state = Stopped
		return
	}
	e.state = Running
}

// State returns the current run state.
func (e *Engine) State() RunState { return e.state }

// IsRunning reports whether generations keep advancing.
func (e *Engine) IsRunning() bool { return e.state == Running }

// Lifecycle returns the number of visual frames per generation.
func (e *Engine) Lifecycle() int { return e.lifecycle }

// Frame returns the position within the current generation, in [0, Lifecycle()).
func (e *Engine) Frame() int { return e.frame }

// SetLifecycle sets the generation length and keeps Frame in range.
func (e *Engine) SetLifecycle(n int) {
	e.lifecycle = clampLifecycle(n)
	if e.frame >= e.lifecycle {
		e.frame = e.lifecycle - 1
	}
}

// ChangeLifecycle adjusts the generation length by delta frames.
func (e *Engine) ChangeLifecycle(delta int) { e.SetLifecycle(e.lifecycle + delta) }

// ResetFrame rewinds to the first frame of a generation.
func (e *Engine) ResetFrame() { e.frame = 0 }

// IsLastFrame reports whether the current generation's animation has finished.
func (e *Engine) IsLastFrame() bool { return e.frame == e.lifecycle-1 }

// AdvanceFrame moves to the next frame. A stopped engine still plays out the
// current generation and then holds on its last frame.
func (e *Engine) AdvanceFrame() {
	if e.state == Stopped && e.IsLastFrame() {
		return
	}
	e.frame = (e.frame + 1) % e.lifecycle
}

// IsNewGeneration reports whether the frame counter has wrapped to zero,
// which is when the caller steps the universe.
func (e *Engine) IsNewGeneration() bool { return e.frame == 0 }
