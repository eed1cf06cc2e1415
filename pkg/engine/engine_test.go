package engine

import "testing"

func TestLifecycleClamp(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{1, 2}, {-5, 2}, {2, 2}, {24, 24}, {60, 60}, {1000, 60},
	}
	for _, c := range cases {
		if got := New(c.in).Lifecycle(); got != c.want {
			t.Errorf("New(%d).Lifecycle() = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestChangeLifecycleKeepsFrameInRange(t *testing.T) {
	e := New(10)
	for i := 0; i < 8; i++ {
		e.AdvanceFrame()
	}
	deltas := []int{-3, -100, 5, 200, -57, 1, -1}
	for _, d := range deltas {
		e.ChangeLifecycle(d)
		if e.Lifecycle() < MinLifecycle || e.Lifecycle() > MaxLifecycle {
			t.Fatalf("after delta %d lifecycle = %d", d, e.Lifecycle())
		}
		if e.Frame() >= e.Lifecycle() || e.Frame() < 0 {
			t.Fatalf("after delta %d frame %d outside [0,%d)", d, e.Frame(), e.Lifecycle())
		}
		e.AdvanceFrame()
	}
}

func TestSetLifecycleClampsFrameDown(t *testing.T) {
	e := New(10)
	for i := 0; i < 7; i++ {
		e.AdvanceFrame()
	}
	e.SetLifecycle(4)
	if e.Frame() != 3 {
		t.Fatalf("frame = %d, want 3", e.Frame())
	}
}

func TestRunningFrameWraps(t *testing.T) {
	e := New(3)
	var frames []int
	var gens int
	for i := 0; i < 7; i++ {
		e.AdvanceFrame()
		frames = append(frames, e.Frame())
		if e.IsNewGeneration() {
			gens++
		}
	}
	want := []int{1, 2, 0, 1, 2, 0, 1}
	for i := range want {
		if frames[i] != want[i] {
			t.Fatalf("frames = %v, want %v", frames, want)
		}
	}
	if gens != 2 {
		t.Fatalf("new generations = %d, want 2", gens)
	}
}

func TestPauseFinishesGeneration(t *testing.T) {
	e := New(4)
	e.AdvanceFrame()
	e.AdvanceFrame()
	if e.Frame() != 2 {
		t.Fatalf("setup frame = %d, want 2", e.Frame())
	}
	e.StartStop()
	if e.IsRunning() {
		t.Fatal("StartStop should stop a running engine")
	}
	for i, want := range []int{3, 3, 3} {
		e.AdvanceFrame()
		if e.Frame() != want {
			t.Fatalf("advance %d: frame = %d, want %d", i, e.Frame(), want)
		}
		if e.IsNewGeneration() {
			t.Fatalf("advance %d: paused engine must not start a generation", i)
		}
	}
	e.StartStop()
	e.AdvanceFrame()
	if !e.IsNewGeneration() {
		t.Fatal("resuming from the last frame should start a new generation")
	}
}

func TestMailboxSingleShot(t *testing.T) {
	e := New(24)
	if _, ok := e.PollCommand(); ok {
		t.Fatal("fresh engine has a pending command")
	}
	e.Trigger(Randomize)
	e.Trigger(Clear)
	cmd, ok := e.PollCommand()
	if !ok || cmd != Clear {
		t.Fatalf("PollCommand() = %v,%v, want clear,true", cmd, ok)
	}
	if cmd, ok := e.PollCommand(); ok {
		t.Fatalf("second PollCommand() returned %v", cmd)
	}
}

func TestPaintMemoryIsSingleSlot(t *testing.T) {
	e := New(24)
	e.StartPainting()
	if !e.IsPainting() {
		t.Fatal("StartPainting did not enter the painting state")
	}
	if e.AlreadyPainted(0, 0) {
		t.Fatal("nothing painted yet")
	}
	e.MarkPainted(2, 3)
	if !e.AlreadyPainted(2, 3) {
		t.Fatal("last painted cell not remembered")
	}
	e.MarkPainted(4, 3)
	if e.AlreadyPainted(2, 3) {
		t.Fatal("earlier cell should be forgotten once another is painted")
	}
	e.StopPainting()
	if e.IsPainting() || e.AlreadyPainted(4, 3) {
		t.Fatal("StopPainting must forget the gesture")
	}
}

func TestResetFrame(t *testing.T) {
	e := New(5)
	e.AdvanceFrame()
	e.AdvanceFrame()
	e.ResetFrame()
	if e.Frame() != 0 || !e.IsNewGeneration() {
		t.Fatalf("frame = %d after ResetFrame", e.Frame())
	}
}

func TestMouse(t *testing.T) {
	e := New(5)
	e.SetMouse(120, 45)
	if x, y := e.Mouse(); x != 120 || y != 45 {
		t.Fatalf("Mouse() = %d,%d", x, y)
	}
}
