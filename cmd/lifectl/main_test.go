package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cubelife/internal/telemetry"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRunPrintsFinalGrid(t *testing.T) {
	out, err := execute(t, "run", "blinker", "-n", "3", "--width", "5", "--height", "5", "--lifecycle", "2", "--print")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "     \n  ◼  \n  ◼  \n  ◼  \n     \n"
	if !strings.Contains(out, want) {
		t.Fatalf("expected vertical blinker in output:\n%s", out)
	}
	if !strings.Contains(out, "generation 3  population 3") {
		t.Fatalf("missing summary line:\n%s", out)
	}
}

func TestRunWritesStatsAndPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.csv")
	out, err := execute(t, "run", "glider", "-n", "4", "--width", "10", "--height", "10", "--lifecycle", "2", "--stats", path, "--plot")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "population") {
		t.Fatalf("expected plot caption in output:\n%s", out)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open stats: %v", err)
	}
	defer f.Close()
	rows, err := telemetry.ReadCSV(f)
	if err != nil {
		t.Fatalf("read stats: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	for _, r := range rows {
		if r.Population != 5 {
			t.Fatalf("glider population should stay 5, got %+v", r)
		}
	}
}

func TestRunUnknownPattern(t *testing.T) {
	if _, err := execute(t, "run", "nope", "-n", "1"); err == nil {
		t.Fatalf("expected error for unknown pattern")
	}
}

func TestPickUsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "top.yaml")
	data := "camera:\n  position: [0, 0, -25]\n  target: [0, 0, 0]\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := execute(t, "pick", "512", "384", "--config", path, "--width", "20")
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if strings.TrimSpace(out) != "cell 10 30" {
		t.Fatalf("unexpected pick output %q", out)
	}
	out, err = execute(t, "pick", "--config", path, "--", "-10000", "-10000")
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if strings.TrimSpace(out) != "miss" {
		t.Fatalf("expected miss, got %q", out)
	}
}

func TestPatternsListsBuiltins(t *testing.T) {
	out, err := execute(t, "patterns")
	if err != nil {
		t.Fatalf("patterns: %v", err)
	}
	for _, name := range []string{"glider", "gosper-gun", "rpentomino"} {
		if !strings.Contains(out, name) {
			t.Fatalf("missing %s in:\n%s", name, out)
		}
	}
}

func TestConfigDumpsFlags(t *testing.T) {
	out, err := execute(t, "config", "--seed", "77")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(out, "seed: 77") {
		t.Fatalf("expected overridden seed in:\n%s", out)
	}
}
