package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Grid.Width != 60 || cfg.Grid.Height != 60 {
		t.Fatalf("expected 60x60 grid, got %dx%d", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Engine.Lifecycle != 24 {
		t.Fatalf("expected lifecycle 24, got %d", cfg.Engine.Lifecycle)
	}
	if cfg.Camera.Position != [3]float32{0, 0, -25} {
		t.Fatalf("unexpected camera position %v", cfg.Camera.Position)
	}
	if cfg.Camera.ZoomMin != 10 || cfg.Camera.ZoomMax != 30 {
		t.Fatalf("unexpected zoom range %g..%g", cfg.Camera.ZoomMin, cfg.Camera.ZoomMax)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := []byte("grid:\n  width: 32\nengine:\n  lifecycle: 99\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Grid.Width != 32 || cfg.Grid.Height != 60 {
		t.Fatalf("expected 32x60, got %dx%d", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Lifecycle() != 60 {
		t.Fatalf("expected lifecycle clamped to 60, got %d", cfg.Lifecycle())
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  height: 0\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestValidateRejectsDegenerateCamera(t *testing.T) {
	cases := map[string]func(*Config){
		"eye on target": func(c *Config) { c.Camera.Target = c.Camera.Position },
		"up along view": func(c *Config) { c.Camera.Up = [3]float32{0, 0, 1} },
		"zero up":       func(c *Config) { c.Camera.Up = [3]float32{} },
	}
	for name, mutate := range cases {
		cfg := Default()
		cfg.Camera.Position = [3]float32{0, 0, -25}
		cfg.Camera.Target = [3]float32{0, 0, 0}
		mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Fatalf("%s: expected ErrInvalid, got %v", name, err)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Grid.Seed = 7
	cfg.Grid.Pattern = "glider"
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("write: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *back != *cfg {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", back, cfg)
	}
}

func TestBindOverrides(t *testing.T) {
	cfg := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-width", "20", "-lifecycle", "1", "-pattern", "acorn"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Grid.Width != 20 || cfg.Grid.Pattern != "acorn" {
		t.Fatalf("flags not applied: %+v", cfg.Grid)
	}
	if cfg.Lifecycle() != 2 {
		t.Fatalf("expected lifecycle clamped to 2, got %d", cfg.Lifecycle())
	}
}

func TestNewCameraUsesConfig(t *testing.T) {
	cfg := Default()
	cam := cfg.NewCamera()
	if cam.Position() != (mgl32.Vec3{0, 0, -25}) {
		t.Fatalf("unexpected position %v", cam.Position())
	}
	cam.Shift(100)
	if got := cam.Destination()[2]; got != -30 {
		t.Fatalf("expected destination clamped to -30, got %g", got)
	}
}

func TestApplyOverridesFile(t *testing.T) {
	cfg := Default()
	err := cfg.Apply(map[string]string{"seed": "9", "pattern": "toad", "log-level": "debug"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if cfg.Grid.Seed != 9 || cfg.Grid.Pattern != "toad" {
		t.Fatalf("overrides not applied: %+v", cfg.Grid)
	}
	if err := cfg.Apply(map[string]string{"width": "wide"}); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for bad value, got %v", err)
	}
	if err := cfg.Apply(map[string]string{"width": "0"}); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for zero width, got %v", err)
	}
}
