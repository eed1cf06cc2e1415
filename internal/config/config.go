// Package config loads the YAML configuration shared by the front-ends.
package config

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"cubelife/pkg/camera"
	"cubelife/pkg/engine"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds every tunable of the application.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Engine    EngineConfig    `yaml:"engine"`
	Window    WindowConfig    `yaml:"window"`
	Camera    CameraConfig    `yaml:"camera"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// GridConfig sizes and seeds the universe.
type GridConfig struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Seed    int64  `yaml:"seed"`
	Pattern string `yaml:"pattern"`
}

// EngineConfig holds pacing settings.
type EngineConfig struct {
	Lifecycle int `yaml:"lifecycle"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
	Title  string `yaml:"title"`
}

// CameraConfig places the camera and tunes the zoom spring.
type CameraConfig struct {
	Position      [3]float32 `yaml:"position"`
	Target        [3]float32 `yaml:"target"`
	Up            [3]float32 `yaml:"up"`
	FovDeg        float32    `yaml:"fov_deg"`
	Near          float32    `yaml:"near"`
	Far           float32    `yaml:"far"`
	ZoomMin       float32    `yaml:"zoom_min"`
	ZoomMax       float32    `yaml:"zoom_max"`
	ZoomFrequency float32    `yaml:"zoom_frequency"`
	ZoomStep      float32    `yaml:"zoom_step"`
}

// TelemetryConfig controls per-generation statistics output.
type TelemetryConfig struct {
	StatsPath string `yaml:"stats_path"`
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load reads the embedded defaults and overlays the file at path, if any.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that would otherwise fail deep inside a subsystem.
func (c *Config) Validate() error {
	switch {
	case c.Grid.Width <= 0 || c.Grid.Height <= 0:
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalid, c.Grid.Width, c.Grid.Height)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window must be positive, got %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Camera.FovDeg <= 0 || c.Camera.FovDeg >= 180:
		return fmt.Errorf("%w: fov_deg %.1f outside (0, 180)", ErrInvalid, c.Camera.FovDeg)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: need 0 < near < far, got near=%g far=%g", ErrInvalid, c.Camera.Near, c.Camera.Far)
	case c.Camera.ZoomMin <= 0 || c.Camera.ZoomMax < c.Camera.ZoomMin:
		return fmt.Errorf("%w: need 0 < zoom_min <= zoom_max, got %g..%g", ErrInvalid, c.Camera.ZoomMin, c.Camera.ZoomMax)
	case c.Camera.ZoomFrequency <= 0:
		return fmt.Errorf("%w: zoom_frequency must be positive, got %g", ErrInvalid, c.Camera.ZoomFrequency)
	case c.Camera.Position[2] == 0:
		return fmt.Errorf("%w: camera must not sit on the grid plane", ErrInvalid)
	case c.Camera.Position == c.Camera.Target:
		return fmt.Errorf("%w: camera position and target coincide at %v", ErrInvalid, c.Camera.Position)
	case !c.upIsUsable():
		return fmt.Errorf("%w: camera up %v is parallel to the view direction", ErrInvalid, c.Camera.Up)
	}
	return nil
}

func (c *Config) upIsUsable() bool {
	dir := mgl32.Vec3(c.Camera.Target).Sub(mgl32.Vec3(c.Camera.Position))
	up := mgl32.Vec3(c.Camera.Up)
	return dir.Cross(up).Len() > 1e-6*dir.Len()*up.Len()
}

// Lifecycle returns the configured lifecycle clamped to the engine range.
func (c *Config) Lifecycle() int {
	return max(engine.MinLifecycle, min(engine.MaxLifecycle, c.Engine.Lifecycle))
}

// NewCamera builds a camera from the configured vectors and zoom range.
func (c *Config) NewCamera() *camera.Camera {
	cam := camera.New(mgl32.Vec3(c.Camera.Position), mgl32.Vec3(c.Camera.Target), mgl32.Vec3(c.Camera.Up))
	cam.SetZoom(camera.ZoomConfig{
		Min:       c.Camera.ZoomMin,
		Max:       c.Camera.ZoomMax,
		Frequency: c.Camera.ZoomFrequency,
	})
	return cam
}

// Perspective builds the projection matrix for a viewport.
func (c *Config) Perspective(vp camera.Viewport) mgl32.Mat4 {
	return vp.Perspective(c.Camera.FovDeg*math.Pi/180, c.Camera.Near, c.Camera.Far)
}

// Viewport returns the configured window as a viewport.
func (c *Config) Viewport() camera.Viewport {
	return camera.Viewport{W: c.Window.Width, H: c.Window.Height}
}

// Bind registers command-line overrides for the most common settings.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Grid.Width, "width", c.Grid.Width, "grid width in cells")
	fs.IntVar(&c.Grid.Height, "height", c.Grid.Height, "grid height in cells")
	fs.Int64Var(&c.Grid.Seed, "seed", c.Grid.Seed, "random seed")
	fs.StringVar(&c.Grid.Pattern, "pattern", c.Grid.Pattern, "seed pattern name (empty = random)")
	fs.IntVar(&c.Engine.Lifecycle, "lifecycle", c.Engine.Lifecycle, "frames per generation [2,60]")
	fs.IntVar(&c.Window.TPS, "tps", c.Window.TPS, "ticks per second")
	fs.StringVar(&c.Telemetry.StatsPath, "stats", c.Telemetry.StatsPath, "write per-generation CSV stats to this path")
}

// Apply sets the named Bind flags to the given values, so flags explicitly
// passed on the command line win over a config file loaded afterwards.
func (c *Config) Apply(overrides map[string]string) error {
	fs := flag.NewFlagSet("overrides", flag.ContinueOnError)
	c.Bind(fs)
	for name, value := range overrides {
		if fs.Lookup(name) == nil {
			continue
		}
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("%w: flag %s: %v", ErrInvalid, name, err)
		}
	}
	return c.Validate()
}

// WriteYAML writes the configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}
