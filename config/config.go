// Package config loads simulation settings from TOML.
//
// A file names a preset and overrides only the profile keys it sets:
//
//	preset = "blob"
//
//	[profile]
//	tension = 45.0
//	pressure_gate = "always"
//
//	[body]
//	vertices = 64
//	radius = 80.0
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/softbody/core"
	"github.com/lixenwraith/softbody/parameter"
	"github.com/lixenwraith/softbody/physics"
)

var (
	ErrUnknownPreset = errors.New("unknown preset")
	ErrUnknownKey    = errors.New("unknown configuration key")
	ErrInvalid       = errors.New("invalid configuration")
)

// Body sizes the ring
type Body struct {
	Vertices int     `toml:"vertices"`
	Radius   float64 `toml:"radius"`
}

// Arena sizes headless runs; interactive hosts use their window instead
type Arena struct {
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	GravityX float64 `toml:"gravity_x"`
	GravityY float64 `toml:"gravity_y"`
}

// Host controls frame pacing
type Host struct {
	Substeps  int     `toml:"substeps"`
	FrameTime float64 `toml:"frame_time"` // Simulated seconds per frame
	FPS       int     `toml:"fps"`
}

// Config is the full file layout
type Config struct {
	Preset  string          `toml:"preset"`
	Profile physics.Profile `toml:"profile"`
	Body    Body            `toml:"body"`
	Arena   Arena           `toml:"arena"`
	Host    Host            `toml:"host"`
}

// Default returns the blob preset with host defaults
func Default() Config {
	return Config{
		Preset:  physics.Blob.Name,
		Profile: physics.Blob,
		Body: Body{
			Vertices: parameter.DefaultVertexCount,
			Radius:   parameter.DefaultRadius,
		},
		Arena: Arena{
			Width:    parameter.DefaultArenaWidth,
			Height:   parameter.DefaultArenaHeight,
			GravityY: parameter.DefaultGravityY,
		},
		Host: Host{
			Substeps:  parameter.StepsPerFrame,
			FrameTime: parameter.FrameTime,
			FPS:       int(1e9 / parameter.FrameUpdateInterval.Nanoseconds()),
		},
	}
}

// Load reads and parses a TOML file
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over Default, seeding the profile from the named preset first
func Parse(data string) (Config, error) {
	// First pass only resolves the preset so overrides land on it
	var head struct {
		Preset string `toml:"preset"`
	}
	if _, err := toml.Decode(data, &head); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if head.Preset != "" {
		if err := cfg.UsePreset(head.Preset); err != nil {
			return Config{}, err
		}
	}

	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// UsePreset replaces the profile with a named preset
func (c *Config) UsePreset(name string) error {
	p, ok := physics.Preset(name)
	if !ok {
		return fmt.Errorf("%w: %q (have %s)", ErrUnknownPreset, name, strings.Join(physics.PresetNames(), ", "))
	}
	c.Preset = p.Name
	c.Profile = p
	return nil
}

// Validate checks body, arena, host and profile values
func (c *Config) Validate() error {
	if c.Body.Vertices < core.MinVertices {
		return fmt.Errorf("%w: body.vertices %d below %d", ErrInvalid, c.Body.Vertices, core.MinVertices)
	}
	if !(c.Body.Radius > 0) {
		return fmt.Errorf("%w: body.radius %g must be positive", ErrInvalid, c.Body.Radius)
	}
	if !(c.Arena.Width > 0) || !(c.Arena.Height > 0) {
		return fmt.Errorf("%w: arena %gx%g must be positive", ErrInvalid, c.Arena.Width, c.Arena.Height)
	}
	if c.Host.Substeps < 1 {
		return fmt.Errorf("%w: host.substeps %d below 1", ErrInvalid, c.Host.Substeps)
	}
	if !(c.Host.FrameTime > 0) {
		return fmt.Errorf("%w: host.frame_time %g must be positive", ErrInvalid, c.Host.FrameTime)
	}
	if c.Host.FPS < 1 {
		return fmt.Errorf("%w: host.fps %d below 1", ErrInvalid, c.Host.FPS)
	}
	return c.Profile.Validate()
}

// Encode writes cfg as TOML
func Encode(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}
