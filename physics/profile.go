package physics

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/lixenwraith/softbody/parameter"
)

// TensionMode selects how edge springs respond to compression
type TensionMode uint8

const (
	// TensionPull only pulls when an edge is longer than rest length
	TensionPull TensionMode = iota
	// TensionSpring pulls when stretched and pushes when compressed
	TensionSpring
)

// PressureMode selects how the outward direction is estimated
type PressureMode uint8

const (
	// PressureNormal uses the perpendicular of the chord between neighbor averages
	PressureNormal PressureMode = iota
	// PressureRadial uses the direction from the centroid
	PressureRadial
)

// PressureGate selects when pressure applies
type PressureGate uint8

const (
	// PressureDeficit applies pressure only while area is below rest area
	PressureDeficit PressureGate = iota
	// PressureAlways applies pressure every step
	PressureAlways
)

var ErrInvalidProfile = errors.New("invalid profile")

// Profile enumerates every tunable of the force model and collision resolver
// Presets are pre-defined as package variables; copy before modifying
type Profile struct {
	Name string `toml:"name"`

	Tension     float64     `toml:"tension"`
	TensionMode TensionMode `toml:"tension_mode"`

	Pressure     float64      `toml:"pressure"`
	PressureMode PressureMode `toml:"pressure_mode"`
	PressureGate PressureGate `toml:"pressure_gate"`
	PressureSpan int          `toml:"pressure_span"` // Vertices averaged per side for the local normal

	DragTension  float64 `toml:"drag_tension"`
	DragDeadZone float64 `toml:"drag_dead_zone"`

	Gravity     float64 `toml:"gravity"`      // Multiplier on the host gravity vector
	VertexDecay float64 `toml:"vertex_decay"` // 1/sec, velocity relative to centroid
	BodyDecay   float64 `toml:"body_decay"`   // 1/sec, centroid velocity
	Damping     float64 `toml:"damping"`      // Fraction of velocity removed per step, 0 = off
	AccelCap    float64 `toml:"accel_cap"`    // Per-axis velocity delta limit, 0 = off

	Restitution float64 `toml:"restitution"`
	Friction    float64 `toml:"friction"` // 1/sec, tangential damping on contact

	MinDistance float64 `toml:"min_distance"`
	AreaFloor   float64 `toml:"area_floor"` // Fraction of rest area
}

// Blob is the final tuning: pull-only edges, deficit-gated normal pressure, capped acceleration
var Blob = Profile{
	Name:         "blob",
	Tension:      parameter.BlobTension,
	TensionMode:  TensionPull,
	Pressure:     parameter.BlobPressure,
	PressureMode: PressureNormal,
	PressureGate: PressureDeficit,
	PressureSpan: parameter.PressureSpan,
	DragTension:  parameter.BlobDragTension,
	DragDeadZone: parameter.DragDeadZone,
	Gravity:      parameter.BlobGravity,
	VertexDecay:  parameter.BlobVertexDecay,
	BodyDecay:    parameter.BlobBodyDecay,
	AccelCap:     parameter.BlobAccelCap,
	Restitution:  parameter.BlobRestitution,
	Friction:     parameter.BlobFriction,
	MinDistance:  parameter.MinDistance,
	AreaFloor:    parameter.AreaFloor,
}

// Elastic is the intermediate tuning: two-way springs and ungated normal pressure
var Elastic = Profile{
	Name:         "elastic",
	Tension:      parameter.ElasticTension,
	TensionMode:  TensionSpring,
	Pressure:     parameter.ElasticPressure,
	PressureMode: PressureNormal,
	PressureGate: PressureAlways,
	PressureSpan: parameter.PressureSpan,
	DragTension:  parameter.ElasticDragTension,
	DragDeadZone: parameter.DragDeadZone,
	Gravity:      parameter.ElasticGravity,
	VertexDecay:  parameter.ElasticVertexDecay,
	BodyDecay:    parameter.ElasticBodyDecay,
	AccelCap:     parameter.ElasticAccelCap,
	Restitution:  parameter.ElasticRestitution,
	Friction:     parameter.ElasticFriction,
	MinDistance:  parameter.MinDistance,
	AreaFloor:    parameter.AreaFloor,
}

// Prototype is the first tuning: radial pressure from the centroid, multiplicative damping, no cap
var Prototype = Profile{
	Name:         "prototype",
	Tension:      parameter.PrototypeTension,
	TensionMode:  TensionSpring,
	Pressure:     parameter.PrototypePressure,
	PressureMode: PressureRadial,
	PressureGate: PressureAlways,
	PressureSpan: parameter.PressureSpan,
	DragTension:  0,
	DragDeadZone: parameter.DragDeadZone,
	Gravity:      parameter.PrototypeGravity,
	Damping:      parameter.PrototypeDamping,
	Restitution:  parameter.PrototypeRestitution,
	Friction:     parameter.PrototypeFriction,
	MinDistance:  parameter.MinDistance,
	AreaFloor:    parameter.AreaFloor,
}

var presets = map[string]*Profile{
	Blob.Name:      &Blob,
	Elastic.Name:   &Elastic,
	Prototype.Name: &Prototype,
}

// Preset returns a copy of the named preset
func Preset(name string) (Profile, bool) {
	p, ok := presets[strings.ToLower(name)]
	if !ok {
		return Profile{}, false
	}
	return *p, true
}

// PresetNames returns registered preset names sorted
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for k := range presets {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Validate rejects values that would make a step produce non-finite state
func (p *Profile) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"tension", p.Tension},
		{"pressure", p.Pressure},
		{"drag_tension", p.DragTension},
		{"drag_dead_zone", p.DragDeadZone},
		{"gravity", p.Gravity},
		{"vertex_decay", p.VertexDecay},
		{"body_decay", p.BodyDecay},
		{"damping", p.Damping},
		{"accel_cap", p.AccelCap},
		{"restitution", p.Restitution},
		{"friction", p.Friction},
		{"min_distance", p.MinDistance},
		{"area_floor", p.AreaFloor},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidProfile, f.name)
		}
		if f.v < 0 {
			return fmt.Errorf("%w: %s is negative (%g)", ErrInvalidProfile, f.name, f.v)
		}
	}
	if p.MinDistance == 0 {
		return fmt.Errorf("%w: min_distance must be positive", ErrInvalidProfile)
	}
	if p.AreaFloor == 0 {
		return fmt.Errorf("%w: area_floor must be positive", ErrInvalidProfile)
	}
	if p.Damping > 1 {
		return fmt.Errorf("%w: damping %g above 1", ErrInvalidProfile, p.Damping)
	}
	if p.PressureSpan < 1 {
		return fmt.Errorf("%w: pressure_span %d below 1", ErrInvalidProfile, p.PressureSpan)
	}
	if p.TensionMode > TensionSpring || p.PressureMode > PressureRadial || p.PressureGate > PressureAlways {
		return fmt.Errorf("%w: unknown mode", ErrInvalidProfile)
	}
	return nil
}

// span returns the per-side averaging width usable for n vertices
// Windows on both sides must not overlap or the chord degenerates
func (p *Profile) span(n int) int {
	s := p.PressureSpan
	if limit := (n - 1) / 2; s > limit {
		s = limit
	}
	if s < 1 {
		s = 1
	}
	return s
}
