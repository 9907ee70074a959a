package physics

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/softbody/core"
	"github.com/lixenwraith/softbody/diag"
	"github.com/lixenwraith/softbody/vmath"
)

var ErrInvalidParams = errors.New("invalid step parameters")

// Params are the per-call inputs supplied by the host
type Params struct {
	Radius        float64 // Rest radius
	Width, Height float64 // Arena size, centered on origin
	Gravity       r2.Vec  // Host gravity direction, scaled by Profile.Gravity
	Drag          bool    // Pointer drag active
	Target        r2.Vec  // Pointer drag target
	Dt            float64 // Seconds to advance
}

// Validate rejects inputs that would corrupt the ring
func (p *Params) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"radius", p.Radius},
		{"width", p.Width},
		{"height", p.Height},
		{"gravity.x", p.Gravity.X},
		{"gravity.y", p.Gravity.Y},
		{"target.x", p.Target.X},
		{"target.y", p.Target.Y},
		{"dt", p.Dt},
	} {
		if !vmath.Finite(f.v) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidParams, f.name)
		}
	}
	if p.Radius <= 0 {
		return fmt.Errorf("%w: radius %g must be positive", ErrInvalidParams, p.Radius)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: arena %gx%g must be positive", ErrInvalidParams, p.Width, p.Height)
	}
	if p.Dt < 0 {
		return fmt.Errorf("%w: dt %g is negative", ErrInvalidParams, p.Dt)
	}
	return nil
}

// Stats summarizes one step or frame
type Stats struct {
	Area     float64 // Frame-start area of the last sub-step
	Centroid r2.Vec  // Frame-start centroid of the last sub-step
	Impacts  int     // Wall impacts across sub-steps
	Guarded  int     // Force terms skipped on degenerate geometry across sub-steps
}

// Kernel runs the step pipeline with a fixed profile
// Not safe for concurrent use on the same ring
type Kernel struct {
	Profile  *Profile
	Reporter diag.Reporter // nil disables diagnostics
	frame    uint64
}

// NewKernel validates and copies profile
func NewKernel(profile Profile, rep diag.Reporter) (*Kernel, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return &Kernel{Profile: &profile, Reporter: rep}, nil
}

// Frames returns the number of completed steps
func (k *Kernel) Frames() uint64 {
	return k.frame
}

// Step advances the ring by params.Dt in place:
// aggregates -> velocity pass -> position pass -> wall collision
func (k *Kernel) Step(ring core.Ring, params Params) (Stats, error) {
	if len(ring) < core.MinVertices {
		return Stats{}, fmt.Errorf("%w: %d", core.ErrVertexCount, len(ring))
	}
	if err := params.Validate(); err != nil {
		return Stats{}, err
	}
	return k.step(ring, &params), nil
}

func (k *Kernel) step(ring core.Ring, params *Params) Stats {
	agg := ComputeAggregates(ring, params.Radius)
	guarded := Accelerate(ring, &agg, params, k.Profile, k.Reporter)
	Advance(ring, params.Dt)
	impacts := ResolveBounds(ring, core.BoundsFromSize(params.Width, params.Height), k.Profile, params.Dt)
	k.frame++

	if k.Reporter != nil {
		k.Reporter.Scalar("area", agg.Area)
		k.Reporter.Scalar("area.ratio", agg.Area/agg.RestArea)
		k.Reporter.Scalar("centroid.x", agg.Centroid.X)
		k.Reporter.Scalar("centroid.y", agg.Centroid.Y)
		k.Reporter.Scalar("energy", KineticEnergy(ring))
		if impacts > 0 {
			k.Reporter.Scalar("impacts", float64(impacts))
		}
	}

	return Stats{
		Area:     agg.Area,
		Centroid: agg.Centroid,
		Impacts:  impacts,
		Guarded:  guarded,
	}
}

// StepFrame splits params.Dt into substeps equal steps and runs them in order
func (k *Kernel) StepFrame(ring core.Ring, params Params, substeps int) (Stats, error) {
	if substeps < 1 {
		return Stats{}, fmt.Errorf("%w: substeps %d below 1", ErrInvalidParams, substeps)
	}
	if len(ring) < core.MinVertices {
		return Stats{}, fmt.Errorf("%w: %d", core.ErrVertexCount, len(ring))
	}
	if err := params.Validate(); err != nil {
		return Stats{}, err
	}

	params.Dt /= float64(substeps)
	var total Stats
	for i := 0; i < substeps; i++ {
		s := k.step(ring, &params)
		total.Area = s.Area
		total.Centroid = s.Centroid
		total.Impacts += s.Impacts
		total.Guarded += s.Guarded
	}
	return total, nil
}
