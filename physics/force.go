package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/softbody/core"
	"github.com/lixenwraith/softbody/diag"
	"github.com/lixenwraith/softbody/vmath"
)

// Accelerate is the velocity pass of the step
// Positions are read-only here and whole-body values come from agg, so every vertex
// sees the frame-start state regardless of update order
// Returns the number of force terms skipped on degenerate geometry
func Accelerate(ring core.Ring, agg *Aggregates, params *Params, profile *Profile, rep diag.Reporter) int {
	n := len(ring)
	dt := params.Dt
	span := profile.span(n)

	pressure := pressureScale(agg, profile)
	drag := dragAccel(agg, params, profile)

	vertexDecay := vmath.Fraction(profile.VertexDecay * dt)
	bodyDecay := vmath.Fraction(profile.BodyDecay * dt)
	gravity := r2.Scale(profile.Gravity*dt, params.Gravity)
	keep := 1 - vmath.Fraction(profile.Damping)

	guarded := 0
	for i := range ring {
		v := ring[i]
		pos := r2.Vec{X: v.X, Y: v.Y}
		accel := drag
		skipped := 0

		// Edge tension toward both neighbors
		if !applyTension(&accel, pos, ring[ring.Prev(i)], agg.RestEdge, profile) {
			skipped++
		}
		if !applyTension(&accel, pos, ring[ring.Next(i)], agg.RestEdge, profile) {
			skipped++
		}

		if pressure != 0 {
			var dir r2.Vec
			var ok bool
			switch profile.PressureMode {
			case PressureRadial:
				dir, _, ok = vmath.Normalize(r2.Sub(pos, agg.Centroid), profile.MinDistance)
			default:
				dir, ok = localNormal(ring, i, span, profile.MinDistance)
			}
			if ok {
				accel = r2.Add(accel, r2.Scale(pressure, dir))
			} else {
				skipped++
			}
		}

		vel := r2.Add(r2.Vec{X: v.VX, Y: v.VY}, vmath.ClampVec(r2.Scale(dt, accel), profile.AccelCap))

		// Decay movement relative to body, then body movement
		vel = r2.Sub(vel, r2.Scale(vertexDecay, r2.Sub(vel, agg.Velocity)))
		vel = r2.Sub(vel, r2.Scale(bodyDecay, agg.Velocity))
		vel = r2.Add(vel, gravity)
		if keep != 1 {
			vel = r2.Scale(keep, vel)
		}

		ring[i].VX = vel.X
		ring[i].VY = vel.Y

		if skipped > 0 {
			guarded += skipped
			if rep != nil {
				rep.Vertex("degenerate", i, ring[i])
			}
		}
	}
	return guarded
}

// applyTension adds the spring toward nb; returns false when the pair is coincident
func applyTension(accel *r2.Vec, pos r2.Vec, nb core.Vertex, rest float64, profile *Profile) bool {
	dir, d, ok := vmath.Normalize(r2.Sub(r2.Vec{X: nb.X, Y: nb.Y}, pos), profile.MinDistance)
	if !ok {
		return false
	}
	if profile.TensionMode == TensionPull && d <= rest {
		return true
	}
	*accel = r2.Add(*accel, r2.Scale(profile.Tension*(d-rest), dir))
	return true
}

// localNormal estimates the outward normal at i from the chord between the averages
// of span vertices behind and ahead; outward for counter-clockwise winding
func localNormal(ring core.Ring, i, span int, minLen float64) (r2.Vec, bool) {
	var behind, ahead r2.Vec
	for j := 1; j <= span; j++ {
		b := ring.At(i - j)
		a := ring.At(i + j)
		behind.X += b.X
		behind.Y += b.Y
		ahead.X += a.X
		ahead.Y += a.Y
	}
	chord := r2.Scale(1/float64(span), r2.Sub(ahead, behind))
	dir, _, ok := vmath.Normalize(vmath.PerpendicularCW(chord), minLen)
	return dir, ok
}

// pressureScale returns the signed pressure magnitude for this step, 0 when gated off
// Area is floored away from zero keeping its sign; a reversed ring gets a negative scale,
// which flips the chord normal back outward
func pressureScale(agg *Aggregates, profile *Profile) float64 {
	if profile.Pressure == 0 || agg.RestArea == 0 {
		return 0
	}
	if profile.PressureGate == PressureDeficit && agg.Area >= agg.RestArea {
		return 0
	}
	floor := profile.AreaFloor * agg.RestArea
	area := agg.Area
	if math.Abs(area) < floor {
		area = math.Copysign(floor, area)
	}
	scale := profile.Pressure * agg.RestArea / area
	if profile.PressureMode == PressureRadial {
		// Radial direction is outward regardless of winding
		scale = math.Abs(scale)
	}
	return scale
}

// dragAccel returns the whole-body pointer spring, identical for every vertex
func dragAccel(agg *Aggregates, params *Params, profile *Profile) r2.Vec {
	if !params.Drag || profile.DragTension == 0 {
		return r2.Vec{}
	}
	delta := r2.Sub(params.Target, agg.Centroid)
	if r2.Norm(delta) <= profile.DragDeadZone {
		return r2.Vec{}
	}
	return r2.Scale(profile.DragTension*params.Dt, delta)
}
