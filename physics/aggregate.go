package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/softbody/core"
	"github.com/lixenwraith/softbody/vmath"
)

// Aggregates are whole-body values derived from the frame-start ring
type Aggregates struct {
	Area     float64 // Signed shoelace area, positive for counter-clockwise winding in y-up
	Centroid r2.Vec  // Mean vertex position
	Velocity r2.Vec  // Mean vertex velocity
	RestEdge float64 // Edge length of the undeformed circle
	RestArea float64 // Area of the undeformed circle
}

// ComputeAggregates derives area, centroid and mean velocity in one pass
func ComputeAggregates(ring core.Ring, radius float64) Aggregates {
	n := len(ring)
	var agg Aggregates
	for i := range ring {
		v := ring[i]
		next := ring[vmath.Wrap(i+1, n)]
		agg.Area += v.X*next.Y - v.Y*next.X
		agg.Centroid.X += v.X
		agg.Centroid.Y += v.Y
		agg.Velocity.X += v.VX
		agg.Velocity.Y += v.VY
	}
	agg.Area /= 2

	inv := 1 / float64(n)
	agg.Centroid = r2.Scale(inv, agg.Centroid)
	agg.Velocity = r2.Scale(inv, agg.Velocity)

	agg.RestEdge = vmath.Tau * radius / float64(n)
	agg.RestArea = math.Pi * radius * radius
	return agg
}

// KineticEnergy returns total kinetic energy with unit vertex mass
func KineticEnergy(ring core.Ring) float64 {
	var e float64
	for _, v := range ring {
		e += v.VX*v.VX + v.VY*v.VY
	}
	return e / 2
}
