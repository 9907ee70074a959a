package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/softbody/core"
	"github.com/lixenwraith/softbody/vmath"
)

// InitCircle lays the ring out as a regular polygon on a circle around the origin, at rest
func InitCircle(ring core.Ring, radius float64) {
	InitCircleAt(ring, radius, r2.Vec{})
}

// InitCircleAt lays the ring out around center; vertex i sits at angle 2π·i/N
func InitCircleAt(ring core.Ring, radius float64, center r2.Vec) {
	n := float64(len(ring))
	for i := range ring {
		theta := vmath.Tau * float64(i) / n
		ring[i] = core.Vertex{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
		}
	}
}
