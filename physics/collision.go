package physics

import (
	"github.com/lixenwraith/softbody/core"
	"github.com/lixenwraith/softbody/vmath"
)

// ResolveBounds clamps every vertex into the arena, returns number of wall impacts
// Walls are tested in order +y, -y, +x, -x; corner hits resolve sequentially
func ResolveBounds(ring core.Ring, b core.Bounds, profile *Profile, dt float64) int {
	friction := vmath.Fraction(profile.Friction * dt)
	impacts := 0
	for i := range ring {
		v := &ring[i]
		if v.Y > b.HalfHeight {
			v.Y = b.HalfHeight
			v.VY, v.VX = reflect(v.VY, v.VX, profile.Restitution, friction)
			impacts++
		}
		if v.Y < -b.HalfHeight {
			v.Y = -b.HalfHeight
			v.VY, v.VX = reflect(v.VY, v.VX, profile.Restitution, friction)
			impacts++
		}
		if v.X > b.HalfWidth {
			v.X = b.HalfWidth
			v.VX, v.VY = reflect(v.VX, v.VY, profile.Restitution, friction)
			impacts++
		}
		if v.X < -b.HalfWidth {
			v.X = -b.HalfWidth
			v.VX, v.VY = reflect(v.VX, v.VY, profile.Restitution, friction)
			impacts++
		}
	}
	return impacts
}

// reflect flips the normal component with restitution and damps the tangential one
func reflect(normal, tangent, restitution, friction float64) (float64, float64) {
	return -normal * restitution, tangent - tangent*friction
}
