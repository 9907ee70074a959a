package physics

import "github.com/lixenwraith/softbody/core"

// Advance is the position pass of semi-implicit Euler: p = p + v*dt
// Must run only after Accelerate has finalized every velocity
func Advance(ring core.Ring, dt float64) {
	for i := range ring {
		ring[i].X += ring[i].VX * dt
		ring[i].Y += ring[i].VY * dt
	}
}

// ApplyImpulse adds the same velocity delta to every vertex
func ApplyImpulse(ring core.Ring, vx, vy float64) {
	for i := range ring {
		ring[i].VX += vx
		ring[i].VY += vy
	}
}

// Translate shifts every vertex position, velocities untouched
func Translate(ring core.Ring, dx, dy float64) {
	for i := range ring {
		ring[i].X += dx
		ring[i].Y += dy
	}
}
