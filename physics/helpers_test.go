package physics

import (
	"testing"

	"github.com/lixenwraith/softbody/core"
)

// newCircle returns an initialized ring of n vertices at radius r
func newCircle(t testing.TB, n int, r float64) core.Ring {
	t.Helper()
	ring, err := core.NewRing(make([]core.Vertex, n), n)
	if err != nil {
		t.Fatalf("NewRing failed: %v", err)
	}
	InitCircle(ring, r)
	return ring
}

// quiet returns a profile with every force disabled and generous guards
func quiet() Profile {
	return Profile{
		Name:         "quiet",
		PressureSpan: 3,
		MinDistance:  1e-9,
		AreaFloor:    0.05,
	}
}

func newKernel(t testing.TB, p Profile) *Kernel {
	t.Helper()
	k, err := NewKernel(p, nil)
	if err != nil {
		t.Fatalf("NewKernel failed: %v", err)
	}
	return k
}

func assertFinite(t testing.TB, ring core.Ring, context string) {
	t.Helper()
	for i, v := range ring {
		for _, f := range []float64{v.X, v.Y, v.VX, v.VY} {
			if f != f || f > 1e308 || f < -1e308 {
				t.Fatalf("%s: vertex %d not finite: %+v", context, i, v)
			}
		}
	}
}
