package physics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/softbody/core"
	"github.com/lixenwraith/softbody/diag"
	"github.com/lixenwraith/softbody/vmath"
)

func accelerate(ring core.Ring, params Params, p Profile, rep diag.Reporter) int {
	agg := ComputeAggregates(ring, params.Radius)
	return Accelerate(ring, &agg, &params, &p, rep)
}

func TestTensionModes(t *testing.T) {
	// Equilateral triangle of circumradius 10 has edges shorter than rest length 2π·10/3
	params := Params{Radius: 10, Dt: 0.1}

	t.Run("pull ignores compression", func(t *testing.T) {
		ring := newCircle(t, 3, 10)
		p := quiet()
		p.Tension = 1
		p.TensionMode = TensionPull
		accelerate(ring, params, p, nil)
		for i, v := range ring {
			if v.VX != 0 || v.VY != 0 {
				t.Errorf("Vertex %d: expected no velocity, got (%v, %v)", i, v.VX, v.VY)
			}
		}
	})

	t.Run("spring pushes compressed edges", func(t *testing.T) {
		ring := newCircle(t, 3, 10)
		p := quiet()
		p.Tension = 1
		p.TensionMode = TensionSpring
		accelerate(ring, params, p, nil)
		if ring[0].VX <= 0 {
			t.Errorf("Expected vertex 0 pushed outward, got vx=%v", ring[0].VX)
		}
		if math.Abs(ring[0].VY) > 1e-12 {
			t.Errorf("Expected no tangential velocity, got vy=%v", ring[0].VY)
		}
	})

	for _, mode := range []TensionMode{TensionPull, TensionSpring} {
		t.Run("stretched pulls inward "+mode.String(), func(t *testing.T) {
			ring := newCircle(t, 3, 10)
			p := quiet()
			p.Tension = 1
			p.TensionMode = mode
			accelerate(ring, Params{Radius: 2, Dt: 0.1}, p, nil)
			if ring[0].VX >= 0 {
				t.Errorf("Expected vertex 0 pulled inward, got vx=%v", ring[0].VX)
			}
		})
	}
}

func TestPressureGate(t *testing.T) {
	tests := []struct {
		name     string
		gate     PressureGate
		radius   float64 // Rest radius; ring is laid out at 10
		wantPush bool
	}{
		{"deficit under rest area", PressureDeficit, 20, true},
		{"deficit over rest area", PressureDeficit, 5, false},
		{"always under rest area", PressureAlways, 20, true},
		{"always over rest area", PressureAlways, 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ring := newCircle(t, 8, 10)
			p := quiet()
			p.Pressure = 1
			p.PressureGate = tt.gate
			accelerate(ring, Params{Radius: tt.radius, Dt: 0.1}, p, nil)

			pushed := ring[0].VX > 0
			if pushed != tt.wantPush {
				t.Errorf("Expected push=%v, got vx=%v", tt.wantPush, ring[0].VX)
			}
		})
	}
}

func TestPressureMagnitude(t *testing.T) {
	for _, mode := range []PressureMode{PressureNormal, PressureRadial} {
		t.Run(mode.String(), func(t *testing.T) {
			ring := newCircle(t, 8, 10)
			p := quiet()
			p.Pressure = 1
			p.PressureMode = mode
			params := Params{Radius: 20, Dt: 0.1}

			agg := ComputeAggregates(ring, params.Radius)
			want := agg.RestArea / agg.Area * params.Dt
			Accelerate(ring, &agg, &params, &p, nil)

			if !vmath.NearlyEqual(ring[0].VX, want, 1e-9) {
				t.Errorf("Expected vx %v, got %v", want, ring[0].VX)
			}
			if math.Abs(ring[0].VY) > 1e-12 {
				t.Errorf("Expected vy 0, got %v", ring[0].VY)
			}
		})
	}
}

func TestPressureReversedWindingPushesOutward(t *testing.T) {
	ring := newCircle(t, 8, 10)
	for i, j := 1, len(ring)-1; i < j; i, j = i+1, j-1 {
		ring[i], ring[j] = ring[j], ring[i]
	}
	p := quiet()
	p.Pressure = 1
	accelerate(ring, Params{Radius: 20, Dt: 0.1}, p, nil)

	// Vertex 0 stays at (10, 0)
	if ring[0].VX <= 0 {
		t.Errorf("Expected outward push on clockwise ring, got vx=%v", ring[0].VX)
	}
}

func TestPressureSmallRingSpan(t *testing.T) {
	// With span clipped to 1 a triangle still yields a usable normal
	ring := newCircle(t, 3, 10)
	p := quiet()
	p.Pressure = 1
	guarded := accelerate(ring, Params{Radius: 20, Dt: 0.1}, p, nil)
	if guarded != 0 {
		t.Errorf("Expected no guarded terms, got %d", guarded)
	}
	if ring[0].VX <= 0 {
		t.Errorf("Expected outward push, got vx=%v", ring[0].VX)
	}
}

func TestProfileSpan(t *testing.T) {
	p := quiet()
	cases := map[int]int{3: 1, 4: 1, 5: 2, 6: 2, 7: 3, 50: 3}
	for n, want := range cases {
		if got := p.span(n); got != want {
			t.Errorf("span(%d): expected %d, got %d", n, want, got)
		}
	}
	p.PressureSpan = 1
	if got := p.span(50); got != 1 {
		t.Errorf("Expected configured span 1, got %d", got)
	}
}

func TestDragAppliesToWholeBody(t *testing.T) {
	p := quiet()
	p.DragTension = 4
	p.DragDeadZone = 1

	t.Run("pulls every vertex equally", func(t *testing.T) {
		ring := newCircle(t, 8, 10)
		accelerate(ring, Params{Radius: 10, Dt: 0.1, Drag: true, Target: r2.Vec{X: 100}}, p, nil)
		// a = 4·0.1·100 = 40, dv = a·dt = 4
		for i, v := range ring {
			if !vmath.NearlyEqual(v.VX, 4, 1e-12) || math.Abs(v.VY) > 1e-12 {
				t.Errorf("Vertex %d: expected (4, 0), got (%v, %v)", i, v.VX, v.VY)
			}
		}
	})

	t.Run("disabled flag", func(t *testing.T) {
		ring := newCircle(t, 8, 10)
		accelerate(ring, Params{Radius: 10, Dt: 0.1, Drag: false, Target: r2.Vec{X: 100}}, p, nil)
		if ring[0].VX != 0 {
			t.Errorf("Expected no drag, got vx=%v", ring[0].VX)
		}
	})

	t.Run("dead zone", func(t *testing.T) {
		ring := newCircle(t, 8, 10)
		accelerate(ring, Params{Radius: 10, Dt: 0.1, Drag: true, Target: r2.Vec{X: 0.5}}, p, nil)
		if ring[0].VX != 0 {
			t.Errorf("Expected no drag inside dead zone, got vx=%v", ring[0].VX)
		}
	})

	t.Run("capped", func(t *testing.T) {
		ring := newCircle(t, 8, 10)
		capped := p
		capped.AccelCap = 1
		accelerate(ring, Params{Radius: 10, Dt: 0.1, Drag: true, Target: r2.Vec{X: 100, Y: -100}}, capped, nil)
		if ring[0].VX != 1 || ring[0].VY != -1 {
			t.Errorf("Expected per-axis cap (1, -1), got (%v, %v)", ring[0].VX, ring[0].VY)
		}
	})
}

func TestDecay(t *testing.T) {
	t.Run("vertex relative", func(t *testing.T) {
		ring := newCircle(t, 4, 10)
		ring[0].VX = 10
		p := quiet()
		p.VertexDecay = 1
		accelerate(ring, Params{Radius: 10, Dt: 0.5}, p, nil)

		// Mean vx is 2.5, half the relative velocity is removed
		if ring[0].VX != 6.25 {
			t.Errorf("Expected vertex 0 vx 6.25, got %v", ring[0].VX)
		}
		for i := 1; i < 4; i++ {
			if ring[i].VX != 1.25 {
				t.Errorf("Vertex %d: expected vx 1.25, got %v", i, ring[i].VX)
			}
		}
	})

	t.Run("body", func(t *testing.T) {
		ring := newCircle(t, 4, 10)
		ApplyImpulse(ring, 4, -8)
		p := quiet()
		p.BodyDecay = 0.5
		accelerate(ring, Params{Radius: 10, Dt: 1}, p, nil)
		for i, v := range ring {
			if v.VX != 2 || v.VY != -4 {
				t.Errorf("Vertex %d: expected (2, -4), got (%v, %v)", i, v.VX, v.VY)
			}
		}
	})

	t.Run("factor clamped", func(t *testing.T) {
		ring := newCircle(t, 4, 10)
		ring[0].VX = 8
		p := quiet()
		p.VertexDecay = 100
		accelerate(ring, Params{Radius: 10, Dt: 1}, p, nil)
		for i, v := range ring {
			if v.VX != 2 {
				t.Errorf("Vertex %d: expected collapse to mean 2, got %v", i, v.VX)
			}
		}
	})

	t.Run("damping", func(t *testing.T) {
		ring := newCircle(t, 4, 10)
		ApplyImpulse(ring, 10, 0)
		p := quiet()
		p.Damping = 0.25
		accelerate(ring, Params{Radius: 10, Dt: 1}, p, nil)
		if ring[0].VX != 7.5 {
			t.Errorf("Expected vx 7.5, got %v", ring[0].VX)
		}
	})
}

func TestCoincidentVerticesGuarded(t *testing.T) {
	ring, _ := core.NewRing(make([]core.Vertex, 6), 6)
	rec := diag.NewRecorder(0)

	guarded := accelerate(ring, Params{Radius: 10, Dt: 0.1, Gravity: r2.Vec{Y: 1}}, Blob, rec)

	// Two tension terms and the pressure normal per vertex
	if guarded != 18 {
		t.Errorf("Expected 18 guarded terms, got %d", guarded)
	}
	if n := rec.VertexReports("degenerate"); n != 6 {
		t.Errorf("Expected 6 degenerate reports, got %d", n)
	}
	assertFinite(t, ring, "coincident")
	for i, v := range ring {
		if !vmath.NearlyEqual(v.VY, Blob.Gravity*0.1, 1e-12) {
			t.Errorf("Vertex %d: expected gravity only, got vy=%v", i, v.VY)
		}
	}
}

func TestCollinearRingStaysFinite(t *testing.T) {
	ring, _ := core.NewRing(make([]core.Vertex, 5), 5)
	for i := range ring {
		ring[i].X = float64(i)
	}
	k := newKernel(t, Blob)
	for i := 0; i < 200; i++ {
		if _, err := k.Step(ring, Params{Radius: 10, Width: 100, Height: 100, Dt: 0.025}); err != nil {
			t.Fatalf("Step failed: %v", err)
		}
	}
	assertFinite(t, ring, "collinear")
}
