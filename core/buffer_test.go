package core

import (
	"errors"
	"testing"
)

func TestNewRing(t *testing.T) {
	buf := make([]Vertex, 8)

	r, err := NewRing(buf, 5)
	if err != nil {
		t.Fatalf("NewRing failed: %v", err)
	}
	if r.Len() != 5 {
		t.Errorf("Expected length 5, got %d", r.Len())
	}
	if cap(r) != 5 {
		t.Errorf("Expected capacity clipped to 5, got %d", cap(r))
	}

	// View aliases the caller buffer
	r[2].X = 42
	if buf[2].X != 42 {
		t.Errorf("Expected ring write to reach buffer, got %v", buf[2].X)
	}
}

func TestNewRingRejects(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		count int
		want  error
	}{
		{"zero", 8, 0, ErrVertexCount},
		{"two", 8, 2, ErrVertexCount},
		{"negative", 8, -1, ErrVertexCount},
		{"short buffer", 4, 5, ErrBufferTooSmall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRing(make([]Vertex, tt.size), tt.count)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestRingIndexWraps(t *testing.T) {
	r := Ring(make([]Vertex, 5))

	cases := map[int]int{-11: 4, -6: 4, -5: 0, -1: 4, 0: 0, 4: 4, 5: 0, 7: 2, 13: 3}
	for in, want := range cases {
		if got := r.Index(in); got != want {
			t.Errorf("Index(%d): expected %d, got %d", in, want, got)
		}
	}
	if r.Prev(0) != 4 {
		t.Errorf("Expected Prev(0)=4, got %d", r.Prev(0))
	}
	if r.Next(4) != 0 {
		t.Errorf("Expected Next(4)=0, got %d", r.Next(4))
	}
}

func TestFloatsZeroCopy(t *testing.T) {
	vs := []Vertex{{X: 1, Y: 2, VX: 3, VY: 4}, {X: 5, Y: 6, VX: 7, VY: 8}}
	fs := Floats(vs)

	if len(fs) != 8 {
		t.Fatalf("Expected 8 floats, got %d", len(fs))
	}
	for i, want := range []float64{1, 2, 3, 4, 5, 6, 7, 8} {
		if fs[i] != want {
			t.Errorf("Index %d: expected %v, got %v", i, want, fs[i])
		}
	}

	vs[1].VY = -1
	if fs[7] != -1 {
		t.Errorf("Expected float view to observe vertex write, got %v", fs[7])
	}
	fs[0] = 9
	if vs[0].X != 9 {
		t.Errorf("Expected vertex to observe float write, got %v", vs[0].X)
	}

	back := Vertices(fs[:7])
	if len(back) != 1 || &back[0] != &vs[0] {
		t.Errorf("Expected one aliased vertex, got %d", len(back))
	}
	if Floats(nil) != nil {
		t.Error("Expected nil view for empty slice")
	}
}

func TestBounds(t *testing.T) {
	b := BoundsFromSize(200, 100)
	if b.HalfWidth != 100 || b.HalfHeight != 50 {
		t.Errorf("Expected half extents 100x50, got %vx%v", b.HalfWidth, b.HalfHeight)
	}
	if !b.Contains(100, -50) {
		t.Error("Expected edge point to be contained")
	}
	if b.Contains(100.5, 0) {
		t.Error("Expected outside point to be rejected")
	}
}
