package core

import "unsafe"

// Floats returns a zero-copy flat view [x0 y0 vx0 vy0 x1 ...] aliasing the vertices
// Writes through the view mutate the ring and vice versa
func Floats(vs []Vertex) []float64 {
	if len(vs) == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&vs[0])), len(vs)*VertexFields)
}

// Vertices reinterprets a flat float view as vertices, trailing partial records are dropped
func Vertices(fs []float64) []Vertex {
	n := len(fs) / VertexFields
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*Vertex)(unsafe.Pointer(&fs[0])), n)
}
