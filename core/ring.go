package core

import (
	"errors"
	"fmt"
)

// MinVertices is the smallest ring that encloses an area
const MinVertices = 3

var (
	ErrVertexCount    = errors.New("vertex count below minimum")
	ErrBufferTooSmall = errors.New("buffer shorter than vertex count")
)

// Ring is a borrowed view over exactly N vertices in winding order
// Vertex i neighbors are (i-1) mod N and (i+1) mod N; the order is never permuted
type Ring []Vertex

// NewRing validates count against the backing buffer and returns a view of its first count vertices
// The view aliases buf, ownership stays with the caller
func NewRing(buf []Vertex, count int) (Ring, error) {
	if count < MinVertices {
		return nil, fmt.Errorf("%w: %d < %d", ErrVertexCount, count, MinVertices)
	}
	if len(buf) < count {
		return nil, fmt.Errorf("%w: len %d < count %d", ErrBufferTooSmall, len(buf), count)
	}
	return Ring(buf[:count:count]), nil
}

// Len returns vertex count
func (r Ring) Len() int {
	return len(r)
}

// Index wraps any integer offset to a valid vertex index
func (r Ring) Index(i int) int {
	n := len(r)
	return ((i % n) + n) % n
}

// Prev returns index of the previous neighbor
func (r Ring) Prev(i int) int {
	return r.Index(i - 1)
}

// Next returns index of the next neighbor
func (r Ring) Next(i int) int {
	return r.Index(i + 1)
}

// At returns vertex at a wrapped index
func (r Ring) At(i int) Vertex {
	return r[r.Index(i)]
}
