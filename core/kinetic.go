package core

// Vertex is one point mass of the ring
// Layout is four contiguous float64 values; host views depend on it
type Vertex struct {
	// X and Y are world-space coordinates
	X, Y float64
	// VX and VY are velocity in world units per second
	VX, VY float64
}

// VertexFields is the number of float64 values per Vertex in a flat view
const VertexFields = 4
