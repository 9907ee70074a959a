// Package host is the memory boundary between the kernel and a renderer.
//
// The renderer allocates a vertex region, initializes it, steps it once per frame and reads
// positions back through a zero-copy float view. Handles are opaque; the heap owns the backing
// arrays and the kernel only ever borrows a validated view of them for one call.
package host

import (
	"errors"
	"fmt"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/softbody/core"
	"github.com/lixenwraith/softbody/diag"
	"github.com/lixenwraith/softbody/physics"
)

// Handle identifies an allocated vertex region
type Handle uint32

var (
	ErrUnknownHandle    = errors.New("unknown handle")
	ErrCapacityMismatch = errors.New("capacity does not match allocation")
)

type region struct {
	vertices []core.Vertex
}

// Heap owns allocated vertex regions and a kernel that steps them
// The handle table is locked; stepping one handle from two goroutines is still a caller error
type Heap struct {
	mu      sync.Mutex
	regions map[Handle]*region
	next    Handle
	kernel  *physics.Kernel
}

// NewHeap creates a heap stepping with profile and reporting to rep (nil = silent)
func NewHeap(profile physics.Profile, rep diag.Reporter) (*Heap, error) {
	k, err := physics.NewKernel(profile, rep)
	if err != nil {
		return nil, err
	}
	return &Heap{
		regions: make(map[Handle]*region),
		next:    1,
		kernel:  k,
	}, nil
}

// Kernel exposes the stepping kernel for profile inspection
func (h *Heap) Kernel() *physics.Kernel {
	return h.kernel
}

// Alloc reserves storage for count vertices
func (h *Heap) Alloc(count int) (Handle, error) {
	if count < core.MinVertices {
		return 0, fmt.Errorf("alloc: %w: %d", core.ErrVertexCount, count)
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++
	h.regions[id] = &region{vertices: make([]core.Vertex, count)}
	return id, nil
}

// Free releases a region; capacity must equal the allocated count
func (h *Heap) Free(handle Handle, capacity int) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	r, ok := h.regions[handle]
	if !ok {
		return fmt.Errorf("free: %w: %d", ErrUnknownHandle, handle)
	}
	if capacity != len(r.vertices) {
		return fmt.Errorf("free: %w: got %d, allocated %d", ErrCapacityMismatch, capacity, len(r.vertices))
	}
	delete(h.regions, handle)
	return nil
}

// Len returns the number of live regions
func (h *Heap) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.regions)
}

// ring resolves a handle to a view of exactly count vertices
func (h *Heap) ring(handle Handle, count int) (core.Ring, error) {
	h.mu.Lock()
	r, ok := h.regions[handle]
	h.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHandle, handle)
	}
	if count != len(r.vertices) {
		return nil, fmt.Errorf("%w: count %d, allocated %d", ErrCapacityMismatch, count, len(r.vertices))
	}
	return core.NewRing(r.vertices, count)
}

// Ring returns the typed view of a whole region
func (h *Heap) Ring(handle Handle) (core.Ring, error) {
	h.mu.Lock()
	r, ok := h.regions[handle]
	h.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("ring: %w: %d", ErrUnknownHandle, handle)
	}
	return core.Ring(r.vertices), nil
}

// Floats returns the zero-copy [x y vx vy]... view of a region
// The view stays valid until Free; later steps are visible through it without copying
func (h *Heap) Floats(handle Handle) ([]float64, error) {
	ring, err := h.Ring(handle)
	if err != nil {
		return nil, err
	}
	return core.Floats(ring), nil
}

// Init lays out count vertices on a circle of radius around the origin
func (h *Heap) Init(handle Handle, count int, radius float64) error {
	ring, err := h.ring(handle, count)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	physics.InitCircle(ring, radius)
	return nil
}

// Step advances a region by one frame in place
func (h *Heap) Step(
	handle Handle,
	count int,
	radius, width, height float64,
	gravX, gravY float64,
	drag bool,
	dragX, dragY float64,
	dt float64,
) error {
	ring, err := h.ring(handle, count)
	if err != nil {
		return fmt.Errorf("step: %w", err)
	}
	_, err = h.kernel.Step(ring, physics.Params{
		Radius:  radius,
		Width:   width,
		Height:  height,
		Gravity: r2.Vec{X: gravX, Y: gravY},
		Drag:    drag,
		Target:  r2.Vec{X: dragX, Y: dragY},
		Dt:      dt,
	})
	if err != nil {
		return fmt.Errorf("step: %w", err)
	}
	return nil
}
