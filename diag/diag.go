// Package diag carries one-way numeric diagnostics from the kernel to its host.
//
// The kernel never depends on where values go; hosts pick a Reporter:
//   - Nop discards everything
//   - Logger prints through a *log.Logger
//   - Recorder keeps bounded per-name series for plotting
package diag

import "github.com/lixenwraith/softbody/core"

// Reporter receives scalar and vertex values emitted during a step
type Reporter interface {
	Scalar(name string, v float64)
	Vertex(name string, index int, v core.Vertex)
}

// Nop discards all diagnostics
type Nop struct{}

func (Nop) Scalar(string, float64)          {}
func (Nop) Vertex(string, int, core.Vertex) {}

// Multi fans out to several reporters in order
type Multi []Reporter

func (m Multi) Scalar(name string, v float64) {
	for _, r := range m {
		r.Scalar(name, v)
	}
}

func (m Multi) Vertex(name string, index int, v core.Vertex) {
	for _, r := range m {
		r.Vertex(name, index, v)
	}
}
