package diag

import (
	"sort"

	"github.com/lixenwraith/softbody/core"
)

// Recorder keeps the last Limit scalar samples per name and counts vertex reports
type Recorder struct {
	Limit    int
	series   map[string][]float64
	vertices map[string]int
}

// NewRecorder creates a recorder bounded to limit samples per series (0 = unbounded)
func NewRecorder(limit int) *Recorder {
	return &Recorder{
		Limit:    limit,
		series:   make(map[string][]float64),
		vertices: make(map[string]int),
	}
}

func (r *Recorder) Scalar(name string, v float64) {
	s := append(r.series[name], v)
	if r.Limit > 0 && len(s) > r.Limit {
		// Shift in place to keep backing array bounded
		copy(s, s[len(s)-r.Limit:])
		s = s[:r.Limit]
	}
	r.series[name] = s
}

func (r *Recorder) Vertex(name string, _ int, _ core.Vertex) {
	r.vertices[name]++
}

// Series returns recorded samples for name, oldest first
func (r *Recorder) Series(name string) []float64 {
	return r.series[name]
}

// Last returns the most recent sample and whether one exists
func (r *Recorder) Last(name string) (float64, bool) {
	s := r.series[name]
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1], true
}

// VertexReports returns how many vertex reports arrived under name
func (r *Recorder) VertexReports(name string) int {
	return r.vertices[name]
}

// Names returns recorded scalar names sorted
func (r *Recorder) Names() []string {
	names := make([]string, 0, len(r.series))
	for k := range r.series {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
