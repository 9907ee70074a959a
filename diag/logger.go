package diag

import (
	"io"
	"log"

	"github.com/lixenwraith/softbody/core"
)

// Logger prints diagnostics as key=value lines
type Logger struct {
	log *log.Logger
	// Every prints scalars only on every n-th occurrence per name (0 or 1 = all)
	Every int
	seen  map[string]int
}

// NewLogger writes to w with the given prefix
func NewLogger(w io.Writer, prefix string) *Logger {
	return &Logger{
		log:  log.New(w, prefix, log.Lmicroseconds),
		seen: make(map[string]int),
	}
}

// Scalar logs a named value subject to the Every filter
func (l *Logger) Scalar(name string, v float64) {
	n := l.seen[name]
	l.seen[name] = n + 1
	if l.Every > 1 && n%l.Every != 0 {
		return
	}
	l.log.Printf("name=%s value=%g", name, v)
}

// Vertex logs every vertex report unfiltered
func (l *Logger) Vertex(name string, index int, v core.Vertex) {
	l.log.Printf("name=%s vertex=%d x=%g y=%g vx=%g vy=%g", name, index, v.X, v.Y, v.VX, v.VY)
}
