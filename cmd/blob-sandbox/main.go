package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/softbody/config"
	"github.com/lixenwraith/softbody/core"
	"github.com/lixenwraith/softbody/diag"
	"github.com/lixenwraith/softbody/parameter"
	"github.com/lixenwraith/softbody/physics"
)

const (
	// aspectRatio is terminal cell height over width
	aspectRatio = 2.1
	// cellWorld is world units per cell column
	cellWorld = 8.0
	// keyHold keeps an arrow direction active after its last autorepeat
	keyHold = 180 * time.Millisecond
)

var (
	configFlag = flag.String("config", "", "TOML config file")
	presetFlag = flag.String("preset", "", "Profile preset: blob, elastic, prototype")
	soundFlag  = flag.Bool("sound", false, "Click on wall impacts")
	debugFlag  = flag.String("debug", "", "Write kernel diagnostics to this file")

	verticesFlag = flag.Int("vertices", 0, "Override ring vertex count")
	radiusFlag   = flag.Float64("radius", 0, "Override rest radius")
	substepsFlag = flag.Int("substeps", 0, "Override sub-steps per frame")
)

var gravityCycle = []r2.Vec{{X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1}, {X: 1, Y: 0}, {}}

// Sandbox holds host-side state around one body
type Sandbox struct {
	screen tcell.Screen
	cfg    config.Config
	kernel *physics.Kernel
	ring   core.Ring
	stats  physics.Stats

	width, height int

	gravityIdx int
	paused     bool

	mouseDown bool
	mouse     r2.Vec

	keys    map[physics.Direction]time.Time
	target  r2.Vec
	targetV r2.Vec
	spring  harmonica.Spring

	clicker *Clicker
	logOut  io.Closer
}

func main() {
	// Restore terminal before printing a crash
	var screen tcell.Screen
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mBLOB-SANDBOX CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}
	if *presetFlag != "" {
		if err := cfg.UsePreset(*presetFlag); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	if *verticesFlag > 0 {
		cfg.Body.Vertices = *verticesFlag
	}
	if *radiusFlag > 0 {
		cfg.Body.Radius = *radiusFlag
	}
	if *substepsFlag > 0 {
		cfg.Host.Substeps = *substepsFlag
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	s, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := s.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen = s
	defer s.Fini()
	s.EnableMouse()
	s.HideCursor()

	sb, err := newSandbox(s, cfg)
	if err != nil {
		s.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer sb.close()

	sb.run()
}

func newSandbox(s tcell.Screen, cfg config.Config) (*Sandbox, error) {
	sb := &Sandbox{
		screen: s,
		cfg:    cfg,
		keys:   make(map[physics.Direction]time.Time),
		spring: harmonica.NewSpring(harmonica.FPS(cfg.Host.FPS), 6.0, 1.0),
	}

	var rep diag.Reporter
	if *debugFlag != "" {
		f, err := os.Create(*debugFlag)
		if err != nil {
			return nil, fmt.Errorf("debug log: %w", err)
		}
		l := diag.NewLogger(f, "blob ")
		l.Every = cfg.Host.Substeps * cfg.Host.FPS
		rep = l
		sb.logOut = f
	}

	k, err := physics.NewKernel(cfg.Profile, rep)
	if err != nil {
		return nil, err
	}
	sb.kernel = k

	ring, err := core.NewRing(make([]core.Vertex, cfg.Body.Vertices), cfg.Body.Vertices)
	if err != nil {
		return nil, err
	}
	sb.ring = ring
	physics.InitCircle(ring, cfg.Body.Radius)

	if *soundFlag {
		if c, err := NewClicker(); err == nil {
			sb.clicker = c
		}
	}

	sb.width, sb.height = s.Size()
	return sb, nil
}

func (sb *Sandbox) close() {
	if sb.clicker != nil {
		sb.clicker.Close()
	}
	if sb.logOut != nil {
		sb.logOut.Close()
	}
}

func (sb *Sandbox) run() {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- sb.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !sb.handleInput(ev) {
				return
			}

		case <-ticker.C:
			if !sb.paused {
				sb.update()
			}
			sb.draw()
		}
	}
}

// arena returns world size covered by the terminal
func (sb *Sandbox) arena() (float64, float64) {
	return float64(sb.width) * cellWorld, float64(sb.height) * cellWorld * aspectRatio
}

// toWorld maps a cell center to world coordinates, origin at screen center
func (sb *Sandbox) toWorld(cx, cy int) r2.Vec {
	return r2.Vec{
		X: (float64(cx) + 0.5 - float64(sb.width)/2) * cellWorld,
		Y: (float64(cy) + 0.5 - float64(sb.height)/2) * cellWorld * aspectRatio,
	}
}

func (sb *Sandbox) heldDirections(now time.Time) physics.Direction {
	var dirs physics.Direction
	for d, at := range sb.keys {
		if now.Sub(at) < keyHold {
			dirs |= d
		}
	}
	return dirs
}

func (sb *Sandbox) update() {
	w, h := sb.arena()
	params := physics.Params{
		Radius:  sb.cfg.Body.Radius,
		Width:   w,
		Height:  h,
		Gravity: gravityCycle[sb.gravityIdx],
		Dt:      sb.cfg.Host.FrameTime,
	}

	if sb.mouseDown {
		params.Drag = true
		params.Target = sb.mouse
	} else if dirs := sb.heldDirections(time.Now()); dirs != 0 {
		// Keyboard target eases toward the nudge point instead of jumping
		want := physics.NudgeTarget(sb.stats.Centroid, sb.cfg.Body.Radius, dirs)
		sb.target.X, sb.targetV.X = sb.spring.Update(sb.target.X, sb.targetV.X, want.X)
		sb.target.Y, sb.targetV.Y = sb.spring.Update(sb.target.Y, sb.targetV.Y, want.Y)
		params.Drag = true
		params.Target = sb.target
	} else {
		sb.target, sb.targetV = sb.stats.Centroid, r2.Vec{}
	}

	stats, err := sb.kernel.StepFrame(sb.ring, params, sb.cfg.Host.Substeps)
	if err != nil {
		return
	}
	sb.stats = stats
	if stats.Impacts > 0 && sb.clicker != nil {
		sb.clicker.Click(stats.Impacts)
	}
}

func (sb *Sandbox) reset() {
	physics.InitCircle(sb.ring, sb.cfg.Body.Radius)
	sb.stats = physics.Stats{}
	sb.target, sb.targetV = r2.Vec{}, r2.Vec{}
}

func (sb *Sandbox) cyclePreset() {
	names := physics.PresetNames()
	next := names[0]
	for i, n := range names {
		if n == sb.cfg.Preset {
			next = names[(i+1)%len(names)]
		}
	}
	if err := sb.cfg.UsePreset(next); err != nil {
		return
	}
	k, err := physics.NewKernel(sb.cfg.Profile, sb.kernel.Reporter)
	if err != nil {
		return
	}
	sb.kernel = k
	sb.reset()
}

func (sb *Sandbox) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			sb.keys[physics.DirLeft] = time.Now()
		case tcell.KeyRight:
			sb.keys[physics.DirRight] = time.Now()
		case tcell.KeyUp:
			sb.keys[physics.DirUp] = time.Now()
		case tcell.KeyDown:
			sb.keys[physics.DirDown] = time.Now()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				sb.paused = !sb.paused
			case 'r':
				sb.reset()
			case 'g':
				sb.gravityIdx = (sb.gravityIdx + 1) % len(gravityCycle)
			case 'p':
				sb.cyclePreset()
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		p := sb.toWorld(x, y)
		if ev.Buttons()&tcell.Button1 != 0 {
			// Drag starts only on the body, continues anywhere
			if sb.mouseDown || physics.Contains(sb.stats.Centroid, sb.cfg.Body.Radius, p) {
				sb.mouseDown = true
				sb.mouse = p
			}
		} else {
			sb.mouseDown = false
		}

	case *tcell.EventResize:
		sb.width, sb.height = sb.screen.Size()
		sb.screen.Sync()
	}

	return true
}
