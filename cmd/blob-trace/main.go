package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/softbody/config"
	"github.com/lixenwraith/softbody/core"
	"github.com/lixenwraith/softbody/diag"
	"github.com/lixenwraith/softbody/physics"
	"github.com/lixenwraith/softbody/vmath"
)

var (
	configFlag = flag.String("config", "", "TOML config file")
	presetFlag = flag.String("preset", "", "Profile preset: blob, elastic, prototype")
	framesFlag = flag.Int("frames", 300, "Frames to simulate")
	widthFlag  = flag.Int("width", 72, "Plot width in columns")
	dragFlag   = flag.Int("drag", 0, "Drag toward (-dragx, -dragy) for this many leading frames")
	dragX      = flag.Float64("dragx", 0, "Drag target x")
	dragY      = flag.Float64("dragy", 0, "Drag target y")
	dumpFlag   = flag.Bool("dump", false, "Print effective config as TOML and exit")
	logFlag    = flag.Bool("log", false, "Also log every frame's final sub-step to stderr")
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
)

func main() {
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

	if *dumpFlag {
		if err := config.Encode(os.Stdout, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	res, err := run(cfg, *framesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Println(report(cfg, res, *widthFlag))
	if res.nonFinite {
		os.Exit(2)
	}
}

type result struct {
	rec       *diag.Recorder
	frames    int
	impacts   int
	guarded   int
	final     physics.Stats
	nonFinite bool
}

func run(cfg config.Config, frames int) (*result, error) {
	rec := diag.NewRecorder(0)
	var rep diag.Reporter = rec
	if *logFlag {
		l := diag.NewLogger(os.Stderr, "trace ")
		l.Every = cfg.Host.Substeps
		rep = diag.Multi{rec, l}
	}

	k, err := physics.NewKernel(cfg.Profile, rep)
	if err != nil {
		return nil, err
	}
	ring, err := core.NewRing(make([]core.Vertex, cfg.Body.Vertices), cfg.Body.Vertices)
	if err != nil {
		return nil, err
	}
	physics.InitCircle(ring, cfg.Body.Radius)

	params := physics.Params{
		Radius:  cfg.Body.Radius,
		Width:   cfg.Arena.Width,
		Height:  cfg.Arena.Height,
		Gravity: r2.Vec{X: cfg.Arena.GravityX, Y: cfg.Arena.GravityY},
		Target:  r2.Vec{X: *dragX, Y: *dragY},
		Dt:      cfg.Host.FrameTime,
	}

	res := &result{rec: rec}
	for f := 0; f < frames; f++ {
		params.Drag = f < *dragFlag
		stats, err := k.StepFrame(ring, params, cfg.Host.Substeps)
		if err != nil {
			return nil, err
		}
		res.frames++
		res.impacts += stats.Impacts
		res.guarded += stats.Guarded
		res.final = stats
		if !finite(ring) {
			res.nonFinite = true
			break
		}
	}
	return res, nil
}

func finite(ring core.Ring) bool {
	for _, x := range core.Floats(ring) {
		if !vmath.Finite(x) {
			return false
		}
	}
	return true
}

// downsample averages s into at most n buckets
func downsample(s []float64, n int) []float64 {
	if n < 1 || len(s) <= n {
		return s
	}
	out := make([]float64, n)
	for i := range out {
		lo, hi := i*len(s)/n, (i+1)*len(s)/n
		sum := 0.0
		for _, v := range s[lo:hi] {
			sum += v
		}
		out[i] = sum / float64(hi-lo)
	}
	return out
}

func report(cfg config.Config, res *result, width int) string {
	var b strings.Builder

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}

	ratio, _ := res.rec.Last("area.ratio")
	energy, _ := res.rec.Last("energy")
	row("preset", cfg.Preset)
	row("vertices", fmt.Sprintf("%d", cfg.Body.Vertices))
	row("frames", fmt.Sprintf("%d x %d sub-steps", res.frames, cfg.Host.Substeps))
	row("arena", fmt.Sprintf("%g x %g", cfg.Arena.Width, cfg.Arena.Height))
	row("area ratio", fmt.Sprintf("%.4f", ratio))
	row("energy", fmt.Sprintf("%.4g", energy))
	row("centroid", fmt.Sprintf("(%.2f, %.2f)", res.final.Centroid.X, res.final.Centroid.Y))
	row("wall impacts", fmt.Sprintf("%d", res.impacts))
	row("guarded terms", fmt.Sprintf("%d", res.guarded))
	if n := res.rec.VertexReports("degenerate"); n > 0 {
		row("degenerate", fmt.Sprintf("%d vertex reports", n))
	}

	out := []string{titleStyle.Render("soft body trace"), boxStyle.Render(strings.TrimRight(b.String(), "\n"))}
	if res.nonFinite {
		out = append(out, warnStyle.Render("state became non-finite"))
	}

	for _, name := range []string{"area.ratio", "energy", "centroid.y"} {
		s := res.rec.Series(name)
		if len(s) == 0 {
			continue
		}
		chart := asciigraph.Plot(downsample(s, width),
			asciigraph.Height(8),
			asciigraph.Width(width),
			asciigraph.Caption(name))
		out = append(out, graphStyle.Render(chart))
	}

	return lipgloss.JoinVertical(lipgloss.Left, out...)
}
