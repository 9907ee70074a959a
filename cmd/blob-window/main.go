package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/softbody/config"
	"github.com/lixenwraith/softbody/core"
	"github.com/lixenwraith/softbody/physics"
)

var (
	configFlag = flag.String("config", "", "TOML config file")
	presetFlag = flag.String("preset", "", "Profile preset: blob, elastic, prototype")
)

var (
	bgColor   = color.RGBA{R: 12, G: 12, B: 20, A: 255}
	bodyColor = color.RGBA{R: 0xff, G: 0xdd, B: 0x44, A: 255}
	faceColor = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	edgeColor = color.RGBA{R: 0xcc, G: 0x99, B: 0x11, A: 255}
)

var errQuit = errors.New("quit")

// Game adapts one body to ebiten's update/draw loop
type Game struct {
	cfg    config.Config
	kernel *physics.Kernel
	ring   core.Ring
	stats  physics.Stats

	width, height int
	gravity       r2.Vec
	paused        bool
	dragging      bool

	fill *ebiten.Image
	vs   []ebiten.Vertex
	is   []uint16
}

func newGame(cfg config.Config) (*Game, error) {
	k, err := physics.NewKernel(cfg.Profile, nil)
	if err != nil {
		return nil, err
	}
	ring, err := core.NewRing(make([]core.Vertex, cfg.Body.Vertices), cfg.Body.Vertices)
	if err != nil {
		return nil, err
	}
	physics.InitCircle(ring, cfg.Body.Radius)

	fill := ebiten.NewImage(1, 1)
	fill.Fill(bodyColor)

	return &Game{
		cfg:     cfg,
		kernel:  k,
		ring:    ring,
		width:   int(cfg.Arena.Width),
		height:  int(cfg.Arena.Height),
		gravity: r2.Vec{X: cfg.Arena.GravityX, Y: cfg.Arena.GravityY},
		fill:    fill,
	}, nil
}

// cursor returns the pointer in world coordinates, origin at window center
func (g *Game) cursor() r2.Vec {
	x, y := ebiten.CursorPosition()
	return r2.Vec{X: float64(x) - float64(g.width)/2, Y: float64(y) - float64(g.height)/2}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		physics.InitCircle(g.ring, g.cfg.Body.Radius)
		g.stats = physics.Stats{}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		// Rotate gravity a quarter turn clockwise on screen
		g.gravity = r2.Vec{X: -g.gravity.Y, Y: g.gravity.X}
	}
	if g.paused {
		return nil
	}

	params := physics.Params{
		Radius:  g.cfg.Body.Radius,
		Width:   float64(g.width),
		Height:  float64(g.height),
		Gravity: g.gravity,
		Dt:      g.cfg.Host.FrameTime,
	}

	p := g.cursor()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.dragging = physics.Contains(g.stats.Centroid, g.cfg.Body.Radius, p)
		}
	} else {
		g.dragging = false
	}

	var dirs physics.Direction
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dirs |= physics.DirLeft
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dirs |= physics.DirRight
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dirs |= physics.DirUp
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dirs |= physics.DirDown
	}

	switch {
	case g.dragging:
		params.Drag, params.Target = true, p
	case dirs != 0:
		params.Drag, params.Target = true, physics.NudgeTarget(g.stats.Centroid, g.cfg.Body.Radius, dirs)
	}

	stats, err := g.kernel.StepFrame(g.ring, params, g.cfg.Host.Substeps)
	if err != nil {
		return err
	}
	g.stats = stats
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)

	ox, oy := float32(g.width)/2, float32(g.height)/2

	var path vector.Path
	for i, v := range g.ring {
		if i == 0 {
			path.MoveTo(ox+float32(v.X), oy+float32(v.Y))
			continue
		}
		path.LineTo(ox+float32(v.X), oy+float32(v.Y))
	}
	path.Close()

	g.vs, g.is = path.AppendVerticesAndIndicesForFilling(g.vs[:0], g.is[:0])
	screen.DrawTriangles(g.vs, g.is, g.fill, &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	})

	for i, v := range g.ring {
		n := g.ring[g.ring.Next(i)]
		vector.StrokeLine(screen, ox+float32(v.X), oy+float32(v.Y), ox+float32(n.X), oy+float32(n.Y), 2, edgeColor, true)
	}

	agg := physics.ComputeAggregates(g.ring, g.cfg.Body.Radius)
	face := physics.FaceAnchors(g.ring, agg.Centroid, g.cfg.Body.Radius)
	for _, c := range []physics.Circle{face.LeftEye, face.RightEye, face.Mouth} {
		vector.DrawFilledCircle(screen, ox+float32(c.Center.X), oy+float32(c.Center.Y), float32(c.Radius), faceColor, true)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("preset %s  area %.1f%%  impacts %d  TPS %.0f\ndrag body or arrows, g gravity, r reset, space pause",
		g.cfg.Preset, 100*agg.Area/agg.RestArea, g.stats.Impacts, ebiten.ActualTPS()))
}

func (g *Game) Layout(outW, outH int) (int, int) {
	g.width, g.height = outW, outH
	return outW, outH
}

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

	game, err := newGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(game.width, game.height)
	ebiten.SetWindowTitle("Soft Body")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Host.FPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}
