package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/softbody/core"
	"github.com/lixenwraith/softbody/physics"
)

var (
	bodyStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xff, 0xdd, 0x44)).Background(tcell.NewRGBColor(12, 12, 20))
	faceStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x33, 0x33, 0x33)).Background(tcell.NewRGBColor(0xff, 0xdd, 0x44))
	hudStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(180, 180, 180)).Background(tcell.NewRGBColor(12, 12, 20))
	bgStyle   = tcell.StyleDefault.Background(tcell.NewRGBColor(12, 12, 20))
)

func (sb *Sandbox) draw() {
	sb.screen.Clear()
	sb.screen.Fill(' ', bgStyle)

	agg := physics.ComputeAggregates(sb.ring, sb.cfg.Body.Radius)
	face := physics.FaceAnchors(sb.ring, agg.Centroid, sb.cfg.Body.Radius)
	minX, minY, maxX, maxY := sb.cellBounds()

	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			p := sb.toWorld(cx, cy)
			if !insidePolygon(sb.ring, p) {
				continue
			}
			if inCircle(face.LeftEye, p) || inCircle(face.RightEye, p) || inCircle(face.Mouth, p) {
				sb.screen.SetContent(cx, cy, '█', nil, faceStyle)
				continue
			}
			sb.screen.SetContent(cx, cy, '█', nil, bodyStyle)
		}
	}

	sb.drawHUD(agg)
	sb.screen.Show()
}

// cellBounds returns the clipped cell rectangle covering the ring
func (sb *Sandbox) cellBounds() (minX, minY, maxX, maxY int) {
	minX, minY = sb.width, sb.height
	for _, v := range sb.ring {
		cx := int(v.X/cellWorld + float64(sb.width)/2)
		cy := int(v.Y/(cellWorld*aspectRatio) + float64(sb.height)/2)
		minX, maxX = min(minX, cx), max(maxX, cx)
		minY, maxY = min(minY, cy), max(maxY, cy)
	}
	return max(minX, 0), max(minY, 0), min(maxX, sb.width-1), min(maxY, sb.height-1)
}

func (sb *Sandbox) drawHUD(agg physics.Aggregates) {
	state := "run"
	if sb.paused {
		state = "pause"
	}
	g := gravityCycle[sb.gravityIdx]
	line := fmt.Sprintf(" %s | preset %-9s | area %5.1f%% | gravity (%+.0f,%+.0f) | impacts %3d | arrows/mouse drag  g gravity  p preset  r reset  q quit",
		state, sb.cfg.Preset, 100*agg.Area/agg.RestArea, g.X, g.Y, sb.stats.Impacts)
	for i, r := range line {
		if i >= sb.width {
			break
		}
		sb.screen.SetContent(i, 0, r, nil, hudStyle)
	}
}

// insidePolygon is an even-odd crossing test against the ring edges
func insidePolygon(ring core.Ring, p r2.Vec) bool {
	inside := false
	for i := range ring {
		a, b := ring[i], ring[ring.Next(i)]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

func inCircle(c physics.Circle, p r2.Vec) bool {
	d := r2.Sub(p, c.Center)
	return d.X*d.X+d.Y*d.Y < c.Radius*c.Radius
}
