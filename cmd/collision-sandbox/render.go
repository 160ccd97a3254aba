package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/elle-trudgett/luna/collision"
	"github.com/elle-trudgett/luna/vmath"
	"github.com/elle-trudgett/luna/world"
)

// Terminal cells are roughly twice as tall as wide
const (
	cellsPerUnitX = 2.0
	cellsPerUnitY = 1.0
)

var (
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkBlue)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleSwept  = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	styleRay    = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
)

func regionStyle(k world.RegionKind) (rune, tcell.Style) {
	switch k {
	case world.RegionGround:
		return '█', tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case world.RegionDeathZone:
		return '▒', tcell.StyleDefault.Foreground(tcell.ColorRed)
	case world.RegionPlatform:
		return '▀', tcell.StyleDefault.Foreground(tcell.ColorOlive)
	case world.RegionWall:
		return '█', tcell.StyleDefault.Foreground(tcell.ColorGray)
	case world.RegionCeiling:
		return '▄', tcell.StyleDefault.Foreground(tcell.ColorSilver)
	default:
		return '?', tcell.StyleDefault
	}
}

// viewport maps world coordinates (Y up) to screen cells (row down), centred on the player
type viewport struct {
	center        vmath.Vec2
	width, height int
}

func (v viewport) toWorld(col, row int) vmath.Vec2 {
	return vmath.Vec2{
		X: v.center.X + (float64(col)+0.5-float64(v.width)/2)/cellsPerUnitX,
		Y: v.center.Y - (float64(row)+0.5-float64(v.height)/2)/cellsPerUnitY,
	}
}

func (v viewport) toScreen(p vmath.Vec2) (int, int) {
	col := (p.X-v.center.X)*cellsPerUnitX + float64(v.width)/2
	row := (v.center.Y-p.Y)*cellsPerUnitY + float64(v.height)/2
	return int(col), int(row)
}

// fill draws ch on every cell whose centre lies in s
func (sb *sandbox) fill(v viewport, s collision.Shape, ch rune, style tcell.Style) {
	// Half a cell, so segments and thin slabs still rasterize
	eps := 0.5 / cellsPerUnitY
	if s.Kind == collision.ShapePolygon {
		eps = 0
	}
	b := s.Bounds()
	c0, r0 := v.toScreen(vmath.Vec2{X: b.Min.X, Y: b.Max.Y})
	c1, r1 := v.toScreen(vmath.Vec2{X: b.Max.X, Y: b.Min.Y})
	for row := max(r0-1, 0); row <= min(r1+1, v.height-2); row++ {
		for col := max(c0-1, 0); col <= min(c1+1, v.width-1); col++ {
			if s.ContainsPoint(v.toWorld(col, row), eps) {
				sb.screen.SetContent(col, row, ch, nil, style)
			}
		}
	}
}

func (sb *sandbox) draw() {
	sb.screen.Clear()
	if sb.width <= 0 || sb.height <= 1 {
		sb.screen.Show()
		return
	}

	hitbox := collision.PolygonShape(sb.body.Hitbox())
	v := viewport{
		center: hitbox.Center(),
		width:  sb.width,
		height: sb.height,
	}

	for _, o := range sb.obstacles.All() {
		ch, style := regionStyle(o.Kind)
		sb.fill(v, o.Shape, ch, style)
	}

	if sb.mover.Trace {
		sb.drawTraces(v)
	}
	sb.fill(v, hitbox, '@', stylePlayer)
	sb.drawStatus()
	sb.screen.Show()
}

func (sb *sandbox) drawTraces(v viewport) {
	for _, r := range [][]collision.Trace{sb.last.Horizontal.Traces, sb.last.Vertical.Traces} {
		for _, t := range r {
			if len(t.Swept) >= 3 {
				sb.fill(v, collision.PolygonShape(t.Swept), '·', styleSwept)
			}
			for _, ray := range t.Rays {
				if !ray.Hit {
					continue
				}
				col, row := v.toScreen(ray.Origin)
				if col >= 0 && col < v.width && row >= 0 && row < v.height-1 {
					sb.screen.SetContent(col, row, '*', nil, styleRay)
				}
			}
		}
	}
}

func (sb *sandbox) drawStatus() {
	b := sb.body
	traceCase := "-"
	if ts := sb.last.Vertical.Traces; len(ts) > 0 {
		traceCase = ts[len(ts)-1].Case.String()
	}
	status := fmt.Sprintf(" %s  pos(%.2f, %.2f) vel(%.2f, %.2f) ground=%t deaths=%d trace=%t case=%s  [arrows] move [space] jump [t] trace [r] reload [q] quit",
		sb.scene.Name, b.Position.X, b.Position.Y, b.Velocity.X, b.Velocity.Y,
		b.OnGround, sb.deaths, sb.mover.Trace, traceCase)

	row := sb.height - 1
	col := 0
	for _, r := range status {
		if col >= sb.width {
			break
		}
		sb.screen.SetContent(col, row, r, nil, styleStatus)
		col++
	}
	for ; col < sb.width; col++ {
		sb.screen.SetContent(col, row, ' ', nil, styleStatus)
	}
}
