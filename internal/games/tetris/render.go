package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

const (
	cellW    = 2 // screen columns per board cell
	panelGap = 2
	panelW   = 14
)

var shapeColors = map[engine.Shape]core.Color{
	engine.ShapeI: core.ColorCyan,
	engine.ShapeO: core.ColorYellow,
	engine.ShapeT: core.ColorMagenta,
	engine.ShapeS: core.ColorGreen,
	engine.ShapeZ: core.ColorRed,
	engine.ShapeJ: core.ColorBlue,
	engine.ShapeL: core.ColorOrange,
}

// ShapeColor returns the display colour of a shape.
func ShapeColor(s engine.Shape) core.Color {
	return shapeColors[s]
}

// layout places the well and the side panel centred on a w x h screen.
func (g *Game) layout(w, h int) (well, panel core.Rect, ok bool) {
	wellW := g.rules.Width*cellW + 2
	wellH := g.rules.Height + 2
	area := core.NewRect(0, 0, w, h).CenterIn(wellW+panelGap+panelW, wellH)
	if w < area.W || h < area.H {
		return core.Rect{}, core.Rect{}, false
	}
	well = core.NewRect(area.X, area.Y, wellW, wellH)
	panel = core.NewRect(well.Right()+panelGap, area.Y, panelW, wellH)
	return well, panel, true
}

// Render draws the well, the side panel and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	well, panel, ok := g.layout(dst.Width(), dst.Height())
	if !ok {
		g.renderTooSmall(dst)
		return
	}

	snap := g.session.Snapshot()
	dst.DrawBox(well, core.ColorGray)
	inner := well.Inset(1)

	for r, row := range snap.Grid {
		for c, shape := range row {
			if shape != engine.ShapeNone {
				drawBlock(dst, inner, r, c, '█', ShapeColor(shape))
			}
		}
	}
	for _, p := range snap.GhostCells {
		drawBlock(dst, inner, p.Row, p.Col, '░', core.ColorGray)
	}
	for _, p := range snap.CurrentCells {
		drawBlock(dst, inner, p.Row, p.Col, '█', ShapeColor(snap.Current.Shape))
	}

	g.renderPanel(dst, panel, snap)

	switch {
	case snap.Status == engine.StatusGameOver:
		renderOverlay(dst, inner, "GAME OVER", fmt.Sprintf("Score %d", snap.Score), "R to restart")
	case g.paused:
		renderOverlay(dst, inner, "PAUSED", "P to resume", "R to restart")
	}
}

func drawBlock(dst *core.Screen, inner core.Rect, row, col int, r rune, c core.Color) {
	x := inner.X + col*cellW
	y := inner.Y + row
	if !inner.Contains(x, y) {
		return
	}
	for i := range cellW {
		dst.SetColored(x+i, y, r, c)
	}
}

func (g *Game) renderPanel(dst *core.Screen, panel core.Rect, snap engine.Snapshot) {
	y := panel.Y
	dst.DrawTextColored(panel.X, y, "NEXT", core.ColorBrightWhite)

	preview := core.NewRect(panel.X, y+1, 4*cellW+2, 4)
	dst.DrawBox(preview, core.ColorGray)
	for _, p := range engine.Offsets(snap.Next, 0) {
		// I sits on its second box row; lift it so it is centred in two rows.
		row := p.Row
		if snap.Next == engine.ShapeI {
			row--
		}
		drawBlock(dst, preview.Inset(1), row, p.Col, '█', ShapeColor(snap.Next))
	}

	y = preview.Bottom() + 1
	stats := []struct {
		label string
		value int
	}{
		{"SCORE", snap.Score},
		{"LEVEL", snap.Level},
		{"LINES", snap.Lines},
	}
	for _, s := range stats {
		dst.DrawTextColored(panel.X, y, s.label, core.ColorBrightWhite)
		dst.DrawText(panel.X, y+1, fmt.Sprintf("%d", s.value))
		y += 3
	}

	if snap.LastCleared > 0 && snap.Status == engine.StatusRunning {
		dst.DrawTextColored(panel.X, y, clearLabel(snap.LastCleared), ShapeColor(engine.ShapeI))
	}
}

func clearLabel(rows int) string {
	switch rows {
	case 1:
		return "SINGLE"
	case 2:
		return "DOUBLE"
	case 3:
		return "TRIPLE"
	default:
		return "TETRIS!"
	}
}

func renderOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	box := area.CenterIn(min(area.W, w+4), len(lines)+2)
	dst.FillRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, core.ColorBrightWhite)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l)))/2
		dst.DrawTextColored(x, box.Y+1+i, l, core.ColorBrightWhite)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	wellW := g.rules.Width*cellW + 2
	need := fmt.Sprintf("Need %dx%d", wellW+panelGap+panelW, g.rules.Height+2)
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "Window too small")
	dst.DrawTextCentered(mid, need)
}
