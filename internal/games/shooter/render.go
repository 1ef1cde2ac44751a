package shooter

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tilt-shooter/internal/core"
)

// Visual characters for rendering
const (
	ShipChar   = '█'
	ShipNose   = '▲'
	BulletChar = '│'
)

// kindGlyphs maps each enemy kind to its glyph and color.
var kindGlyphs = [kindCount]struct {
	r rune
	c core.Color
}{
	KindA: {'▼', core.ColorGreen},
	KindB: {'●', core.ColorOrange},
	KindC: {'◆', core.ColorMagenta},
}

// hudRows is the number of rows above the playfield.
const hudRows = 1

// viewport maps world coordinates onto screen cells.
type viewport struct {
	cols, rows int
	sx, sy     float64
}

func newViewport(dst *core.Screen, p Params) viewport {
	cols := dst.Width()
	rows := max(dst.Height()-hudRows, 0)
	return viewport{
		cols: cols,
		rows: rows,
		sx:   float64(cols) / p.WorldW,
		sy:   float64(rows) / p.WorldH,
	}
}

// cell returns the screen cell covering world point (x, y).
func (v viewport) cell(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx)), hudRows + int(math.Floor(y*v.sy))
}

// box returns the cells covered by a world-space box, at least one each way.
func (v viewport) box(x, y, w, h float64) (cx, cy, cw, ch int) {
	cx, cy = v.cell(x, y)
	right := int(math.Ceil((x + w) * v.sx))
	bottom := hudRows + int(math.Ceil((y+h)*v.sy))
	return cx, cy, max(right-cx, 1), max(bottom-cy, 1)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	vp := newViewport(dst, g.params)

	for _, e := range g.state.Enemies {
		x, y, w, h := vp.box(e.X, e.Y, e.Width, e.Height)
		glyph := kindGlyphs[0]
		if e.Kind >= 0 && int(e.Kind) < len(kindGlyphs) {
			glyph = kindGlyphs[e.Kind]
		}
		drawClipped(dst, x, y, w, h, glyph.r, glyph.c)
	}

	for _, b := range g.state.Bullets {
		x, y, _, h := vp.box(b.X, b.Y, b.Width, b.Height)
		drawClipped(dst, x, y, 1, h, BulletChar, core.ColorYellow)
	}

	ship := g.state.Ship
	x, y, w, h := vp.box(ship.X, ship.Y, ship.Width, ship.Height)
	drawClipped(dst, x, y, w, h, ShipChar, core.ColorBrightWhite)
	nx, _ := vp.cell(ship.CenterX(), ship.Y)
	dst.SetColored(nx, max(y, hudRows), ShipNose, core.ColorCyan)

	// Draw HUD
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.state.Score), core.ColorBrightWhite)
	tick := fmt.Sprintf("Tick %d", g.state.Tick)
	dst.DrawTextColored(dst.Width()-len(tick)-1, 0, tick, core.ColorGray)

	if g.state.GameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to play again", g.state.Score))
	}
}

// drawClipped fills a cell box but never paints over the HUD rows.
func drawClipped(dst *core.Screen, x, y, w, h int, r rune, c core.Color) {
	if y < hudRows {
		h -= hudRows - y
		y = hudRows
	}
	if h <= 0 {
		return
	}
	dst.DrawRect(x, y, w, h, r, c)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorRed)
	dst.DrawTextCentered(boxY+3, subtitle)
}
