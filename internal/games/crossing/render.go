package crossing

import (
	"fmt"
	"math"

	"github.com/vovakirdan/star-crossing/internal/core"
)

const (
	hudHeight    = 2 // score line plus separator
	footerHeight = 1
	minCellW     = 5 // wide enough for a bug glyph with a margin
	maxCellW     = 12
	maxCellH     = 4
)

// Terminal glyphs for each sprite.
var glyphs = map[SpriteID]struct {
	text  string
	color core.Color
}{
	SpriteBug:        {"}o>", core.ColorRed},
	SpriteBugReverse: {"<o{", core.ColorBrightRed},
	SpritePlayer:     {"☺", core.ColorBrightCyan},
	SpriteStar:       {"★", core.ColorBrightYellow},
}

// boardLayout maps grid cells onto terminal cells.
type boardLayout struct {
	x, y   int // top-left corner of the board
	cellW  int
	cellH  int
	width  int
	height int
}

func (g *Game) layout(dst *core.Screen) (boardLayout, bool) {
	grid := g.world.Grid()
	availH := dst.Height() - hudHeight - footerHeight
	cellW := core.Min(dst.Width()/grid.Columns, maxCellW)
	cellH := core.Min(availH/grid.Rows, maxCellH)
	if cellW < minCellW || cellH < 1 {
		return boardLayout{}, false
	}

	l := boardLayout{
		cellW:  cellW,
		cellH:  cellH,
		width:  cellW * grid.Columns,
		height: cellH * grid.Rows,
	}
	l.x = (dst.Width() - l.width) / 2
	l.y = hudHeight + (availH-l.height)/2
	return l, true
}

// minScreenSize is the smallest terminal the board fits in.
func (g *Game) minScreenSize() (int, int) {
	grid := g.world.Grid()
	return grid.Columns * minCellW, grid.Rows + hudHeight + footerHeight
}

// Render draws the board, sprites and HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	l, ok := g.layout(dst)
	if !ok {
		w, h := g.minScreenSize()
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	g.renderHUD(dst)
	g.renderLanes(dst, l)
	g.renderSprites(dst, l)
	dst.DrawTextCentered(dst.Height()-1, "arrows/wasd move  p pause  r restart  q quit")

	if g.paused {
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", g.world.Score()), core.ColorWhite)
	dst.DrawTextRight(0, fmt.Sprintf("Highscore: %d ", g.world.HighScore()), core.ColorYellow)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// renderLanes paints the top row as water, traffic rows as stone and the
// remaining rows as grass.
func (g *Game) renderLanes(dst *core.Screen, l boardLayout) {
	traffic := g.world.Config().Enemies.TrafficRows
	for row := 1; row <= g.world.Grid().Rows; row++ {
		fill, color := '·', core.ColorGreen
		switch {
		case row == 1:
			fill, color = '≈', core.ColorBlue
		case traffic.Contains(row):
			fill, color = '░', core.ColorGray
		}
		dst.DrawRect(core.NewRect(l.x, l.y+(row-1)*l.cellH, l.width, l.cellH), fill, color)
	}
}

// renderSprites draws each sprite from its pixel position, scaled into the
// board. Glyphs are clipped at the board edges.
func (g *Game) renderSprites(dst *core.Screen, l boardLayout) {
	grid := g.world.Grid()
	for _, s := range g.world.Sprites() {
		glyph, ok := glyphs[s.ID]
		if !ok {
			continue
		}
		row := grid.YToRow(s.Y)
		if row < 1 || row > grid.Rows {
			continue
		}

		runes := []rune(glyph.text)
		x := l.x + int(math.Round(s.X/grid.TileWidth*float64(l.cellW))) + (l.cellW-len(runes))/2
		y := l.y + (row-1)*l.cellH + l.cellH/2
		for i, r := range runes {
			cx := x + i
			if cx < l.x || cx >= l.x+l.width {
				continue
			}
			dst.SetCell(cx, y, r, glyph.color)
		}
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
