package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/pingpong/game"
	"github.com/lguibr/pingpong/utils"
)

// Surface is a grid of character cells. tcell.Screen satisfies it.
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Clear()
}

// Palette picks the glyphs and styles a scene is drawn with.
type Palette struct {
	Paddle     rune
	Ball       rune
	CenterLine rune

	Style  tcell.Style
	Score  tcell.Style
	Banner tcell.Style
}

var menuOptions = gameOverMenu()

func gameOverMenu() []string {
	options := make([]string, 0, len(utils.MatchLengths)+1)
	for _, n := range utils.MatchLengths {
		options = append(options, fmt.Sprintf("Best of %d (Press %d)", n, n))
	}
	return append(options, "Exit (Press ESC)")
}

// drawScene scales the world in snap onto surface and draws one frame.
func drawScene(surface Surface, palette Palette, snap game.Snapshot) {
	surface.Clear()
	cols, rows := surface.Size()
	if cols <= 0 || rows <= 0 || snap.Width <= 0 || snap.Height <= 0 {
		return
	}
	v := viewport{cols: cols, rows: rows, sx: float64(cols) / snap.Width, sy: float64(rows) / snap.Height}

	if snap.State == game.StateGameOver {
		drawCentered(surface, v, rows/2-2, snap.Winner, palette.Banner)
		for i, option := range menuOptions {
			drawCentered(surface, v, rows/2+1+i, option, palette.Style)
		}
		return
	}

	for y := 0; y < rows; y += 2 {
		surface.SetContent(cols/2, y, palette.CenterLine, nil, palette.Style)
	}
	drawText(surface, v, cols/4, 1, fmt.Sprint(snap.PlayerScore), palette.Score)
	drawText(surface, v, cols*3/4, 1, fmt.Sprint(snap.AIScore), palette.Score)
	drawCentered(surface, v, rows-1, fmt.Sprintf("First to %d", snap.WinningScore), palette.Style)

	fillRect(surface, v, snap.Player, palette.Paddle, palette.Style)
	fillRect(surface, v, snap.AI, palette.Paddle, palette.Style)
	fillRect(surface, v, snap.Ball, palette.Ball, palette.Style)
}

type viewport struct {
	cols, rows int
	sx, sy     float64
}

// span maps [lo, hi) in world units to an inclusive cell range, at least one cell wide.
func span(lo, hi, scale float64, limit int) (first, last int) {
	first = int(math.Floor(lo * scale))
	last = int(math.Ceil(hi*scale)) - 1
	if last < first {
		last = first
	}
	if first < 0 {
		first = 0
	}
	if last > limit-1 {
		last = limit - 1
	}
	return first, last
}

func fillRect(surface Surface, v viewport, r game.Rect, glyph rune, style tcell.Style) {
	x0, x1 := span(r.X, r.Right(), v.sx, v.cols)
	y0, y1 := span(r.Y, r.Bottom(), v.sy, v.rows)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			surface.SetContent(x, y, glyph, nil, style)
		}
	}
}

func drawText(surface Surface, v viewport, x, y int, text string, style tcell.Style) {
	if y < 0 || y >= v.rows {
		return
	}
	for i, r := range []rune(text) {
		if x+i < 0 || x+i >= v.cols {
			continue
		}
		surface.SetContent(x+i, y, r, nil, style)
	}
}

func drawCentered(surface Surface, v viewport, y int, text string, style tcell.Style) {
	drawText(surface, v, (v.cols-len([]rune(text)))/2, y, text, style)
}
