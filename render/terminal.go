package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/pingpong/game"
)

// Terminal draws frames onto a tcell screen.
type Terminal struct {
	surface Surface
	palette Palette
}

func NewTerminal(surface Surface) *Terminal {
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	return &Terminal{
		surface: surface,
		palette: Palette{
			Paddle:     '█',
			Ball:       '●',
			CenterLine: '│',
			Style:      white,
			Score:      white.Bold(true),
			Banner:     white.Bold(true),
		},
	}
}

// Draw replaces the surface contents with snap. The caller shows the screen.
func (t *Terminal) Draw(snap game.Snapshot) {
	drawScene(t.surface, t.palette, snap)
}
