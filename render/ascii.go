package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/pingpong/game"
)

var asciiPalette = Palette{
	Paddle:     '#',
	Ball:       'o',
	CenterLine: '|',
}

// grid is an in-memory Surface of plain runes.
type grid struct {
	cells [][]rune
}

func newGrid(cols, rows int) *grid {
	g := &grid{cells: make([][]rune, rows)}
	for y := range g.cells {
		g.cells[y] = make([]rune, cols)
	}
	g.Clear()
	return g
}

func (g *grid) SetContent(x, y int, primary rune, _ []rune, _ tcell.Style) {
	if y < 0 || y >= len(g.cells) || x < 0 || x >= len(g.cells[y]) {
		return
	}
	g.cells[y][x] = primary
}

func (g *grid) Size() (int, int) {
	if len(g.cells) == 0 {
		return 0, 0
	}
	return len(g.cells[0]), len(g.cells)
}

func (g *grid) Clear() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = ' '
		}
	}
}

func (g *grid) String() string {
	var ascii strings.Builder
	for _, row := range g.cells {
		ascii.WriteString(strings.TrimRight(string(row), " "))
		ascii.WriteString("\n")
	}
	return ascii.String()
}

// RenderToASCII draws snap as cols x rows plain characters, one line per row.
func RenderToASCII(snap game.Snapshot, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	g := newGrid(cols, rows)
	drawScene(g, asciiPalette, snap)
	return g.String()
}
