// File: input/intent.go
package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/pingpong/game"
	"github.com/lguibr/pingpong/utils"
)

// Kind is what the player asked for with one key press.
type Kind int

const (
	None Kind = iota
	MoveUp
	MoveDown
	Restart
	Exit
	Quit // leaves at any time, Exit only from the game over menu
)

func (k Kind) String() string {
	switch k {
	case MoveUp:
		return "moveUp"
	case MoveDown:
		return "moveDown"
	case Restart:
		return "restart"
	case Exit:
		return "exit"
	case Quit:
		return "quit"
	}
	return "none"
}

// Intent is a decoded key press.
type Intent struct {
	Kind         Kind
	WinningScore int // Set for Restart
}

// FromKey maps W/S or the arrow keys to paddle moves, the utils.MatchLengths digits to a restart,
// Esc to exit and Ctrl+C or q to quit.
func FromKey(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyUp:
		return Intent{Kind: MoveUp}
	case tcell.KeyDown:
		return Intent{Kind: MoveDown}
	case tcell.KeyEscape:
		return Intent{Kind: Exit}
	case tcell.KeyCtrlC:
		return Intent{Kind: Quit}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return Intent{Kind: MoveUp}
		case 's', 'S':
			return Intent{Kind: MoveDown}
		case 'q', 'Q':
			return Intent{Kind: Quit}
		}
		if r := ev.Rune(); r >= '1' && r <= '9' && utils.IsValidMatchLength(int(r-'0')) {
			return Intent{Kind: Restart, WinningScore: int(r - '0')}
		}
	}
	return Intent{Kind: None}
}

// Direction converts a move intent into a paddle direction.
func (k Kind) Direction() game.Direction {
	switch k {
	case MoveUp:
		return game.DirectionUp
	case MoveDown:
		return game.DirectionDown
	}
	return game.DirectionNone
}
