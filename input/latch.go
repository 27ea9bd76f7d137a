package input

// Latch turns discrete key presses into a held direction.
// Terminals report presses and auto-repeats but no releases, so a press
// holds for a number of ticks and each repeat renews it.
type Latch struct {
	hold      int
	kind      Kind
	remaining int
}

func NewLatch(holdTicks int) *Latch {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &Latch{hold: holdTicks}
}

// Press records a move. Other kinds are ignored.
func (l *Latch) Press(kind Kind) {
	if kind != MoveUp && kind != MoveDown {
		return
	}
	l.kind = kind
	l.remaining = l.hold
}

// Tick returns the held move for this tick, or None once it expired.
func (l *Latch) Tick() Kind {
	if l.remaining == 0 {
		return None
	}
	l.remaining--
	return l.kind
}

func (l *Latch) Release() {
	l.kind = None
	l.remaining = 0
}
