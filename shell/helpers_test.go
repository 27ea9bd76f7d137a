package shell

import (
	"sync"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/pingpong/game"
	"github.com/lguibr/pingpong/utils"
	"github.com/stretchr/testify/require"
)

// zeroRandom always serves left and upwards with the default speeds.
type zeroRandom struct{}

func (zeroRandom) Intn(int) int { return 0 }

// ticksToFirstPoint is how long a left serve from the center takes to pass a
// paddle that never moves: 400 units at 5 per tick.
const ticksToFirstPoint = 80

func newMatch(t *testing.T, winningScore int) (utils.Config, *game.MatchEngine) {
	t.Helper()
	cfg := utils.DefaultConfig()
	cfg.WinningScore = winningScore
	match, err := game.NewMatchEngine(cfg, zeroRandom{}, nil)
	require.NoError(t, err)
	return cfg, match
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

type recordingBeeper struct {
	mu     sync.Mutex
	events []game.Event
}

func (r *recordingBeeper) Play(ev game.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recordingBeeper) Played() []game.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]game.Event(nil), r.events...)
}
