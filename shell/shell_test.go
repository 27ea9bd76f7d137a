package shell

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/pingpong/audio"
	"github.com/lguibr/pingpong/bollywood"
	"github.com/lguibr/pingpong/game"
	"github.com/lguibr/pingpong/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShell_MoveKeyHoldsForHoldTicks(t *testing.T) {
	cfg, match := newMatch(t, 5)
	cfg.HoldTicks = 3
	s := New(cfg, newScreen(t), match, nil, nil, nil)
	startY := match.Snapshot().Player.Y

	assert.False(t, s.HandleEvent(key('w')))
	for i := 0; i < 3; i++ {
		s.Step()
	}
	assert.Equal(t, startY-3*cfg.PlayerStep, match.Snapshot().Player.Y)

	s.Step()
	assert.Equal(t, startY-3*cfg.PlayerStep, match.Snapshot().Player.Y, "latch expired")

	s.HandleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	s.Step()
	assert.Equal(t, startY-2*cfg.PlayerStep, match.Snapshot().Player.Y)
}

func TestShell_QuitAndExit(t *testing.T) {
	testCases := []struct {
		name     string
		gameOver bool
		ev       *tcell.EventKey
		quit     bool
	}{
		{"q while playing", false, key('q'), true},
		{"ctrl+c while playing", false, tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true},
		{"esc while playing", false, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), false},
		{"esc on menu", true, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{"q on menu", true, key('q'), true},
		{"unmapped key", false, key('x'), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, match := newMatch(t, 1)
			s := New(cfg, newScreen(t), match, nil, nil, nil)
			if tc.gameOver {
				for i := 0; i < ticksToFirstPoint; i++ {
					s.Step()
				}
				require.Equal(t, game.StateGameOver, match.State())
			}
			assert.Equal(t, tc.quit, s.HandleEvent(tc.ev))
		})
	}
}

func TestShell_RestartOnlyFromGameOver(t *testing.T) {
	cfg, match := newMatch(t, 1)
	s := New(cfg, newScreen(t), match, nil, nil, nil)
	firstMatch := match.MatchID()

	s.HandleEvent(key('5'))
	assert.Equal(t, 1, match.WinningScore(), "menu keys do nothing mid-match")
	assert.Equal(t, firstMatch, match.MatchID())

	for i := 0; i < ticksToFirstPoint; i++ {
		s.Step()
	}
	require.Equal(t, game.StateGameOver, match.State())
	assert.Equal(t, utils.AIWinsLabel, match.Winner())

	s.HandleEvent(key('7'))
	assert.Equal(t, game.StatePlaying, match.State())
	assert.Equal(t, 7, match.WinningScore())
	player, ai := match.Scores()
	assert.Zero(t, player)
	assert.Zero(t, ai)
	assert.NotEqual(t, firstMatch, match.MatchID())
}

func TestShell_DrawsMenuAndPlaysEvents(t *testing.T) {
	cfg, match := newMatch(t, 1)
	screen := newScreen(t)

	actors := bollywood.NewEngine(nil)
	defer actors.Shutdown(time.Second)
	beeper := &recordingBeeper{}
	pid := actors.Spawn(bollywood.NewProps(audio.NewActorProducer(beeper, nil)))

	s := New(cfg, screen, match, actors, pid, nil)
	for i := 0; i < ticksToFirstPoint; i++ {
		s.Step()
	}

	assert.Eventually(t, func() bool {
		played := beeper.Played()
		return len(played) > 0 && played[len(played)-1] == game.EventScore
	}, time.Second, 10*time.Millisecond)

	// "AI Wins!" centered on row 24/2-2.
	for i, r := range utils.AIWinsLabel {
		mainc, _, _, _ := screen.GetContent(36+i, 10)
		assert.Equal(t, r, mainc)
	}
}

func TestShell_ResizeRedraws(t *testing.T) {
	cfg, match := newMatch(t, 5)
	screen := newScreen(t)
	s := New(cfg, screen, match, nil, nil, nil)

	screen.SetSize(40, 12)
	assert.False(t, s.HandleEvent(tcell.NewEventResize(40, 12)))

	// The player paddle lands on column 0 at half the width.
	mainc, _, _, _ := screen.GetContent(0, 6)
	assert.Equal(t, '█', mainc)
}

func TestShell_RunStopsWithContext(t *testing.T) {
	cfg, match := newMatch(t, 5)
	s := New(cfg, newScreen(t), match, nil, nil, nil)
	startX := match.Snapshot().Ball.X

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after the context expired")
	}
	assert.Less(t, match.Snapshot().Ball.X, startX, "ticks ran while the shell was up")
}
