// File: shell/shell.go
package shell

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/pingpong/bollywood"
	"github.com/lguibr/pingpong/game"
	"github.com/lguibr/pingpong/input"
	"github.com/lguibr/pingpong/render"
	"github.com/lguibr/pingpong/utils"
)

// Shell runs a match on a terminal: it owns the tick loop, turns key presses
// into engine calls and forwards match events to the audio actor.
type Shell struct {
	cfg      utils.Config
	screen   tcell.Screen
	match    *game.MatchEngine
	renderer *render.Terminal
	latch    *input.Latch

	actors *bollywood.Engine
	audio  *bollywood.PID // nil when muted

	logger *log.Logger
}

func New(cfg utils.Config, screen tcell.Screen, match *game.MatchEngine, actors *bollywood.Engine, audio *bollywood.PID, logger *log.Logger) *Shell {
	if logger == nil {
		logger = utils.Discard()
	}
	return &Shell{
		cfg:      cfg,
		screen:   screen,
		match:    match,
		renderer: render.NewTerminal(screen),
		latch:    input.NewLatch(cfg.HoldTicks),
		actors:   actors,
		audio:    audio,
		logger:   logger,
	}
}

// Run ticks the match at cfg.TickRate until the player quits or ctx is done.
// The caller owns the screen and finalizes it afterwards.
func (s *Shell) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go s.poll(events, done)

	ticker := time.NewTicker(s.cfg.TickPeriod())
	defer ticker.Stop()

	s.logger.Info("Shell started", "match", s.match.MatchID(), "tickRate", s.cfg.TickRate)
	s.draw()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Shell stopped", "reason", ctx.Err())
			return nil
		case ev := <-events:
			if s.HandleEvent(ev) {
				s.logger.Info("Shell stopped", "reason", "quit")
				return nil
			}
		case <-ticker.C:
			s.Step()
		}
	}
}

// poll forwards screen events until the screen is finalized or done closes.
func (s *Shell) poll(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent applies one terminal event and reports whether the shell should exit.
func (s *Shell) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		intent := input.FromKey(ev)
		switch intent.Kind {
		case input.MoveUp, input.MoveDown:
			s.latch.Press(intent.Kind)
		case input.Restart:
			if s.match.State() != game.StateGameOver {
				return false
			}
			if err := s.match.Restart(intent.WinningScore); err != nil {
				s.logger.Warn("Restart rejected", "winningScore", intent.WinningScore, "error", err)
				return false
			}
			s.latch.Release()
			s.draw()
		case input.Exit:
			return s.match.State() == game.StateGameOver
		case input.Quit:
			return true
		}
	case *tcell.EventResize:
		s.screen.Sync()
		s.draw()
	}
	return false
}

// Step runs one tick: held input, physics, audio, then a redraw.
func (s *Shell) Step() {
	advance(s.match, s.latch.Tick().Direction(), s.actors, s.audio)
	s.draw()
}

func (s *Shell) draw() {
	s.renderer.Draw(s.match.Snapshot())
	s.screen.Show()
}

// advance moves the player, runs one engine tick and hands its events to the audio actor.
func advance(match *game.MatchEngine, dir game.Direction, actors *bollywood.Engine, audio *bollywood.PID) []game.Event {
	if dir != game.DirectionNone {
		match.MovePlayer(dir)
	}
	events := match.Update()
	if len(events) > 0 && actors != nil && audio != nil {
		actors.Send(audio, events, nil)
	}
	return events
}
