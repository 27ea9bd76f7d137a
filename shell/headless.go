package shell

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lguibr/asciiring/helpers"
	"github.com/lguibr/pingpong/bollywood"
	"github.com/lguibr/pingpong/game"
	"github.com/lguibr/pingpong/render"
	"github.com/lguibr/pingpong/utils"
)

const (
	HeadlessCols = 80
	HeadlessRows = 24
)

// Headless plays a match without a terminal UI, printing every frame as ASCII.
// A nil pilot leaves the player paddle where it spawned.
type Headless struct {
	match *game.MatchEngine
	pilot *Autopilot

	actors *bollywood.Engine
	audio  *bollywood.PID

	out        io.Writer
	clear      func()
	cols, rows int
	frames     int
	period     time.Duration

	logger *log.Logger
}

func NewHeadless(cfg utils.Config, match *game.MatchEngine, pilot *Autopilot, actors *bollywood.Engine, audio *bollywood.PID, out io.Writer, logger *log.Logger) *Headless {
	if logger == nil {
		logger = utils.Discard()
	}
	return &Headless{
		match:  match,
		pilot:  pilot,
		actors: actors,
		audio:  audio,
		out:    out,
		clear:  helpers.ClearScreen,
		cols:   HeadlessCols,
		rows:   HeadlessRows,
		frames: cfg.Frames,
		period: cfg.TickPeriod(),
		logger: logger,
	}
}

// Run plays up to frames ticks, or until the match is over when frames is zero.
func (h *Headless) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if h.period > 0 {
		ticker := time.NewTicker(h.period)
		defer ticker.Stop()
		tick = ticker.C
	}

	for frame := 0; h.frames <= 0 || frame < h.frames; frame++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return nil
		}

		dir := game.DirectionNone
		if h.pilot != nil {
			dir = h.pilot.Next(h.match.Snapshot())
		}
		advance(h.match, dir, h.actors, h.audio)

		if err := h.print(); err != nil {
			return err
		}
		if h.match.State() == game.StateGameOver {
			player, ai := h.match.Scores()
			h.logger.Info("Headless match finished", "frames", frame+1, "winner", h.match.Winner(), "player", player, "ai", ai)
			return nil
		}
	}
	return nil
}

func (h *Headless) print() error {
	if h.clear != nil {
		h.clear()
	}
	if _, err := fmt.Fprint(h.out, render.RenderToASCII(h.match.Snapshot(), h.cols, h.rows)); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
