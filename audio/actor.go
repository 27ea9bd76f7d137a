package audio

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/lguibr/pingpong/bollywood"
	"github.com/lguibr/pingpong/game"
	"github.com/lguibr/pingpong/utils"
)

// Beeper plays the sound for one event.
type Beeper interface {
	Play(ev game.Event)
}

// Actor plays game events off the tick loop, so a slow audio device never stalls a frame.
type Actor struct {
	beeper Beeper
	logger *log.Logger
}

func NewActorProducer(beeper Beeper, logger *log.Logger) bollywood.Producer {
	if logger == nil {
		logger = utils.Discard()
	}
	return func() bollywood.Actor {
		return &Actor{beeper: beeper, logger: logger}
	}
}

func (a *Actor) Receive(ctx bollywood.Context) {
	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		a.logger.Debug("Audio actor started", "actor", ctx.Self())

	case game.Event:
		a.beeper.Play(msg)

	case []game.Event:
		for _, ev := range msg {
			a.beeper.Play(ev)
		}

	case bollywood.Stopping, bollywood.Stopped:

	default:
		a.logger.Warn("Audio actor received unknown message", "type", fmt.Sprintf("%T", msg))
	}
}
