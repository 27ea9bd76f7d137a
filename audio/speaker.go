package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/lguibr/pingpong/game"
	"github.com/lguibr/pingpong/utils"
)

// Speaker turns game events into short sine beeps.
// Until Init succeeds every Play is a no-op, which is also how mute works.
type Speaker struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	tones       map[game.Event]utils.Tone
	volume      float64
	mixer       *beep.Mixer
	initialized bool
	logger      *log.Logger
}

func NewSpeaker(cfg utils.Config, logger *log.Logger) *Speaker {
	if logger == nil {
		logger = utils.Discard()
	}
	return &Speaker{
		rate: beep.SampleRate(cfg.SampleRate),
		tones: map[game.Event]utils.Tone{
			game.EventWallBounce: cfg.WallTone,
			game.EventPaddleHit:  cfg.PaddleTone,
			game.EventScore:      cfg.ScoreTone,
		},
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Init opens the audio device.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Stream builds the beep for ev. It ends after the tone's duration.
func (s *Speaker) Stream(ev game.Event) (beep.Streamer, error) {
	tone, ok := s.tones[ev]
	if !ok {
		return nil, fmt.Errorf("no tone for event %s", ev)
	}

	sine, err := generators.SineTone(s.rate, tone.Frequency)
	if err != nil {
		return nil, fmt.Errorf("%s tone: %w", ev, err)
	}

	volume := &effects.Volume{
		Streamer: sine,
		Base:     2,
		Volume:   s.volume,
	}
	return beep.Take(s.rate.N(tone.Duration), volume), nil
}

func (s *Speaker) Play(ev game.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	streamer, err := s.Stream(ev)
	if err != nil {
		s.logger.Warn("Cannot play event", "event", ev, "err", err)
		return
	}

	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	s.initialized = false
}
