// File: utils/config.go
package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig is returned by Validate for a configuration the game cannot run with.
var ErrInvalidConfig = errors.New("invalid config")

// Tone is a fixed-pitch beep.
type Tone struct {
	Frequency float64       `json:"frequency"` // Hz
	Duration  time.Duration `json:"duration"`
}

// Config holds all configurable game parameters.
type Config struct {
	// Window
	Title        string `json:"title"`
	ScreenWidth  int    `json:"screenWidth"`  // World units, not terminal cells
	ScreenHeight int    `json:"screenHeight"` // World units, not terminal cells

	// Timing
	TickRate  int `json:"tickRate"`  // Simulation ticks per second
	HoldTicks int `json:"holdTicks"` // Ticks a key press keeps the paddle moving

	// Match
	WinningScore int `json:"winningScore"`

	// Paddles
	PaddleWidth  int     `json:"paddleWidth"`
	PaddleHeight int     `json:"paddleHeight"`
	PaddleMargin int     `json:"paddleMargin"` // Gap between a paddle and its side of the field
	PlayerStep   float64 `json:"playerStep"`   // Human paddle move per intent
	AIStep       float64 `json:"aiStep"`       // Auto-tracker move per tick

	// Ball
	BallSize       int       `json:"ballSize"`
	BallSpeedX     float64   `json:"ballSpeedX"`     // |vx|, sign drawn at spawn
	VerticalSpeeds []float64 `json:"verticalSpeeds"` // vy is drawn from this set at spawn and after each point

	// Audio
	WallTone   Tone    `json:"wallTone"`
	PaddleTone Tone    `json:"paddleTone"`
	ScoreTone  Tone    `json:"scoreTone"`
	SampleRate int     `json:"sampleRate"`
	Volume     float64 `json:"volume"` // beep effects.Volume exponent, 0 is unchanged
	Mute       bool    `json:"mute"`

	// Runtime
	Seed     int64  `json:"seed"` // 0 picks a time based seed
	LogFile  string `json:"logFile"`
	LogLevel string `json:"logLevel"`
	Headless bool   `json:"headless"`
	Frames   int    `json:"frames"` // Headless only, 0 runs until the match ends
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		Title:        WindowTitle,
		ScreenWidth:  ScreenWidth,
		ScreenHeight: ScreenHeight,

		TickRate:  TickRate,
		HoldTicks: 6,

		WinningScore: 5,

		PaddleWidth:  10,
		PaddleHeight: 100,
		PaddleMargin: 10,
		PlayerStep:   10,
		AIStep:       5,

		BallSize:       7,
		BallSpeedX:     5,
		VerticalSpeeds: []float64{-3, 3},

		WallTone:   Tone{Frequency: 330, Duration: 50 * time.Millisecond},  // E4
		PaddleTone: Tone{Frequency: 440, Duration: 50 * time.Millisecond},  // A4
		ScoreTone:  Tone{Frequency: 660, Duration: 100 * time.Millisecond}, // E5
		SampleRate: 44100,
		Volume:     -1,

		LogLevel: "info",
	}
}

// TickPeriod is the wall-clock duration of one simulation tick.
func (c Config) TickPeriod() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Validate checks the invariants the game objects rely on.
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick rate %d", ErrInvalidConfig, c.TickRate)
	case c.PaddleWidth <= 0 || c.PaddleHeight <= 0 || c.PaddleHeight > c.ScreenHeight:
		return fmt.Errorf("%w: paddle %dx%d", ErrInvalidConfig, c.PaddleWidth, c.PaddleHeight)
	case 2*(c.PaddleMargin+c.PaddleWidth) >= c.ScreenWidth:
		return fmt.Errorf("%w: paddles do not fit a %d wide field", ErrInvalidConfig, c.ScreenWidth)
	case c.BallSize <= 0 || c.BallSize >= c.ScreenHeight:
		return fmt.Errorf("%w: ball size %d", ErrInvalidConfig, c.BallSize)
	case c.BallSpeedX <= 0:
		return fmt.Errorf("%w: ball speed %v", ErrInvalidConfig, c.BallSpeedX)
	case len(c.VerticalSpeeds) == 0:
		return fmt.Errorf("%w: no vertical speeds", ErrInvalidConfig)
	case c.PlayerStep <= 0 || c.AIStep <= 0:
		return fmt.Errorf("%w: paddle steps %v/%v", ErrInvalidConfig, c.PlayerStep, c.AIStep)
	case c.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	}
	for _, vy := range c.VerticalSpeeds {
		if vy == 0 {
			return fmt.Errorf("%w: zero vertical speed", ErrInvalidConfig)
		}
	}
	return nil
}

// Load returns DefaultConfig overridden by a .env file (if any) and PINGPONG_* variables.
func Load() (Config, error) {
	// Missing .env is the common case.
	_ = godotenv.Load()
	return FromEnv(os.LookupEnv)
}

// FromEnv applies PINGPONG_* overrides read through lookup on top of DefaultConfig.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	if v, ok := lookup(EnvWinningScore); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvWinningScore, err)
		}
		cfg.WinningScore = n
	}
	if v, ok := lookup(EnvTickRate); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvTickRate, err)
		}
		cfg.TickRate = n
	}
	if v, ok := lookup(EnvSeed); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = n
	}
	if v, ok := lookup(EnvMute); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvMute, err)
		}
		cfg.Mute = b
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = v
	}

	return cfg, nil
}
