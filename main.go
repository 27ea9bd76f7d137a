package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/pingpong/audio"
	"github.com/lguibr/pingpong/bollywood"
	"github.com/lguibr/pingpong/game"
	"github.com/lguibr/pingpong/shell"
	"github.com/lguibr/pingpong/utils"
	"github.com/spf13/cobra"
)

const (
	shutdownTimeout = 2 * time.Second
	// Headless autopilot moves the player paddle on one tick in this many.
	autopilotEvery = 4
)

type flags struct {
	winningScore int
	seed         int64
	mute         bool
	logFile      string
	logLevel     string
	headless     bool
	frames       int
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "pingpong",
		Short: "Play Pong against the computer in your terminal",
		Long: `Ping Pong: move your paddle with W/S or the arrow keys and
first to the winning score takes the match. After a match, press 3, 5 or 7
to play again to that score, or ESC to leave.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := utils.Load()
			if err != nil {
				return err
			}
			f.apply(cmd, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	defaults := utils.DefaultConfig()
	cmd.Flags().IntVar(&f.winningScore, "winning-score", defaults.WinningScore, "Points needed to win a match")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Random seed for serves, 0 picks one from the clock")
	cmd.Flags().BoolVar(&f.mute, "mute", false, "Disable sound")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "Write logs to this file")
	cmd.Flags().StringVar(&f.logLevel, "log-level", defaults.LogLevel, "Log level: debug, info, warn or error")
	cmd.Flags().BoolVar(&f.headless, "headless", false, "Print an autopiloted match as ASCII instead of opening the terminal UI")
	cmd.Flags().IntVar(&f.frames, "frames", 0, "Headless only: stop after this many frames, 0 plays the match out")
	return cmd
}

// apply overrides cfg with the flags given on the command line. Unset flags keep
// the environment's values.
func (f *flags) apply(cmd *cobra.Command, cfg *utils.Config) {
	changed := cmd.Flags().Changed
	if changed("winning-score") {
		cfg.WinningScore = f.winningScore
	}
	if changed("seed") {
		cfg.Seed = f.seed
	}
	if changed("mute") {
		cfg.Mute = f.mute
	}
	if changed("log-file") {
		cfg.LogFile = f.logFile
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if changed("headless") {
		cfg.Headless = f.headless
	}
	if changed("frames") {
		cfg.Frames = f.frames
	}
}

func run(ctx context.Context, cfg utils.Config, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// tcell owns the terminal, so only headless runs may log to stderr.
	fallback := io.Discard
	if cfg.Headless {
		fallback = stderr
	}
	logger, closeLog, err := utils.NewLogger(cfg, fallback)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	match, err := game.NewMatchEngine(cfg, utils.NewRandom(cfg.Seed), logger)
	if err != nil {
		return err
	}

	actors := bollywood.NewEngine(logger)
	defer func() {
		if !actors.Shutdown(shutdownTimeout) {
			logger.Warn("Actors did not stop in time", "remaining", actors.Len())
		}
	}()

	// A speaker that was never initialised drops every event, which is how mute works.
	speaker := audio.NewSpeaker(cfg, logger)
	if !cfg.Mute {
		if err := speaker.Init(); err != nil {
			logger.Warn("Audio unavailable, playing muted", "error", err)
		}
	}
	defer speaker.Close()
	audioPID := actors.Spawn(bollywood.NewProps(audio.NewActorProducer(speaker, logger)))

	if cfg.Headless {
		return shell.NewHeadless(cfg, match, shell.NewAutopilot(autopilotEvery), actors, audioPID, stdout, logger).Run(ctx)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.HideCursor()

	return shell.New(cfg, screen, match, actors, audioPID, logger).Run(ctx)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pingpong: %v\n", err)
		os.Exit(1)
	}
}
