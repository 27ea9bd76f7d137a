package utils

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger builds the process logger. With no LogFile it writes to fallback,
// which is io.Discard while tcell owns the terminal.
// The returned close func releases the log file, if one was opened.
func NewLogger(cfg Config, fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	out := fallback
	closer := func() error { return nil }
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closer, err
		}
		out = f
		closer = f.Close
	}
	if out == nil {
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "pingpong",
		Level:           level,
	})
	return logger, closer, nil
}

// Discard is a logger that drops everything, handy as a default.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
