package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/config"
)

// NewLogger builds the process logger from cfg, writing to stderr, and
// installs it as the slog default. The json format is for production; text
// adds the source position of each record.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "text":
		opts.AddSource = true
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler).With(slog.String("version", Version))
}

// parseLevel maps a configured level name to a slog level. Unknown names
// are info.
func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
