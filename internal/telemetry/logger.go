package telemetry

import (
	"fmt"
	"github.com/Borislavv/go-ring-queue/internal/config"
	"github.com/rs/zerolog"
	"io"
	"time"
)

// NewLogger builds the program logger from cfg, writing to w.
func NewLogger(cfg config.LogsCfg, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}

	switch cfg.Format {
	case config.LogFormatJSON:
	case config.LogFormatConsole, "":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", cfg.Format)
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", "ringQueue").
		Logger(), nil
}
