package configs

import (
	"io"
	"log/slog"
	"strings"
)

// Logger configures the slog handler. Level is one of debug, info, warn
// or error; Format is text or json. Unknown values fall back to info and
// text.
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
	// Source adds the file:line of the call site to every record.
	Source bool `env:"SOURCE" envDefault:"false"`
}

func (c Logger) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Logger) SlogFormat() string {
	if strings.EqualFold(c.Format, "json") {
		return "json"
	}
	return "text"
}

// Handler builds the slog.Handler described by c, writing to w.
func (c Logger) Handler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: c.SlogLevel(), AddSource: c.Source}
	if c.SlogFormat() == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
