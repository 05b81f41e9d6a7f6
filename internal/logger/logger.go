package logger

import (
	"log/slog"
	"os"
)

// Config описывает параметры логгера.
type Config struct {
	Level  string // "debug", "info", "warn", "error"
	Format string // "json" или "text"
}

// New создаёт и настраивает slog.Logger.
func New(cfg Config) *slog.Logger {
	var lvl slog.Level

	switch cfg.Level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	}

	return slog.New(handler)
}
