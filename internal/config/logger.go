package config

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/natefinch/lumberjack"
)

// ParseLevel maps a config log level onto slog. Unknown values mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetupLogger configures the global logger. Output goes to stderr, since
// stdout carries the MCP stream, and to a rotating file when one is set.
func SetupLogger(app AppConfig) *slog.Logger {
	var w io.Writer = os.Stderr
	if app.LogFile != "" {
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   app.LogFile,
			MaxSize:    app.LogMaxSizeMB,
			MaxBackups: app.LogMaxBackups,
		})
	}

	logger := newLogger(w, ParseLevel(app.LogLevel))
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug, // Add source file/line in debug mode
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
