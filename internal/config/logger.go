// SPDX-License-Identifier: MIT
package config

import (
	"io"
	"log/slog"

	"github.com/natefinch/lumberjack"
)

// nopCloser is returned when logs go to a writer the caller owns.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger creates a slog.Logger for c. With File set, records go to a
// lumberjack-rotated file and the returned closer releases it; otherwise they
// go to fallback and the closer is a no-op. It does not set the global logger.
func (c LogConfig) NewLogger(fallback io.Writer) (*slog.Logger, io.Closer) {
	out, closer := fallback, io.Closer(nopCloser{})
	if c.File != "" {
		lj := &lumberjack.Logger{
			Filename: c.File,
			MaxSize:  c.MaxSize, // megabytes
			MaxAge:   c.MaxAge,  // days
		}
		out, closer = lj, lj
	}

	return newLogger(c.Level, c.Format, out), closer
}

// newLogger builds a text or JSON slog handler at the named level.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}
