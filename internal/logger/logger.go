package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the logging interface used across elfinfo. Commands receive it
// through the context installed by the CLI.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
	WithGroup(name string) Logger
}

// Format selects the handler behind a Logger.
type Format string

const (
	FormatPretty Format = "pretty"
	FormatJSON   Format = "json"
	FormatText   Format = "text"
)

// Options configures New.
type Options struct {
	Level   slog.Level
	Format  Format
	NoColor bool
	// Source adds the caller position to json and text records.
	Source bool
}

// SlogLogger adapts *slog.Logger to Logger.
type SlogLogger struct {
	logger *slog.Logger
}

// New builds a Logger for w according to opts.
func New(w io.Writer, opts Options) (Logger, error) {
	hopts := &slog.HandlerOptions{Level: opts.Level, AddSource: opts.Source}
	switch opts.Format {
	case FormatPretty, "":
		return wrap(NewPrettyHandler(w, &PrettyOptions{HandlerOptions: *hopts, NoColor: opts.NoColor})), nil
	case FormatJSON:
		return wrap(slog.NewJSONHandler(w, hopts)), nil
	case FormatText:
		return wrap(slog.NewTextHandler(w, hopts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (want pretty, json or text)", opts.Format)
	}
}

func wrap(h slog.Handler) Logger {
	return &SlogLogger{logger: slog.New(h)}
}

// Default writes warnings and errors to stderr in the pretty format.
func Default() Logger {
	return wrap(NewPrettyHandler(os.Stderr, &PrettyOptions{
		HandlerOptions: slog.HandlerOptions{Level: slog.LevelWarn},
	}))
}

// Discard drops every record.
func Discard() Logger {
	return wrap(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// JSON creates a Logger with a JSON handler.
func JSON(w io.Writer, level slog.Level) Logger {
	return wrap(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Pretty creates a colored Logger for terminals.
func Pretty(w io.Writer, level slog.Level) Logger {
	return wrap(NewPrettyHandler(w, &PrettyOptions{
		HandlerOptions: slog.HandlerOptions{Level: level},
	}))
}

func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey{}).(Logger); ok {
		return l
	}
	return Default()
}

func WithContext(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

type loggerKey struct{}

func (l *SlogLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *SlogLogger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *SlogLogger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *SlogLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

func (l *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{logger: l.logger.With(args...)}
}

func (l *SlogLogger) WithGroup(name string) Logger {
	return &SlogLogger{logger: l.logger.WithGroup(name)}
}

// ParseLevel converts a level name to slog.Level. Names are matched without
// regard to case; unknown names map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
