package logging

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the unified logging interface used across the application.
type Logger interface {
	// Info logs an informational message.
	Info(msg string, fields ...Field)

	// Warn logs a condition that does not stop the computation but may affect
	// its result, such as a rounding deviation close to the decode tolerance.
	Warn(msg string, fields ...Field)

	// Error logs an error message with the associated error.
	Error(msg string, err error, fields ...Field)

	// Debug logs a debug message.
	Debug(msg string, fields ...Field)

	// Printf provides compatibility with the standard log.Logger Printf method.
	Printf(format string, args ...any)

	// Println provides compatibility with the standard log.Logger Println method.
	Println(args ...any)
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an integer field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Uint64 creates a uint64 field.
func Uint64(key string, value uint64) Field {
	return Field{Key: key, Value: value}
}

// Float64 creates a float64 field.
func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a boolean field.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// ParseLevel converts a user-supplied level name ("debug", "info", "warn",
// "error", "disabled") into a zerolog level.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled", "off", "none":
		return zerolog.Disabled, nil
	}
	return zerolog.NoLevel, fmt.Errorf("unknown log level %q", name)
}

// ZerologAdapter adapts a zerolog.Logger to the Logger interface.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter creates a new Logger backed by zerolog.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewDefaultLogger creates a Logger writing JSON lines to stderr.
func NewDefaultLogger() *ZerologAdapter {
	return NewZerologAdapter(
		zerolog.New(os.Stderr).With().Timestamp().Logger(),
	)
}

// NewLogger creates a Logger writing to w, tagging every event with the
// component name.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	return NewZerologAdapter(
		zerolog.New(w).With().Str("component", component).Timestamp().Logger(),
	)
}

// NewConsoleLogger creates a human-readable Logger for interactive sessions.
func NewConsoleLogger(w io.Writer, component string, noColor bool) *ZerologAdapter {
	cw := zerolog.ConsoleWriter{Out: w, NoColor: noColor, TimeFormat: time.Kitchen}
	return NewZerologAdapter(
		zerolog.New(cw).With().Str("component", component).Timestamp().Logger(),
	)
}

// Zerolog exposes the underlying zerolog.Logger for packages that log on hot paths.
func (z *ZerologAdapter) Zerolog() zerolog.Logger {
	return z.logger
}

func (z *ZerologAdapter) applyFields(event *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event = event.Str(f.Key, v)
		case int:
			event = event.Int(f.Key, v)
		case int64:
			event = event.Int64(f.Key, v)
		case uint64:
			event = event.Uint64(f.Key, v)
		case float64:
			event = event.Float64(f.Key, v)
		case time.Duration:
			event = event.Dur(f.Key, v)
		case error:
			event = event.Err(v)
		case bool:
			event = event.Bool(f.Key, v)
		default:
			event = event.Interface(f.Key, v)
		}
	}
	return event
}

// Info logs an informational message.
func (z *ZerologAdapter) Info(msg string, fields ...Field) {
	z.applyFields(z.logger.Info(), fields).Msg(msg)
}

// Warn logs a warning.
func (z *ZerologAdapter) Warn(msg string, fields ...Field) {
	z.applyFields(z.logger.Warn(), fields).Msg(msg)
}

// Error logs an error message.
func (z *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	z.applyFields(z.logger.Error().Err(err), fields).Msg(msg)
}

// Debug logs a debug message.
func (z *ZerologAdapter) Debug(msg string, fields ...Field) {
	z.applyFields(z.logger.Debug(), fields).Msg(msg)
}

// Printf provides compatibility with standard log.Printf.
func (z *ZerologAdapter) Printf(format string, args ...any) {
	z.logger.Info().Msgf(format, args...)
}

// Println provides compatibility with standard log.Println.
func (z *ZerologAdapter) Println(args ...any) {
	z.logger.Info().Msg(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

// StdLoggerAdapter adapts a standard log.Logger to the Logger interface.
type StdLoggerAdapter struct {
	logger *stdlog.Logger
}

// NewStdLoggerAdapter creates a new Logger backed by standard log.Logger.
func NewStdLoggerAdapter(logger *stdlog.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{logger: logger}
}

func (s *StdLoggerAdapter) print(level, msg string, fields []Field) {
	if len(fields) == 0 {
		s.logger.Println(level, msg)
		return
	}
	s.logger.Printf("%s %s %v\n", level, msg, fields)
}

// Info logs an informational message.
func (s *StdLoggerAdapter) Info(msg string, fields ...Field) { s.print("[INFO]", msg, fields) }

// Warn logs a warning.
func (s *StdLoggerAdapter) Warn(msg string, fields ...Field) { s.print("[WARN]", msg, fields) }

// Debug logs a debug message.
func (s *StdLoggerAdapter) Debug(msg string, fields ...Field) { s.print("[DEBUG]", msg, fields) }

// Error logs an error message.
func (s *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	if len(fields) == 0 {
		s.logger.Printf("[ERROR] %s: %v\n", msg, err)
	} else {
		s.logger.Printf("[ERROR] %s: %v %v\n", msg, err, fields)
	}
}

// Printf provides compatibility with standard log.Printf.
func (s *StdLoggerAdapter) Printf(format string, args ...any) {
	s.logger.Printf(format, args...)
}

// Println provides compatibility with standard log.Println.
func (s *StdLoggerAdapter) Println(args ...any) {
	s.logger.Println(args...)
}

// NopLogger discards every event.
type NopLogger struct{}

func (NopLogger) Info(string, ...Field)         {}
func (NopLogger) Warn(string, ...Field)         {}
func (NopLogger) Error(string, error, ...Field) {}
func (NopLogger) Debug(string, ...Field)        {}
func (NopLogger) Printf(string, ...any)         {}
func (NopLogger) Println(...any)                {}

var (
	_ Logger = (*ZerologAdapter)(nil)
	_ Logger = (*StdLoggerAdapter)(nil)
	_ Logger = NopLogger{}
)
