// Package logger provides a zerolog-backed implementation of the
// placeholder.Logger interface used by the HTTP layer and the CLI.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger behind the placeholder.Logger interface.
type Logger struct {
	zl zerolog.Logger
}

// New constructs a console logger writing to stderr. With verbose false only
// warnings and errors are emitted; verbose true lowers the level to debug.
func New(verbose bool) *Logger {
	return NewWithWriter(zerolog.ConsoleWriter{Out: os.Stderr}, verbose)
}

// NewWithWriter constructs a logger writing to the given writer. Tests use
// this to capture output.
func NewWithWriter(w io.Writer, verbose bool) *Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()

	return &Logger{zl: zl}
}

// Nop returns a logger that discards all output. It is intended for tests
// and other contexts where logging would produce noise.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// Debug implements placeholder.Logger.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.zl.Debug().Fields(fields).Msg(msg)
}

// Info implements placeholder.Logger.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.zl.Info().Fields(fields).Msg(msg)
}

// Warn implements placeholder.Logger.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.zl.Warn().Fields(fields).Msg(msg)
}

// Error implements placeholder.Logger.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.zl.Error().Fields(fields).Msg(msg)
}
