// Package logging provides the logger injected into flag and check
// orchestration. It records to the append-only logs.log next to the store;
// user-facing output stays on stdout and is handled by the commands.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger writes leveled, human-readable lines to the store's log file.
type Logger struct {
	log  zerolog.Logger
	file *os.File
}

// New returns a Logger appending to logPath. If the log file cannot be
// opened the logger degrades to a no-op sink rather than failing the
// command.
func New(logPath string) *Logger {
	var out io.Writer = io.Discard
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		out = zerolog.ConsoleWriter{Out: f, NoColor: true}
	}

	l := zerolog.New(out).With().Timestamp().Logger()
	return &Logger{log: l, file: f}
}

// Infof logs a formatted message at info level.
func (l *Logger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

// Errorf logs err with a formatted message at error level.
func (l *Logger) Errorf(err error, format string, args ...any) {
	l.log.Error().Err(err).Msgf(format, args...)
}

// Close releases the log file, if one was opened.
func (l *Logger) Close() {
	if l.file != nil {
		l.file.Close()
	}
}
