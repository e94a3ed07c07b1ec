// Package logging provides the editor's trace logger. The editor draws on
// the same terminal it reads from, so diagnostics can never go to the
// screen; everything is written to a rotating file sink and tracing is off
// unless LINEEDIT_TRACE=1 is set.
package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	globalLogger *Logger
	once         sync.Once
)

// Logger wraps a stdlib logger over a rotating file sink.
type Logger struct {
	logger  *log.Logger
	enabled bool
}

// GetLogger returns the process-wide trace logger, creating it on first
// use.
func GetLogger() *Logger {
	once.Do(func() {
		enabled := os.Getenv("LINEEDIT_TRACE") == "1"

		var sink io.Writer = io.Discard
		if enabled {
			dir := os.Getenv("HOME")
			if dir == "" {
				dir = os.TempDir()
			}
			sink = &lumberjack.Logger{
				Filename:   filepath.Join(dir, ".lineedit", "trace.log"),
				MaxSize:    5, // megabytes
				MaxBackups: 2,
				MaxAge:     14, // days
				Compress:   true,
			}
		}

		globalLogger = &Logger{
			logger:  log.New(sink, "", log.LstdFlags),
			enabled: enabled,
		}
	})
	return globalLogger
}

// Enabled reports whether tracing is active.
func (l *Logger) Enabled() bool { return l.enabled }

// Tracef logs a formatted message to the file sink. No-op when tracing is
// off.
func (l *Logger) Tracef(format string, v ...interface{}) {
	if !l.enabled {
		return
	}
	l.logger.Printf(format, v...)
}

// Close releases the file sink.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	if sink, ok := l.logger.Writer().(*lumberjack.Logger); ok {
		return sink.Close()
	}
	return nil
}
