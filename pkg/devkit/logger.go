package devkit

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Prefix is prepended to every line written by a [Logger].
const Prefix = "[AI-PC-DevKit] "

var defaultLogger = NewLogger(stdout{})

// Logger writes tagged installation messages to a text sink.
type Logger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewLogger creates a [Logger] that writes to w.
func NewLogger(w io.Writer) *Logger {
	return &Logger{w: w}
}

// LogMessage writes a single line made of [Prefix] and the default text form
// of message. Write errors are dropped.
func (l *Logger) LogMessage(message any) {
	line := Prefix + fmt.Sprint(message) + "\n"

	l.mu.Lock()
	defer l.mu.Unlock()

	_, _ = io.WriteString(l.w, line)
}

// LogMessage writes message to standard output using the default [Logger].
func LogMessage(message any) {
	defaultLogger.LogMessage(message)
}

// stdout resolves [os.Stdout] on every write.
type stdout struct{}

func (stdout) Write(p []byte) (int, error) {
	return os.Stdout.Write(p) //nolint:wrapcheck // Transparent passthrough.
}
