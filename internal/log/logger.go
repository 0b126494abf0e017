// Package log provides the --verbose progress logger.
package log

import (
	"fmt"
	"io"
)

// Logger writes progress messages when Enabled is true. Each message is
// prefixed with Prefix and terminated with a newline.
type Logger struct {
	Enabled bool
	W       io.Writer
	Prefix  string
}

// New returns a logger writing to w with the "jslinter: " prefix.
func New(w io.Writer, enabled bool) *Logger {
	return &Logger{Enabled: enabled, W: w, Prefix: "jslinter: "}
}

// Printf writes a formatted message to W when Enabled is true.
// It is a no-op when Enabled is false or the logger is nil.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || !l.Enabled {
		return
	}
	_, _ = fmt.Fprintf(l.W, l.Prefix+format+"\n", args...)
}
