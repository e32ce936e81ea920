// Package log provides context-aware diagnostic logging for gitnav.
package log

import (
	"context"
	"fmt"
	"io"
)

type ctxKey struct{}

// Logger writes diagnostics to stderr. Primary data (paths, listings,
// previews) goes through the output package instead.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
	debug   bool
}

// New creates a new logger.
func New(out io.Writer, verbose, quiet, debug bool) *Logger {
	return &Logger{out: out, verbose: verbose, quiet: quiet, debug: debug}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard}
}

// Infof writes an informational line. Suppressed by quiet mode.
func (l *Logger) Infof(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format+"\n", args...)
}

// Verbosef writes a line only when verbose mode is enabled.
func (l *Logger) Verbosef(format string, args ...any) {
	if !l.verbose || l.quiet {
		return
	}
	fmt.Fprintf(l.out, format+"\n", args...)
}

// Debugf writes a DEBUG-prefixed line only when debug mode is enabled.
// Debug output ignores quiet since asking for it is explicit.
func (l *Logger) Debugf(format string, args ...any) {
	if !l.debug {
		return
	}
	fmt.Fprintf(l.out, "DEBUG: "+format+"\n", args...)
}

// Warnf writes a warning line. Warnings are never suppressed.
func (l *Logger) Warnf(format string, args ...any) {
	fmt.Fprintf(l.out, "Warning: "+format+"\n", args...)
}

// Verbose returns true if verbose mode is enabled.
func (l *Logger) Verbose() bool {
	return l.verbose
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}
