package calculation

import (
	"io"
	"log"
)

// Logger is a minimal logging interface for the calculation engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// WriterLogger writes leveled lines to an io.Writer. Debug lines are dropped unless Verbose.
type WriterLogger struct {
	out     *log.Logger
	Verbose bool
}

// NewWriterLogger creates a WriterLogger writing to w
func NewWriterLogger(w io.Writer, verbose bool) *WriterLogger {
	return &WriterLogger{out: log.New(w, "runway: ", 0), Verbose: verbose}
}

func (l *WriterLogger) Debugf(format string, args ...any) {
	if l.Verbose {
		l.out.Printf("DEBUG "+format, args...)
	}
}

func (l *WriterLogger) Infof(format string, args ...any) {
	if l.Verbose {
		l.out.Printf("INFO "+format, args...)
	}
}

func (l *WriterLogger) Warnf(format string, args ...any)  { l.out.Printf("WARN "+format, args...) }
func (l *WriterLogger) Errorf(format string, args ...any) { l.out.Printf("ERROR "+format, args...) }
