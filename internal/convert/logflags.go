package convert

import (
	"log"
	"sync/atomic"
)

var traceLogEnabled atomic.Bool

// SetTraceLoggingEnabled turns step-by-step pipeline logging on or off for the
// whole process.
func SetTraceLoggingEnabled(enabled bool) {
	traceLogEnabled.Store(enabled)
}

func isTraceLoggingEnabled() bool {
	return traceLogEnabled.Load()
}

// Logger is the small logging interface the pipelines report through.
type Logger interface {
	Printf(format string, args ...any)
}

// stdLogger adapts the standard log package to Logger.
type stdLogger struct{}

func (stdLogger) Printf(format string, args ...any) {
	log.Printf(format, args...)
}
