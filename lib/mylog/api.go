package mylog

import (
	"context"
	"os"
)

type Severity string

const (
	SeverityDebug Severity = "DEBUG"
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

// New creates a logger for the given component. The implementation is picked
// once at startup based on STORE_LOG_FORMAT.
var New func(name string) Logger

func init() {
	if os.Getenv("STORE_LOG_FORMAT") == "json" {
		New = newStructuredLogger
		return
	}
	New = newStandardLogger
}

type Logger interface {
	Log(c context.Context, traceLabel string, severity Severity, format string, a ...any)
}
