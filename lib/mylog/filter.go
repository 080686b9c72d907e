package mylog

import (
	"context"
	"strings"
)

var severityRank = map[Severity]int{
	SeverityDebug: 0,
	SeverityInfo:  1,
	SeverityWarn:  2,
	SeverityError: 3,
}

func ParseSeverity(s string) (Severity, bool) {
	severity := Severity(strings.ToUpper(s))
	_, found := severityRank[severity]
	return severity, found
}

type filteredLogger struct {
	next Logger
	min  Severity
}

// WithMinimumSeverity drops every log line below min.
func WithMinimumSeverity(next Logger, min Severity) Logger {
	return filteredLogger{
		next: next,
		min:  min,
	}
}

func (l filteredLogger) Log(c context.Context, traceLabel string, severity Severity, format string, a ...any) {
	if severityRank[severity] < severityRank[l.min] {
		return
	}
	l.next.Log(c, traceLabel, severity, format, a...)
}
