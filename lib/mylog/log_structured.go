package mylog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/MarcGrol/storecli/lib/mycontext"
)

type structuredLogger struct {
	componentName string
	out           io.Writer
}

func newStructuredLogger(componentName string) Logger {
	return NewStructuredLogger(componentName, os.Stderr)
}

// NewStructuredLogger writes one JSON object per log line to out.
func NewStructuredLogger(componentName string, out io.Writer) Logger {
	return structuredLogger{
		componentName: componentName,
		out:           out,
	}
}

func (l structuredLogger) Log(c context.Context, traceLabel string, severity Severity, format string, a ...any) {
	fmt.Fprintln(l.out, entry{
		Component: l.componentName,
		Labels:    map[string]string{"aggregate": traceLabel},
		Session:   mycontext.SessionFromContext(c),
		Severity:  string(severity),
		Message:   l.componentName + ":" + fmt.Sprintf(format, a...),
	}.String())
}

type entry struct {
	Component string            `json:"component,omitempty"`
	Labels    map[string]string `json:"labels,omitempty"`
	Session   string            `json:"session,omitempty"`
	Severity  string            `json:"severity,omitempty"`
	Message   string            `json:"message"`
}

func (e entry) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		log.Printf("error marshalling log record: %v", err)
	}

	return string(out)
}
