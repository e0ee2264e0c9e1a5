package mylog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/MarcGrol/shopcheckout/lib/mycontext"
)

type structuredLogger struct {
	componentName string
	out           io.Writer
}

func newStructuredLogger(componentName string, out io.Writer) Logger {
	return structuredLogger{
		componentName: componentName,
		out:           out,
	}
}

func (l structuredLogger) Log(ctx context.Context, traceLabel string, severity Severity, format string, a ...any) {
	fmt.Fprintln(l.out, entry{
		Component: l.componentName,
		Labels:    map[string]string{"aggregate": traceLabel},
		Trace:     mycontext.TraceFromContext(ctx),
		Severity:  string(severity),
		Message:   fmt.Sprintf(format, a...),
	}.String())
}

type entry struct {
	Component string            `json:"component,omitempty"`
	Labels    map[string]string `json:"labels,omitempty"`
	Trace     string            `json:"trace,omitempty"`
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
