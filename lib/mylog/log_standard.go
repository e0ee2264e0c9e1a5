package mylog

import (
	"context"
	"fmt"
	"io"
)

type standardLogger struct {
	componentName string
	out           io.Writer
}

func newStandardLogger(componentName string, out io.Writer) Logger {
	return standardLogger{
		componentName: componentName,
		out:           out,
	}
}

func (l standardLogger) Log(ctx context.Context, traceLabel string, severity Severity, format string, a ...any) {
	fmt.Fprintf(l.out, "%s - %s - %s - %s\n", l.componentName, traceLabel, string(severity), fmt.Sprintf(format, a...))
}
