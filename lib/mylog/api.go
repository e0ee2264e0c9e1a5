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

type Logger interface {
	Log(ctx context.Context, traceLabel string, severity Severity, format string, a ...any)
}

// New returns a logger for the named component. LOG_FORMAT=json selects structured output.
func New(componentName string) Logger {
	if os.Getenv("LOG_FORMAT") == "json" {
		return newStructuredLogger(componentName, os.Stderr)
	}
	return newStandardLogger(componentName, os.Stderr)
}
