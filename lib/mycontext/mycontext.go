package mycontext

import (
	"context"
	"net/http"
)

// CtxTraceContext is a context key for the trace context (used by mylog)
type CtxTraceContext struct{}

// ContextFromHTTPRequest starts a context that carries the trace id of the incoming request.
func ContextFromHTTPRequest(r *http.Request) context.Context {
	return WithTrace(r.Context(), r.Header.Get("X-Trace-Id"))
}

func WithTrace(c context.Context, trace string) context.Context {
	return context.WithValue(c, CtxTraceContext{}, trace)
}

func TraceFromContext(c context.Context) string {
	trace, ok := c.Value(CtxTraceContext{}).(string)
	if !ok {
		return ""
	}
	return trace
}
