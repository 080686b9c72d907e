package mycontext

import (
	"context"
	"net/http"
)

// CtxTraceContext is a context key for the session id of this run (used by mylog)
type CtxTraceContext struct{}

type uuider interface {
	Create() string
}

// NewSessionContext tags every log line of one terminal session with the same id.
func NewSessionContext(parent context.Context, ids uuider) context.Context {
	return context.WithValue(parent, CtxTraceContext{}, ids.Create())
}

func SessionFromContext(c context.Context) string {
	if c == nil {
		return ""
	}
	session, ok := c.Value(CtxTraceContext{}).(string)
	if !ok {
		return ""
	}
	return session
}

// ContextFromHTTPRequest derives a context for an admin request, keeping the
// caller's request id as session when one is given.
func ContextFromHTTPRequest(r *http.Request) context.Context {
	c := r.Context()
	requestID := r.Header.Get("X-Request-ID")
	if requestID == "" {
		return c
	}
	return context.WithValue(c, CtxTraceContext{}, requestID)
}
