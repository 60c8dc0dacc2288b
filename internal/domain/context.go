// Package domain provides core business types and context helpers for the
// vitrine storefront gateway.
//
// Context helpers centralize request-scoped data access so every layer reads
// the session from one authoritative source instead of ambient state.
package domain

import (
	"context"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey int

const (
	// sessionContextKey stores the authenticated session in context.
	sessionContextKey contextKey = iota

	// requestIDContextKey stores the request ID for tracing.
	requestIDContextKey
)

// NewContextWithSession returns a new context with the session attached.
func NewContextWithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}

// SessionFromContext retrieves the session from context.
// Returns nil if no session is present.
func SessionFromContext(ctx context.Context) *Session {
	session, _ := ctx.Value(sessionContextKey).(*Session)
	return session
}

// TokenFromContext retrieves the bearer token from the context session.
// Returns "" for anonymous requests.
func TokenFromContext(ctx context.Context) string {
	if session := SessionFromContext(ctx); session != nil {
		return session.Token
	}
	return ""
}

// NewContextWithRequestID returns a new context carrying the request ID.
func NewContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, id)
}

// RequestIDFromContext retrieves the request ID from context.
// Returns "" if none is present.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}
