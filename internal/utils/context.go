// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys and
// HTTP response writing.
package utils

import (
	"context"

	"github.com/haeun-dev/memo-server/internal/session"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the session middleware stores the
// decoded session for the current request.
var SessionCtxKey = contextKey("session")

// GetSessionFromContext retrieves the decoded session from the context.
//
// Returns the session and an ok flag:
//   - ok == true: a session cookie was present and verified
//   - ok == false: the request carried no usable session
func GetSessionFromContext(ctx context.Context) (session.Session, bool) {
	sess, ok := ctx.Value(SessionCtxKey).(session.Session)
	return sess, ok
}

// WithSession returns a child context carrying the decoded session.
func WithSession(ctx context.Context, sess session.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, sess)
}
