// Package authctx propagates the authenticated caller through a request's
// context. The caller exists only for the duration of one request and is
// never persisted.
package authctx

import (
	"context"

	"github.com/skillsenselab/fintrust/auth/token"
)

// contextKey is an unexported type to prevent collisions with other packages.
type contextKey struct{}

var callerKey = contextKey{}

// With stores the verified caller in the context.
func With(ctx context.Context, caller token.Caller) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

// From retrieves the caller from the context.
func From(ctx context.Context) (token.Caller, bool) {
	caller, ok := ctx.Value(callerKey).(token.Caller)
	return caller, ok
}

// MustFrom retrieves the caller, panicking if absent. Use only behind the
// auth middleware, which guarantees the caller is set.
func MustFrom(ctx context.Context) token.Caller {
	caller, ok := From(ctx)
	if !ok {
		panic("authctx: no caller in context")
	}
	return caller
}
