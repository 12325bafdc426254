// Package session carries the identity of the caller of one request. The
// transports resolve it once (gRPC interceptor, HTTP middleware) and the
// services receive it as an explicit argument.
package session

import "context"

// Caller is either an authenticated user or anonymous. The zero value is
// anonymous.
type Caller struct {
	userID int64
	ok     bool
}

func Anonymous() Caller {
	return Caller{}
}

func User(id int64) Caller {
	return Caller{userID: id, ok: true}
}

// UserID returns the caller's user id and whether the caller is authenticated.
func (c Caller) UserID() (int64, bool) {
	return c.userID, c.ok
}

func (c Caller) Authenticated() bool {
	return c.ok
}

type ctxKey struct{}

// WithCaller stores c in ctx.
func WithCaller(ctx context.Context, c Caller) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext returns the caller stored in ctx, or an anonymous caller.
func FromContext(ctx context.Context) Caller {
	c, _ := ctx.Value(ctxKey{}).(Caller)
	return c
}
