package gate

import "context"

type contextKey string

const identityContextKey contextKey = "bankstream-identity"

// WithIdentity stores the authenticated caller identity in ctx.
func WithIdentity(ctx context.Context, identity string) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// IdentityFromContext returns the identity attached by the authentication
// gate, if any.
func IdentityFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	identity, ok := ctx.Value(identityContextKey).(string)
	return identity, ok
}
