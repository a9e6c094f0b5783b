package web

import (
	"context"

	"github.com/example/roomportal/internal/session"
)

type contextKey string

const (
	claimsContextKey  contextKey = "claims"
	tokenContextKey   contextKey = "token"
	visitorContextKey contextKey = "visitor"
)

// ContextWithSession returns a derived context carrying the signed-in user's
// claims and raw bearer token.
func ContextWithSession(ctx context.Context, claims session.Claims, token string) context.Context {
	ctx = context.WithValue(ctx, claimsContextKey, claims)
	return context.WithValue(ctx, tokenContextKey, token)
}

// SessionFromContext extracts the claims of the signed-in user, if any.
func SessionFromContext(ctx context.Context) (session.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(session.Claims)
	return claims, ok
}

// TokenFromContext extracts the raw bearer token of the signed-in user.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey).(string)
	return token, ok
}

// ContextWithVisitor injects the anonymous visitor identifier.
func ContextWithVisitor(ctx context.Context, visitorID string) context.Context {
	return context.WithValue(ctx, visitorContextKey, visitorID)
}

// VisitorFromContext extracts the anonymous visitor identifier.
func VisitorFromContext(ctx context.Context) string {
	visitorID, _ := ctx.Value(visitorContextKey).(string)
	return visitorID
}
