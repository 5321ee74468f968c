package userctx

import (
	"context"

	"github.com/blogem/welfare-admin/models"
)

// Context key type
type contextKey string

const (
	principalKey   contextKey = "principal"
	requestMetaKey contextKey = "request_meta"
)

// RequestMeta describes the caller of a request for audit context
type RequestMeta struct {
	RequestID string
	IPAddress string
	UserAgent string
	Method    string
	Path      string
}

// WithPrincipal adds the authenticated principal to the request context
func WithPrincipal(ctx context.Context, principal *models.Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// PrincipalFrom retrieves the authenticated principal, or nil for an anonymous request
func PrincipalFrom(ctx context.Context) *models.Principal {
	principal, _ := ctx.Value(principalKey).(*models.Principal)
	return principal
}

// GetUserID retrieves the authenticated principal's ID, or "" for an anonymous request
func GetUserID(ctx context.Context) string {
	if principal := PrincipalFrom(ctx); principal != nil {
		return principal.ID
	}
	return ""
}

// WithRequestMeta adds caller metadata to the request context
func WithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey, meta)
}

// RequestMetaFrom retrieves caller metadata from the request context
func RequestMetaFrom(ctx context.Context) RequestMeta {
	meta, _ := ctx.Value(requestMetaKey).(RequestMeta)
	return meta
}
