package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/blogem/welfare-admin/apperrors"
	"github.com/blogem/welfare-admin/metrics"
	"github.com/blogem/welfare-admin/models"
	"github.com/blogem/welfare-admin/repositories"
	"github.com/blogem/welfare-admin/token"
	"github.com/blogem/welfare-admin/userctx"
)

// TokenCookieName is the cookie that carries the session token
const TokenCookieName = "jwt"

// TokenVerifier checks a session token and returns the principal ID it names
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// PrincipalLoader loads the identity projection of a member
type PrincipalLoader interface {
	GetPrincipal(ctx context.Context, id string) (*models.Principal, error)
}

// RequireAuth resolves the request's principal from its session token.
// Requests without a valid token, or whose principal no longer exists, get a 401 and go no further.
func RequireAuth(tokens TokenVerifier, principals PrincipalLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := extractToken(r)
			if raw == "" {
				WriteError(w, apperrors.NewUnauthenticated("not authorized, no token"))
				return
			}

			principalID, err := tokens.Verify(raw)
			if err != nil {
				metrics.TokenVerifications.WithLabelValues(metrics.OutcomeInvalid).Inc()
				WriteError(w, err)
				return
			}
			metrics.TokenVerifications.WithLabelValues(metrics.OutcomeValid).Inc()

			principal, err := principals.GetPrincipal(r.Context(), principalID)
			if errors.Is(err, repositories.ErrNotFound) {
				WriteError(w, apperrors.NewUnauthenticated("not authorized, account no longer exists"))
				return
			}
			if err != nil {
				WriteError(w, apperrors.New(apperrors.ErrInternal, "failed to load principal", err))
				return
			}

			next.ServeHTTP(w, r.WithContext(userctx.WithPrincipal(r.Context(), principal)))
		})
	}
}

// extractToken reads the session cookie first, then an Authorization bearer header
func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(TokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := r.Header.Get("Authorization")
	scheme, value, ok := strings.Cut(header, " ")
	if ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(value)
	}
	return ""
}

// SetTokenCookie delivers a session token as an HttpOnly, SameSite=Strict cookie
func SetTokenCookie(w http.ResponseWriter, value string, expiresAt time.Time, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(token.Lifetime / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearTokenCookie expires the session cookie
func ClearTokenCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}
