package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/mssola/useragent"

	"github.com/blogem/welfare-admin/apperrors"
	"github.com/blogem/welfare-admin/models"
	"github.com/blogem/welfare-admin/services"
	"github.com/blogem/welfare-admin/userctx"
)

// AuditRecorder appends audit events on a best-effort basis
type AuditRecorder interface {
	Record(ctx context.Context, entry services.AuditEntry) *models.AuditEvent
}

// Result is what an audited operation hands back for the response and its audit event
type Result struct {
	Status  int // defaults to 200
	Body    any
	Message string         // audit message, defaults to "<event> succeeded"
	Data    map[string]any // extra audit context, such as the affected entity id
	// Actor overrides the audit actor for requests that authenticate themselves, such as a login.
	Actor string
}

// Operation performs the business action of a route. It may set headers or cookies on w
// but must not write the body.
type Operation func(w http.ResponseWriter, r *http.Request) (*Result, error)

// AuditOption tunes a single audited route
type AuditOption func(*auditedRoute)

type auditedRoute struct {
	escalateFaults bool
	failureEvent   string
}

// EscalateFaults records unexpected faults as critical instead of error.
// Used on routes that create or authenticate identities.
func EscalateFaults() AuditOption {
	return func(a *auditedRoute) { a.escalateFaults = true }
}

// FailureEvent records failed attempts under a separate event name, such as "auth.login.failed"
func FailureEvent(event string) AuditOption {
	return func(a *auditedRoute) { a.failureEvent = event }
}

// Audited runs op and records exactly one audit event named event for the attempt,
// whatever its outcome, before writing the response.
func Audited(audit AuditRecorder, event string, op Operation, opts ...AuditOption) http.HandlerFunc {
	route := &auditedRoute{}
	for _, opt := range opts {
		opt(route)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		result, err := op(w, r)

		entry := services.AuditEntry{
			Event: event,
			Actor: userctx.GetUserID(r.Context()),
			Data:  requestContext(r),
		}

		if err != nil {
			appErr := apperrors.Wrap(err)
			if route.failureEvent != "" {
				entry.Event = route.failureEvent
			}
			entry.Severity = route.severityFor(appErr.Type)
			entry.Message = appErr.Error()
			entry.Data["outcome"] = "failure"
			entry.Data["category"] = string(appErr.Type)
			entry.Data["status"] = appErr.HTTPStatus
			audit.Record(r.Context(), entry)

			WriteError(w, appErr)
			return
		}

		if result == nil {
			result = &Result{}
		}
		if result.Status == 0 {
			result.Status = http.StatusOK
		}
		if result.Actor != "" && entry.Actor == "" {
			entry.Actor = result.Actor
		}

		entry.Severity = models.SeverityInfo
		entry.Message = result.Message
		if entry.Message == "" {
			entry.Message = event + " succeeded"
		}
		for k, v := range result.Data {
			entry.Data[k] = v
		}
		entry.Data["outcome"] = "success"
		entry.Data["status"] = result.Status
		audit.Record(r.Context(), entry)

		WriteJSON(w, result.Status, result.Body)
	}
}

// severityFor maps a failure category onto an audit severity
func (a *auditedRoute) severityFor(t apperrors.ErrorType) models.Severity {
	switch t {
	case apperrors.ErrNotFound, apperrors.ErrConflict, apperrors.ErrInvalidRequest,
		apperrors.ErrUnauthenticated, apperrors.ErrInvalidToken, apperrors.ErrForbidden:
		return models.SeverityWarn
	case apperrors.ErrIntegrity:
		return models.SeverityCritical
	default:
		if a.escalateFaults {
			return models.SeverityCritical
		}
		return models.SeverityError
	}
}

// RequestMeta captures caller metadata for audit context. It must run after chi's RequestID.
func RequestMeta(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		meta := userctx.RequestMeta{
			RequestID: middleware.GetReqID(r.Context()),
			IPAddress: getIPAddress(r),
			UserAgent: r.UserAgent(),
			Method:    r.Method,
			Path:      r.URL.Path,
		}
		next.ServeHTTP(w, r.WithContext(userctx.WithRequestMeta(r.Context(), meta)))
	})
}

// requestContext builds the base audit context for a request
func requestContext(r *http.Request) map[string]any {
	meta := userctx.RequestMetaFrom(r.Context())
	if meta.Method == "" {
		meta.Method = r.Method
		meta.Path = r.URL.Path
		meta.IPAddress = getIPAddress(r)
		meta.UserAgent = r.UserAgent()
	}

	data := map[string]any{
		"method":    meta.Method,
		"path":      meta.Path,
		"ip":        meta.IPAddress,
		"userAgent": meta.UserAgent,
	}
	if meta.RequestID != "" {
		data["requestId"] = meta.RequestID
	}
	if meta.UserAgent != "" {
		data["client"] = describeClient(meta.UserAgent)
	}
	return data
}

// describeClient summarises a User-Agent header for audit context
func describeClient(header string) map[string]any {
	ua := useragent.New(header)
	browser, version := ua.Browser()
	return map[string]any{
		"browser": browser,
		"version": version,
		"os":      ua.OS(),
		"mobile":  ua.Mobile(),
		"bot":     ua.Bot(),
	}
}

// getIPAddress extracts IP address from request, checking X-Forwarded-For first
func getIPAddress(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		// Take first IP if multiple
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	// Check X-Real-IP header
	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	// Fall back to RemoteAddr
	ip := r.RemoteAddr
	// Remove port if present
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
