package middleware

import (
	"net/http"

	"github.com/blogem/welfare-admin/apperrors"
	"github.com/blogem/welfare-admin/authz"
	"github.com/blogem/welfare-admin/metrics"
	"github.com/blogem/welfare-admin/models"
	"github.com/blogem/welfare-admin/services"
	"github.com/blogem/welfare-admin/userctx"
)

// DeniedEvent is the audit event recorded for every refused capability check
const DeniedEvent = "authz.denied"

// RequireCapability lets the request through only if its principal holds capability.
// A refusal is answered with 403 and recorded as one warn event; the handler never runs.
func RequireCapability(audit AuditRecorder, capability authz.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := userctx.PrincipalFrom(r.Context())
			if principal == nil {
				WriteError(w, apperrors.NewUnauthenticated("not authorized, no principal"))
				return
			}

			decision := authz.Authorize(principal, capability)
			if decision.Allowed {
				metrics.AuthzDecisions.WithLabelValues(string(capability), metrics.OutcomeAllowed).Inc()
				next.ServeHTTP(w, r)
				return
			}
			metrics.AuthzDecisions.WithLabelValues(string(capability), metrics.OutcomeDenied).Inc()

			data := requestContext(r)
			data["capability"] = string(capability)
			data["role"] = string(principal.Role)
			data["reason"] = decision.Reason
			audit.Record(r.Context(), services.AuditEntry{
				Severity: models.SeverityWarn,
				Event:    DeniedEvent,
				Actor:    principal.ID,
				Message:  "forbidden: " + decision.Reason,
				Data:     data,
			})

			WriteError(w, apperrors.NewForbidden("not authorized for this action"))
		})
	}
}
