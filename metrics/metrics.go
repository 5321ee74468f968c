package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AuthzDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "welfare_authz_decisions_total",
		Help: "Capability checks by capability and outcome",
	}, []string{"capability", "outcome"})

	TokenVerifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "welfare_token_verifications_total",
		Help: "Session token verifications by outcome",
	}, []string{"outcome"})

	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "welfare_logins_total",
		Help: "Login attempts by method and outcome",
	}, []string{"method", "outcome"})

	AuditWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "welfare_audit_writes_total",
		Help: "Audit events persisted by severity",
	}, []string{"severity"})

	AuditWriteFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "welfare_audit_write_failures_total",
		Help: "Audit events that could not be persisted and went to the fallback channel",
	})

	RequestLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "welfare_request_duration_seconds",
		Help:    "Request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "status"})
)

// Outcome labels shared by the counters above.
const (
	OutcomeAllowed = "allowed"
	OutcomeDenied  = "denied"
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)
