package models

import (
	"fmt"
	"strings"
	"time"
)

// Severity classifies an audit event.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarn     Severity = "warn"
	SeverityError    Severity = "error"
	SeverityDebug    Severity = "debug"
	SeverityCritical Severity = "critical"
)

// ParseSeverity converts a query or form value into a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch sev := Severity(strings.ToLower(strings.TrimSpace(s))); sev {
	case SeverityInfo, SeverityWarn, SeverityError, SeverityDebug, SeverityCritical:
		return sev, nil
	}
	return "", fmt.Errorf("unknown severity %q", s)
}

// AuditEvent is one immutable entry of the audit trail.
type AuditEvent struct {
	ID        int64          `json:"id"`
	Severity  Severity       `json:"type"`
	Event     string         `json:"event"`
	Actor     *string        `json:"user"`
	Timestamp time.Time      `json:"timestamp"`
	Message   string         `json:"message"`
	Context   map[string]any `json:"data"`
}

// AuditFilter narrows an audit query. Zero values mean "no constraint".
type AuditFilter struct {
	Severity Severity
	Event    string // case-insensitive substring
	Actor    string
	From     *time.Time
	To       *time.Time
}

const (
	DefaultAuditPageSize = 20
	MaxAuditPageSize     = 100
)

// ClampPage normalises caller supplied pagination to page >= 1 and 1 <= limit <= 100.
func ClampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxAuditPageSize {
		limit = MaxAuditPageSize
	}
	return page, limit
}

// Pagination describes where a page sits in the full result set.
type Pagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
}

// NewPagination computes page metadata for total matching items.
func NewPagination(page, limit, total int) Pagination {
	pages := 0
	if total > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{
		CurrentPage:  page,
		TotalPages:   pages,
		TotalItems:   total,
		ItemsPerPage: limit,
		HasNextPage:  page < pages,
		HasPrevPage:  page > 1,
	}
}

// AuditPage is one page of audit events, newest first.
type AuditPage struct {
	Records    []AuditEvent `json:"data"`
	Pagination Pagination   `json:"pagination"`
}

// SeverityCount is one row of the per-severity breakdown.
type SeverityCount struct {
	Type  Severity `json:"_id"`
	Count int      `json:"count"`
}

// AuditStats summarises the audit trail.
type AuditStats struct {
	TotalLogs     int             `json:"totalLogs"`
	RecentLogs    int             `json:"recentLogs"`
	TypeBreakdown []SeverityCount `json:"typeBreakdown"`
}

// AuditAnnotationForm is a manual entry submitted by a super admin.
type AuditAnnotationForm struct {
	Type    string         `json:"type"`
	Event   string         `json:"event"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

// Validate validates the annotation form
func (f *AuditAnnotationForm) Validate() []string {
	var errors []string

	if _, err := ParseSeverity(f.Type); err != nil {
		errors = append(errors, "Type must be one of info, warn, error, debug, critical")
	}
	if strings.TrimSpace(f.Event) == "" {
		errors = append(errors, "Event is required")
	}
	if len(f.Event) > 200 {
		errors = append(errors, "Event must be less than 200 characters")
	}
	if strings.TrimSpace(f.Message) == "" {
		errors = append(errors, "Message is required")
	}

	return errors
}
