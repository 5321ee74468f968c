package controllers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/blogem/welfare-admin/apperrors"
	"github.com/blogem/welfare-admin/middleware"
	"github.com/blogem/welfare-admin/models"
	"github.com/blogem/welfare-admin/services"
)

// AnnotationEvent is recorded for every manual entry added through POST /api/logs
const AnnotationEvent = "audit.annotate"

// LogController serves the audit trail
type LogController struct {
	services *services.Services
}

// NewLogController creates a new audit trail controller
func NewLogController(services *services.Services) *LogController {
	return &LogController{services: services}
}

// logPage is the response body of GET /api/logs
type logPage struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message"`
	TotalItems  int                 `json:"totalItems"`
	Pages       int                 `json:"pages"`
	CurrentPage int                 `json:"currentPage"`
	Data        []models.AuditEvent `json:"data"`
	Pagination  models.Pagination   `json:"pagination"`
}

// logStats is the response body of GET /api/logs/stats
type logStats struct {
	Success bool               `json:"success"`
	Data    *models.AuditStats `json:"data"`
}

// intParam reads an integer query parameter, falling back to def when absent or malformed
func intParam(q url.Values, key string, def int) int {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// parseAuditFilter reads type, event, user, from and to from the query string.
// A date-only "to" covers the whole of that day.
func parseAuditFilter(q url.Values) (models.AuditFilter, error) {
	var filter models.AuditFilter

	if v := q.Get("type"); v != "" {
		severity, err := models.ParseSeverity(v)
		if err != nil {
			return filter, apperrors.NewInvalidRequest("type must be one of info, warn, error, debug, critical")
		}
		filter.Severity = severity
	}
	filter.Event = strings.TrimSpace(q.Get("event"))
	filter.Actor = strings.TrimSpace(q.Get("user"))

	if v := q.Get("from"); v != "" {
		from, _, err := models.ParseTimestamp(v)
		if err != nil {
			return filter, apperrors.NewInvalidRequest("from must be an ISO 8601 date or timestamp")
		}
		filter.From = &from
	}
	if v := q.Get("to"); v != "" {
		to, dateOnly, err := models.ParseTimestamp(v)
		if err != nil {
			return filter, apperrors.NewInvalidRequest("to must be an ISO 8601 date or timestamp")
		}
		if dateOnly {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
		filter.To = &to
	}

	return filter, nil
}

// List handles GET /api/logs
func (c *LogController) List(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
	q := r.URL.Query()

	filter, err := parseAuditFilter(q)
	if err != nil {
		return nil, err
	}

	page, err := c.services.Audit.Query(r.Context(), filter,
		intParam(q, "page", 1),
		intParam(q, "limit", models.DefaultAuditPageSize),
	)
	if err != nil {
		return nil, err
	}

	return &middleware.Result{Body: logPage{
		Success:     true,
		Message:     "Logs retrieved successfully",
		TotalItems:  page.Pagination.TotalItems,
		Pages:       page.Pagination.TotalPages,
		CurrentPage: page.Pagination.CurrentPage,
		Data:        page.Records,
		Pagination:  page.Pagination,
	}}, nil
}

// Stats handles GET /api/logs/stats
func (c *LogController) Stats(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
	stats, err := c.services.Audit.Stats(r.Context())
	if err != nil {
		return nil, err
	}
	return &middleware.Result{Body: logStats{Success: true, Data: stats}}, nil
}

// Annotate handles POST /api/logs. The append is the operation itself, so a
// failed write is reported to the caller instead of being diverted.
func (c *LogController) Annotate(w http.ResponseWriter, r *http.Request) {
	var form models.AuditAnnotationForm
	if err := decodeJSON(r, &form); err != nil {
		middleware.WriteError(w, err)
		return
	}
	if errs := form.Validate(); len(errs) > 0 {
		middleware.WriteError(w, apperrors.NewInvalidRequest("validation failed: " + strings.Join(errs, ", ")))
		return
	}

	severity, _ := models.ParseSeverity(form.Type)
	data := map[string]any{"source": AnnotationEvent}
	for k, v := range form.Data {
		data[k] = v
	}

	event, err := c.services.Audit.Append(r.Context(), services.AuditEntry{
		Severity: severity,
		Event:    strings.TrimSpace(form.Event),
		Actor:    actorID(r),
		Message:  form.Message,
		Data:     data,
	})
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Log created successfully",
		"data":    event,
	})
}
