package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/blogem/welfare-admin/apperrors"
	"github.com/blogem/welfare-admin/metrics"
	"github.com/blogem/welfare-admin/models"
	"github.com/blogem/welfare-admin/repositories"
)

// RecentWindow is the span counted as "recent" by audit statistics.
const RecentWindow = 24 * time.Hour

// DefaultAuditWriteTimeout bounds a single append when none is configured.
const DefaultAuditWriteTimeout = 2 * time.Second

// AuditEntry is an audit event before the store assigns its ID and timestamp.
// An empty Actor records an event with no principal.
type AuditEntry struct {
	Severity models.Severity
	Event    string
	Actor    string
	Message  string
	Data     map[string]any
}

// AuditService interface defines the audit trail operations
type AuditService interface {
	// Record appends entry on a best-effort basis. A failed append goes to the
	// fallback logger and Record returns nil instead of an error.
	Record(ctx context.Context, entry AuditEntry) *models.AuditEvent
	// Append appends entry and reports failures as AuditWriteError.
	Append(ctx context.Context, entry AuditEntry) (*models.AuditEvent, error)
	Query(ctx context.Context, filter models.AuditFilter, page, limit int) (*models.AuditPage, error)
	Stats(ctx context.Context) (*models.AuditStats, error)
}

// AuditOptions tunes the audit service
type AuditOptions struct {
	WriteTimeout time.Duration
	Fallback     *slog.Logger
	Now          func() time.Time
}

// auditService implements AuditService interface
type auditService struct {
	repo     repositories.AuditRepository
	timeout  time.Duration
	fallback *slog.Logger
	now      func() time.Time
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditRepository, opts AuditOptions) AuditService {
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = DefaultAuditWriteTimeout
	}
	if opts.Fallback == nil {
		opts.Fallback = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &auditService{
		repo:     repo,
		timeout:  opts.WriteTimeout,
		fallback: opts.Fallback,
		now:      opts.Now,
	}
}

// Append validates and persists an audit entry
func (s *auditService) Append(ctx context.Context, entry AuditEntry) (*models.AuditEvent, error) {
	severity, err := models.ParseSeverity(string(entry.Severity))
	if err != nil {
		return nil, apperrors.NewInvalidRequest(err.Error())
	}
	if strings.TrimSpace(entry.Event) == "" {
		return nil, apperrors.NewInvalidRequest("audit event name is required")
	}

	event := &models.AuditEvent{
		Severity: severity,
		Event:    entry.Event,
		Message:  entry.Message,
		Context:  entry.Data,
	}
	if entry.Actor != "" {
		actor := entry.Actor
		event.Actor = &actor
	}

	// An append that has started finishes even if the client goes away.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	if err := s.repo.Append(writeCtx, event); err != nil {
		return nil, apperrors.NewAuditWrite(err)
	}

	metrics.AuditWrites.WithLabelValues(string(severity)).Inc()
	return event, nil
}

// Record appends an entry and diverts failures to the fallback channel
func (s *auditService) Record(ctx context.Context, entry AuditEntry) *models.AuditEvent {
	event, err := s.Append(ctx, entry)
	if err == nil {
		return event
	}

	metrics.AuditWriteFailures.Inc()
	s.fallback.LogAttrs(ctx, slog.LevelError, "audit event not persisted",
		slog.String("severity", string(entry.Severity)),
		slog.String("event", entry.Event),
		slog.String("actor", entry.Actor),
		slog.String("message", entry.Message),
		slog.Any("data", entry.Data),
		slog.String("error", err.Error()),
	)
	return nil
}

// Query returns one page of the audit trail after clamping the page bounds
func (s *auditService) Query(ctx context.Context, filter models.AuditFilter, page, limit int) (*models.AuditPage, error) {
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, apperrors.NewInvalidRequest("from must not be after to")
	}

	page, limit = models.ClampPage(page, limit)
	result, err := s.repo.Query(ctx, filter, page, limit)
	if err != nil {
		return nil, storeError(err, "audit log")
	}
	return result, nil
}

// Stats summarises the audit trail over the recent window
func (s *auditService) Stats(ctx context.Context) (*models.AuditStats, error) {
	stats, err := s.repo.Stats(ctx, s.now().Add(-RecentWindow))
	if err != nil {
		return nil, storeError(err, "audit log")
	}
	return stats, nil
}
