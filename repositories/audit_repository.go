package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/blogem/welfare-admin/models"
)

// AuditRepository is the append-only audit trail. There is deliberately no update or delete.
type AuditRepository interface {
	// Append assigns the event's ID and timestamp and persists it.
	Append(ctx context.Context, event *models.AuditEvent) error
	// Query returns one page of matching events, newest first. page and limit must already be clamped.
	Query(ctx context.Context, filter models.AuditFilter, page, limit int) (*models.AuditPage, error)
	// Stats summarises the trail; recent counts events at or after since.
	Stats(ctx context.Context, since time.Time) (*models.AuditStats, error)
}

type sqliteAuditRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) AuditRepository {
	return newAuditRepository(db, time.Now)
}

func newAuditRepository(db *sql.DB, now func() time.Time) *sqliteAuditRepository {
	return &sqliteAuditRepository{db: db, now: now}
}

// Append inserts a new audit event
func (r *sqliteAuditRepository) Append(ctx context.Context, event *models.AuditEvent) error {
	// The write time is clamped to the newest stored event so timestamps never go
	// backwards in the store, across restarts and repository instances alike.
	query := `
		INSERT INTO audit_log (severity, event, actor, timestamp_ns, message, context)
		SELECT ?, ?, ?, MAX(?, COALESCE((SELECT MAX(timestamp_ns) FROM audit_log), 0)), ?, ?
		RETURNING id, timestamp_ns
	`

	data := event.Context
	if data == nil {
		data = map[string]any{}
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode audit context: %w", err)
	}

	var actor any
	if event.Actor != nil {
		actor = *event.Actor
	}

	var id, ts int64
	err = r.db.QueryRowContext(ctx, query,
		string(event.Severity),
		event.Event,
		actor,
		r.now().UnixNano(),
		event.Message,
		string(encoded),
	).Scan(&id, &ts)
	if err != nil {
		return fmt.Errorf("failed to insert audit event: %w", err)
	}

	event.ID = id
	event.Timestamp = time.Unix(0, ts).UTC()
	event.Context = data
	return nil
}

// buildAuditWhere turns a filter into a WHERE clause and its arguments
func buildAuditWhere(filter models.AuditFilter) (string, []any) {
	var clauses []string
	var args []any

	if filter.Severity != "" {
		clauses = append(clauses, "severity = ?")
		args = append(args, string(filter.Severity))
	}
	if filter.Event != "" {
		// LIKE folds ASCII case only, so non-ASCII letters match exactly
		clauses = append(clauses, `event LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(filter.Event)+"%")
	}
	if filter.Actor != "" {
		clauses = append(clauses, "actor = ?")
		args = append(args, filter.Actor)
	}
	if filter.From != nil {
		clauses = append(clauses, "timestamp_ns >= ?")
		args = append(args, filter.From.UnixNano())
	}
	if filter.To != nil {
		clauses = append(clauses, "timestamp_ns <= ?")
		args = append(args, filter.To.UnixNano())
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// Query retrieves a filtered page of audit events, newest first
func (r *sqliteAuditRepository) Query(ctx context.Context, filter models.AuditFilter, page, limit int) (*models.AuditPage, error) {
	where, args := buildAuditWhere(filter)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM audit_log `+where, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count audit events: %w", err)
	}

	query := `
		SELECT id, severity, event, actor, timestamp_ns, message, context
		FROM audit_log ` + where + `
		ORDER BY timestamp_ns DESC, id DESC
		LIMIT ? OFFSET ?
	`
	rows, err := r.db.QueryContext(ctx, query, append(args, limit, (page-1)*limit)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit events: %w", err)
	}
	defer rows.Close()

	records := []models.AuditEvent{}
	for rows.Next() {
		var event models.AuditEvent
		var severity, encoded string
		var actor sql.NullString
		var ts int64

		if err := rows.Scan(&event.ID, &severity, &event.Event, &actor, &ts, &event.Message, &encoded); err != nil {
			return nil, fmt.Errorf("failed to scan audit event: %w", err)
		}

		event.Severity = models.Severity(severity)
		event.Timestamp = time.Unix(0, ts).UTC()
		if actor.Valid {
			event.Actor = &actor.String
		}
		if err := json.Unmarshal([]byte(encoded), &event.Context); err != nil {
			return nil, fmt.Errorf("failed to decode audit context of event %d: %v: %w", event.ID, err, ErrCorrupt)
		}

		records = append(records, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit events: %w", err)
	}

	return &models.AuditPage{
		Records:    records,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// Stats counts events overall, since a point in time, and per severity
func (r *sqliteAuditRepository) Stats(ctx context.Context, since time.Time) (*models.AuditStats, error) {
	stats := &models.AuditStats{TypeBreakdown: []models.SeverityCount{}}

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM audit_log`).Scan(&stats.TotalLogs); err != nil {
		return nil, fmt.Errorf("failed to count audit events: %w", err)
	}
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM audit_log WHERE timestamp_ns >= ?`, since.UnixNano(),
	).Scan(&stats.RecentLogs); err != nil {
		return nil, fmt.Errorf("failed to count recent audit events: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT severity, COUNT(*) AS n
		FROM audit_log
		GROUP BY severity
		ORDER BY n DESC, severity ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to group audit events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var row models.SeverityCount
		var severity string
		if err := rows.Scan(&severity, &row.Count); err != nil {
			return nil, fmt.Errorf("failed to scan severity count: %w", err)
		}
		row.Type = models.Severity(severity)
		stats.TypeBreakdown = append(stats.TypeBreakdown, row)
	}

	return stats, rows.Err()
}
