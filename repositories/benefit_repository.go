package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blogem/welfare-admin/models"
)

// BenefitRepository stores benefit claims of every kind in one table, scoped by kind
type BenefitRepository interface {
	GetAll(ctx context.Context, kind models.BenefitKind) ([]models.Benefit, error)
	GetByID(ctx context.Context, kind models.BenefitKind, id string) (*models.Benefit, error)
	GetByMember(ctx context.Context, kind models.BenefitKind, memberID string) ([]models.Benefit, error)
	Create(ctx context.Context, benefit *models.Benefit, actor string) error
	Update(ctx context.Context, benefit *models.Benefit, actor string) error
	Delete(ctx context.Context, kind models.BenefitKind, id string) error
}

// benefitRepository implements BenefitRepository interface
type benefitRepository struct {
	db *sql.DB
}

// NewBenefitRepository creates a new benefit repository
func NewBenefitRepository(db *sql.DB) BenefitRepository {
	return &benefitRepository{db: db}
}

const benefitColumns = `id, kind, member_id, amount, date, reason, details,
	created_at, created_by, modified_by, modified_at`

func scanBenefit(row rowScanner) (*models.Benefit, error) {
	var benefit models.Benefit
	var kind, amount, details string
	var modifiedBy sql.NullString
	var modifiedAt sql.NullTime

	err := row.Scan(
		&benefit.ID,
		&kind,
		&benefit.MemberID,
		&amount,
		&benefit.Date,
		&benefit.Reason,
		&details,
		&benefit.CreatedAt,
		&benefit.CreatedBy,
		&modifiedBy,
		&modifiedAt,
	)
	if err != nil {
		return nil, err
	}

	benefit.Kind = models.BenefitKind(kind)
	if benefit.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("invalid benefit amount %q: %w", amount, ErrCorrupt)
	}
	if err := json.Unmarshal([]byte(details), &benefit.Details); err != nil {
		return nil, fmt.Errorf("invalid benefit details: %v: %w", err, ErrCorrupt)
	}
	if modifiedBy.Valid {
		benefit.ModifiedBy = modifiedBy.String
	}
	if modifiedAt.Valid {
		benefit.ModifiedAt = &modifiedAt.Time
	}

	return &benefit, nil
}

func (r *benefitRepository) query(ctx context.Context, where string, args ...any) ([]models.Benefit, error) {
	query := `SELECT ` + benefitColumns + ` FROM benefits ` + where + ` ORDER BY date DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query benefits: %w", err)
	}
	defer rows.Close()

	benefits := []models.Benefit{}
	for rows.Next() {
		benefit, err := scanBenefit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan benefit: %w", err)
		}
		benefits = append(benefits, *benefit)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating benefits: %w", err)
	}

	return benefits, nil
}

// GetAll retrieves every claim of one kind
func (r *benefitRepository) GetAll(ctx context.Context, kind models.BenefitKind) ([]models.Benefit, error) {
	return r.query(ctx, "WHERE kind = ?", string(kind))
}

// GetByMember retrieves the claims of one kind made for a member
func (r *benefitRepository) GetByMember(ctx context.Context, kind models.BenefitKind, memberID string) ([]models.Benefit, error) {
	return r.query(ctx, "WHERE kind = ? AND member_id = ?", string(kind), memberID)
}

// GetByID retrieves a claim by kind and ID
func (r *benefitRepository) GetByID(ctx context.Context, kind models.BenefitKind, id string) (*models.Benefit, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+benefitColumns+` FROM benefits WHERE kind = ? AND id = ?`, string(kind), id)

	benefit, err := scanBenefit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get benefit: %w", err)
	}
	return benefit, nil
}

// Create creates a new claim
func (r *benefitRepository) Create(ctx context.Context, benefit *models.Benefit, actor string) error {
	query := `
		INSERT INTO benefits (id, kind, member_id, amount, date, reason, details, created_at, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	details, err := encodeDetails(benefit.Details)
	if err != nil {
		return err
	}
	if benefit.ID == "" {
		benefit.ID = uuid.NewString()
	}
	benefit.CreatedAt = time.Now().UTC()
	benefit.CreatedBy = actor

	_, err = r.db.ExecContext(ctx, query,
		benefit.ID,
		string(benefit.Kind),
		benefit.MemberID,
		benefit.Amount.String(),
		benefit.Date,
		benefit.Reason,
		details,
		benefit.CreatedAt,
		benefit.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to create benefit: %w", err)
	}

	return nil
}

// Update updates an existing claim of the same kind
func (r *benefitRepository) Update(ctx context.Context, benefit *models.Benefit, actor string) error {
	query := `
		UPDATE benefits
		SET member_id = ?, amount = ?, date = ?, reason = ?, details = ?, modified_by = ?, modified_at = ?
		WHERE kind = ? AND id = ?
	`

	details, err := encodeDetails(benefit.Details)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query,
		benefit.MemberID,
		benefit.Amount.String(),
		benefit.Date,
		benefit.Reason,
		details,
		actor,
		now,
		string(benefit.Kind),
		benefit.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update benefit: %w", err)
	}
	if err := expectOneRow(result, string(benefit.Kind), benefit.ID); err != nil {
		return err
	}

	benefit.ModifiedBy = actor
	benefit.ModifiedAt = &now
	return nil
}

// Delete deletes a claim by kind and ID
func (r *benefitRepository) Delete(ctx context.Context, kind models.BenefitKind, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM benefits WHERE kind = ? AND id = ?`, string(kind), id)
	if err != nil {
		return fmt.Errorf("failed to delete benefit: %w", err)
	}
	return expectOneRow(result, string(kind), id)
}

func encodeDetails(details map[string]string) (string, error) {
	if len(details) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(details)
	if err != nil {
		return "", fmt.Errorf("failed to encode benefit details: %w", err)
	}
	return string(b), nil
}
