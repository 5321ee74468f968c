package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blogem/welfare-admin/models"
)

// LoanRepository interface defines loan application database operations
type LoanRepository interface {
	GetAll(ctx context.Context) ([]models.Loan, error)
	GetByID(ctx context.Context, id string) (*models.Loan, error)
	GetByMember(ctx context.Context, memberID string) ([]models.Loan, error)
	GetByStatus(ctx context.Context, status models.LoanStatus) ([]models.Loan, error)
	Count(ctx context.Context) (int, error)
	LastSequence(ctx context.Context, prefix string) (int, error)
	Create(ctx context.Context, loan *models.Loan, actor string) error
	Update(ctx context.Context, loan *models.Loan, actor string) error
	UpdateStatus(ctx context.Context, id string, status models.LoanStatus, actor string) error
	Delete(ctx context.Context, id string) error
}

// loanRepository implements LoanRepository interface
type loanRepository struct {
	db *sql.DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *sql.DB) LoanRepository {
	return &loanRepository{db: db}
}

const loanColumns = `id, loan_number, member_id, amount, reason, required_date, status,
	created_at, created_by, modified_by, modified_at`

func scanLoan(row rowScanner) (*models.Loan, error) {
	var loan models.Loan
	var amount, status string
	var requiredDate, modifiedAt sql.NullTime
	var modifiedBy sql.NullString

	err := row.Scan(
		&loan.ID,
		&loan.LoanNumber,
		&loan.MemberID,
		&amount,
		&loan.Reason,
		&requiredDate,
		&status,
		&loan.CreatedAt,
		&loan.CreatedBy,
		&modifiedBy,
		&modifiedAt,
	)
	if err != nil {
		return nil, err
	}

	if loan.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("invalid loan amount %q: %w", amount, ErrCorrupt)
	}
	loan.Status = models.LoanStatus(status)

	// Convert NULL values to empty string/nil
	if requiredDate.Valid {
		loan.RequiredDate = &requiredDate.Time
	}
	if modifiedBy.Valid {
		loan.ModifiedBy = modifiedBy.String
	}
	if modifiedAt.Valid {
		loan.ModifiedAt = &modifiedAt.Time
	}

	return &loan, nil
}

func (r *loanRepository) query(ctx context.Context, where string, args ...any) ([]models.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans ` + where + ` ORDER BY created_at DESC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query loans: %w", err)
	}
	defer rows.Close()

	loans := []models.Loan{}
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, *loan)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating loans: %w", err)
	}

	return loans, nil
}

// GetAll retrieves all loan applications
func (r *loanRepository) GetAll(ctx context.Context) ([]models.Loan, error) {
	return r.query(ctx, "")
}

// GetByMember retrieves the loan applications of one member
func (r *loanRepository) GetByMember(ctx context.Context, memberID string) ([]models.Loan, error) {
	return r.query(ctx, "WHERE member_id = ?", memberID)
}

// GetByStatus retrieves loan applications in the given status
func (r *loanRepository) GetByStatus(ctx context.Context, status models.LoanStatus) ([]models.Loan, error) {
	return r.query(ctx, "WHERE status = ?", string(status))
}

// GetByID retrieves a loan application by ID
func (r *loanRepository) GetByID(ctx context.Context, id string) (*models.Loan, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+loanColumns+` FROM loans WHERE id = ?`, id)

	loan, err := scanLoan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("loan %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get loan: %w", err)
	}
	return loan, nil
}

// Count returns the total number of loan applications
func (r *loanRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM loans`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count loans: %w", err)
	}
	return count, nil
}

// LastSequence returns the highest numeric suffix among loan numbers starting with prefix, or 0
func (r *loanRepository) LastSequence(ctx context.Context, prefix string) (int, error) {
	query := `
		SELECT COALESCE(MAX(CAST(SUBSTR(loan_number, ?) AS INTEGER)), 0)
		FROM loans
		WHERE SUBSTR(loan_number, 1, ?) = ?
		  AND SUBSTR(loan_number, ?) GLOB '[0-9]*'
		  AND SUBSTR(loan_number, ?) NOT GLOB '*[^0-9]*'
	`
	start := len(prefix) + 1

	var seq int
	err := r.db.QueryRowContext(ctx, query, start, len(prefix), prefix, start, start).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("failed to read loan number sequence: %w", err)
	}
	return seq, nil
}

// Create creates a new loan application
func (r *loanRepository) Create(ctx context.Context, loan *models.Loan, actor string) error {
	query := `
		INSERT INTO loans (id, loan_number, member_id, amount, reason, required_date, status, created_at, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	if loan.ID == "" {
		loan.ID = uuid.NewString()
	}
	if loan.Status == "" {
		loan.Status = models.LoanPending
	}
	loan.CreatedAt = time.Now().UTC()
	loan.CreatedBy = actor

	_, err := r.db.ExecContext(ctx, query,
		loan.ID,
		loan.LoanNumber,
		loan.MemberID,
		loan.Amount.String(),
		loan.Reason,
		loan.RequiredDate,
		string(loan.Status),
		loan.CreatedAt,
		loan.CreatedBy,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("loan number %s already exists: %w", loan.LoanNumber, ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to create loan: %w", err)
	}

	return nil
}

// Update updates the editable fields of a loan application
func (r *loanRepository) Update(ctx context.Context, loan *models.Loan, actor string) error {
	query := `
		UPDATE loans
		SET loan_number = ?, member_id = ?, amount = ?, reason = ?, required_date = ?,
		    modified_by = ?, modified_at = ?
		WHERE id = ?
	`

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query,
		loan.LoanNumber,
		loan.MemberID,
		loan.Amount.String(),
		loan.Reason,
		loan.RequiredDate,
		actor,
		now,
		loan.ID,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("loan number %s already exists: %w", loan.LoanNumber, ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to update loan: %w", err)
	}
	if err := expectOneRow(result, "loan", loan.ID); err != nil {
		return err
	}

	loan.ModifiedBy = actor
	loan.ModifiedAt = &now
	return nil
}

// UpdateStatus changes the approval status of a loan application
func (r *loanRepository) UpdateStatus(ctx context.Context, id string, status models.LoanStatus, actor string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE loans SET status = ?, modified_by = ?, modified_at = ? WHERE id = ?`,
		string(status), actor, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update loan status: %w", err)
	}
	return expectOneRow(result, "loan", id)
}

// Delete deletes a loan application by ID
func (r *loanRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM loans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete loan: %w", err)
	}
	return expectOneRow(result, "loan", id)
}
