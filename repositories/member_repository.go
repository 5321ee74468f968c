package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blogem/welfare-admin/models"
)

// MemberRepository is the credential store: member identity, role and password hash
type MemberRepository interface {
	// GetPrincipal loads only the identity fields needed to authorize a request.
	GetPrincipal(ctx context.Context, id string) (*models.Principal, error)
	GetByID(ctx context.Context, id string) (*models.Member, error)
	// GetCredentials looks a member up by EPF number or email and includes the password hash.
	GetCredentials(ctx context.Context, login string) (*models.Member, error)
	GetByEmail(ctx context.Context, email string) (*models.Member, error)
	GetAll(ctx context.Context) ([]models.Member, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, member *models.Member) error
	Update(ctx context.Context, member *models.Member) error
	Delete(ctx context.Context, id string) error
}

// memberRepository implements MemberRepository interface
type memberRepository struct {
	db *sql.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *sql.DB) MemberRepository {
	return &memberRepository{db: db}
}

// profileColumns never includes password_hash
const profileColumns = `id, name, email, epf, welfare_no, role, payroll, division, branch, unit,
	contact_no, date_of_joined, date_of_birth, member_fee, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner, extra ...any) (*models.Member, error) {
	var member models.Member
	var email sql.NullString
	var role, fee string

	dest := []any{
		&member.ID,
		&member.Name,
		&email,
		&member.EPF,
		&member.WelfareNo,
		&role,
		&member.Payroll,
		&member.Division,
		&member.Branch,
		&member.Unit,
		&member.ContactNumber,
		&member.DateOfJoined,
		&member.DateOfBirth,
		&fee,
		&member.CreatedAt,
		&member.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	if email.Valid {
		member.Email = email.String
	}
	// An unrecognised stored role becomes RoleUnknown, which authorizes nothing.
	member.Role, _ = models.ParseRole(role)

	amount, err := decimal.NewFromString(fee)
	if err != nil {
		return nil, fmt.Errorf("invalid member fee %q: %w", fee, ErrCorrupt)
	}
	member.MemberFee = amount

	return &member, nil
}

// GetPrincipal retrieves the identity projection of a member
func (r *memberRepository) GetPrincipal(ctx context.Context, id string) (*models.Principal, error) {
	var principal models.Principal
	var role string

	err := r.db.QueryRowContext(ctx, `SELECT id, name, role FROM members WHERE id = ?`, id).
		Scan(&principal.ID, &principal.Name, &role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("member %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get principal: %w", err)
	}

	principal.Role, _ = models.ParseRole(role)
	return &principal, nil
}

// GetByID retrieves a member profile by ID
func (r *memberRepository) GetByID(ctx context.Context, id string) (*models.Member, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM members WHERE id = ?`, id)

	member, err := scanMember(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("member %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return member, nil
}

// GetCredentials retrieves a member with its password hash by EPF number or email
func (r *memberRepository) GetCredentials(ctx context.Context, login string) (*models.Member, error) {
	query := `SELECT ` + profileColumns + `, password_hash FROM members WHERE epf = ? OR email = ? LIMIT 1`

	var hash string
	row := r.db.QueryRowContext(ctx, query, login, strings.ToLower(login))
	member, err := scanMember(row, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("member %s: %w", login, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get credentials: %w", err)
	}

	member.PasswordHash = hash
	return member, nil
}

// GetByEmail retrieves a member profile by email address
func (r *memberRepository) GetByEmail(ctx context.Context, email string) (*models.Member, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM members WHERE email = ?`, strings.ToLower(email))

	member, err := scanMember(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("member %s: %w", email, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member by email: %w", err)
	}
	return member, nil
}

// GetAll retrieves all members
func (r *memberRepository) GetAll(ctx context.Context) ([]models.Member, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+profileColumns+` FROM members ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	members := []models.Member{}
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, *member)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating members: %w", err)
	}

	return members, nil
}

// Exists reports whether a member with the given ID exists
func (r *memberRepository) Exists(ctx context.Context, id string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM members WHERE id = ?`, id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check member: %w", err)
	}
	return n > 0, nil
}

// Create creates a new member
func (r *memberRepository) Create(ctx context.Context, member *models.Member) error {
	query := `
		INSERT INTO members (id, name, email, epf, welfare_no, role, payroll, division, branch, unit,
			contact_no, date_of_joined, date_of_birth, member_fee, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	member.CreatedAt = now
	member.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, query,
		member.ID,
		member.Name,
		nullableEmail(member.Email),
		member.EPF,
		member.WelfareNo,
		string(member.Role),
		member.Payroll,
		member.Division,
		member.Branch,
		member.Unit,
		member.ContactNumber,
		member.DateOfJoined,
		member.DateOfBirth,
		member.MemberFee.String(),
		member.PasswordHash,
		member.CreatedAt,
		member.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("member with EPF %s or email already exists: %w", member.EPF, ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}

	return nil
}

// Update updates the profile fields of an existing member. Role and password are not touched.
func (r *memberRepository) Update(ctx context.Context, member *models.Member) error {
	query := `
		UPDATE members
		SET name = ?, email = ?, epf = ?, welfare_no = ?, payroll = ?, division = ?, branch = ?,
		    unit = ?, contact_no = ?, date_of_joined = ?, date_of_birth = ?, member_fee = ?, updated_at = ?
		WHERE id = ?
	`

	member.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query,
		member.Name,
		nullableEmail(member.Email),
		member.EPF,
		member.WelfareNo,
		member.Payroll,
		member.Division,
		member.Branch,
		member.Unit,
		member.ContactNumber,
		member.DateOfJoined,
		member.DateOfBirth,
		member.MemberFee.String(),
		member.UpdatedAt,
		member.ID,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("member with EPF %s or email already exists: %w", member.EPF, ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}

	return expectOneRow(result, "member", member.ID)
}

// Delete deletes a member by ID
func (r *memberRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return expectOneRow(result, "member", id)
}

func nullableEmail(email string) any {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil
	}
	return email
}

// expectOneRow turns a zero-row update or delete into ErrNotFound
func expectOneRow(result sql.Result, entity, id string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
	}
	return nil
}
