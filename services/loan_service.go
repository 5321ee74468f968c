package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/blogem/welfare-admin/apperrors"
	"github.com/blogem/welfare-admin/models"
	"github.com/blogem/welfare-admin/repositories"
)

// maxLoanNumberAttempts bounds retries when a generated loan number is taken concurrently
const maxLoanNumberAttempts = 5

// LoanService interface defines loan application business logic
type LoanService interface {
	GetAll(ctx context.Context) ([]models.Loan, error)
	GetByID(ctx context.Context, id string) (*models.Loan, error)
	GetByMember(ctx context.Context, memberID string) ([]models.Loan, error)
	GetByStatus(ctx context.Context, status string) ([]models.Loan, error)
	Create(ctx context.Context, actor string, form *models.LoanForm) (*models.Loan, error)
	Update(ctx context.Context, actor, id string, form *models.LoanForm) (*models.Loan, error)
	UpdateStatus(ctx context.Context, actor, id string, form *models.LoanStatusForm) (*models.Loan, error)
	Delete(ctx context.Context, id string) error
	GenerateLoanNumber(ctx context.Context) (string, error)
}

// loanService implements LoanService interface
type loanService struct {
	loans   repositories.LoanRepository
	members repositories.MemberRepository
	now     func() time.Time
}

// NewLoanService creates a new loan service
func NewLoanService(loans repositories.LoanRepository, members repositories.MemberRepository) LoanService {
	return &loanService{
		loans:   loans,
		members: members,
		now:     time.Now,
	}
}

// GetAll retrieves all loan applications
func (s *loanService) GetAll(ctx context.Context) ([]models.Loan, error) {
	loans, err := s.loans.GetAll(ctx)
	if err != nil {
		return nil, storeError(err, "loans")
	}
	return loans, nil
}

// GetByID retrieves a loan application by ID
func (s *loanService) GetByID(ctx context.Context, id string) (*models.Loan, error) {
	loan, err := s.loans.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "loan")
	}
	return loan, nil
}

// GetByMember retrieves the loan applications of a member
func (s *loanService) GetByMember(ctx context.Context, memberID string) ([]models.Loan, error) {
	loans, err := s.loans.GetByMember(ctx, memberID)
	if err != nil {
		return nil, storeError(err, "loans")
	}
	return loans, nil
}

// GetByStatus retrieves the loan applications in a status
func (s *loanService) GetByStatus(ctx context.Context, status string) ([]models.Loan, error) {
	parsed, err := models.ParseLoanStatus(status)
	if err != nil {
		return nil, apperrors.NewInvalidRequest("status must be one of pending, approved, rejected")
	}

	loans, err := s.loans.GetByStatus(ctx, parsed)
	if err != nil {
		return nil, storeError(err, "loans")
	}
	return loans, nil
}

func (s *loanService) requireMember(ctx context.Context, memberID string) error {
	exists, err := s.members.Exists(ctx, memberID)
	if err != nil {
		return storeError(err, "member")
	}
	if !exists {
		return apperrors.NewNotFound("member not found")
	}
	return nil
}

func loanFromForm(form *models.LoanForm) *models.Loan {
	loan := &models.Loan{
		LoanNumber: strings.TrimSpace(form.LoanNumber),
		MemberID:   strings.TrimSpace(form.MemberID),
		Amount:     form.Amount,
		Reason:     strings.TrimSpace(form.Reason),
	}
	if form.RequiredDate != "" {
		// Validate has already rejected malformed dates
		if d, err := models.ParseDate(form.RequiredDate); err == nil {
			loan.RequiredDate = &d
		}
	}
	return loan
}

// Create records a new loan application, generating a loan number when none is given
func (s *loanService) Create(ctx context.Context, actor string, form *models.LoanForm) (*models.Loan, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, validationError(errs)
	}
	if err := s.requireMember(ctx, form.MemberID); err != nil {
		return nil, err
	}

	loan := loanFromForm(form)
	generated := loan.LoanNumber == ""

	for attempt := 0; ; attempt++ {
		if generated {
			number, err := s.nextLoanNumber(ctx, attempt)
			if err != nil {
				return nil, err
			}
			loan.LoanNumber = number
		}

		err := s.loans.Create(ctx, loan, actor)
		if err == nil {
			return loan, nil
		}
		if !generated || !errors.Is(err, repositories.ErrConflict) || attempt+1 >= maxLoanNumberAttempts {
			return nil, storeError(err, "loan")
		}
	}
}

// Update replaces the editable fields of a loan application
func (s *loanService) Update(ctx context.Context, actor, id string, form *models.LoanForm) (*models.Loan, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, validationError(errs)
	}

	existing, err := s.loans.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "loan")
	}
	if form.MemberID != existing.MemberID {
		if err := s.requireMember(ctx, form.MemberID); err != nil {
			return nil, err
		}
	}

	loan := loanFromForm(form)
	loan.ID = existing.ID
	loan.Status = existing.Status
	loan.CreatedAt = existing.CreatedAt
	loan.CreatedBy = existing.CreatedBy
	if loan.LoanNumber == "" {
		loan.LoanNumber = existing.LoanNumber
	}

	if err := s.loans.Update(ctx, loan, actor); err != nil {
		return nil, storeError(err, "loan")
	}
	return loan, nil
}

// UpdateStatus approves, rejects or reopens a loan application
func (s *loanService) UpdateStatus(ctx context.Context, actor, id string, form *models.LoanStatusForm) (*models.Loan, error) {
	status, err := models.ParseLoanStatus(form.Status)
	if err != nil {
		return nil, apperrors.NewInvalidRequest("loanStatus must be one of pending, approved, rejected")
	}

	if err := s.loans.UpdateStatus(ctx, id, status, actor); err != nil {
		return nil, storeError(err, "loan")
	}

	loan, err := s.loans.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NewIntegrity("loan vanished after status update", err)
	}
	if err != nil {
		return nil, storeError(err, "loan")
	}
	return loan, nil
}

// Delete deletes a loan application by ID
func (s *loanService) Delete(ctx context.Context, id string) error {
	return storeError(s.loans.Delete(ctx, id), "loan")
}

// GenerateLoanNumber proposes the next free loan number
func (s *loanService) GenerateLoanNumber(ctx context.Context) (string, error) {
	return s.nextLoanNumber(ctx, 0)
}

// nextLoanNumber formats LN-<year>-<sequence> one past the highest sequence issued this year.
// Deleted loans never free their numbers.
func (s *loanService) nextLoanNumber(ctx context.Context, offset int) (string, error) {
	prefix := fmt.Sprintf("LN-%d-", s.now().Year())
	last, err := s.loans.LastSequence(ctx, prefix)
	if err != nil {
		return "", storeError(err, "loans")
	}
	return fmt.Sprintf("%s%04d", prefix, last+1+offset), nil
}
