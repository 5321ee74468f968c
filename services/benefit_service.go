package services

import (
	"context"
	"strings"

	"github.com/blogem/welfare-admin/apperrors"
	"github.com/blogem/welfare-admin/models"
	"github.com/blogem/welfare-admin/repositories"
)

// BenefitService interface defines benefit claim business logic for every benefit kind
type BenefitService interface {
	GetAll(ctx context.Context, kind models.BenefitKind) ([]models.Benefit, error)
	GetByID(ctx context.Context, kind models.BenefitKind, id string) (*models.Benefit, error)
	GetByMember(ctx context.Context, kind models.BenefitKind, memberID string) ([]models.Benefit, error)
	Create(ctx context.Context, actor string, kind models.BenefitKind, form *models.BenefitForm) (*models.Benefit, error)
	Update(ctx context.Context, actor string, kind models.BenefitKind, id string, form *models.BenefitForm) (*models.Benefit, error)
	Delete(ctx context.Context, kind models.BenefitKind, id string) error
}

// benefitService implements BenefitService interface
type benefitService struct {
	benefits repositories.BenefitRepository
	members  repositories.MemberRepository
}

// NewBenefitService creates a new benefit service
func NewBenefitService(benefits repositories.BenefitRepository, members repositories.MemberRepository) BenefitService {
	return &benefitService{
		benefits: benefits,
		members:  members,
	}
}

func entityName(kind models.BenefitKind) string {
	return strings.ReplaceAll(string(kind), "_", " ")
}

// GetAll retrieves all claims of a kind
func (s *benefitService) GetAll(ctx context.Context, kind models.BenefitKind) ([]models.Benefit, error) {
	benefits, err := s.benefits.GetAll(ctx, kind)
	if err != nil {
		return nil, storeError(err, entityName(kind))
	}
	return benefits, nil
}

// GetByID retrieves a claim of a kind by ID
func (s *benefitService) GetByID(ctx context.Context, kind models.BenefitKind, id string) (*models.Benefit, error) {
	benefit, err := s.benefits.GetByID(ctx, kind, id)
	if err != nil {
		return nil, storeError(err, entityName(kind))
	}
	return benefit, nil
}

// GetByMember retrieves the claims of a kind made for a member
func (s *benefitService) GetByMember(ctx context.Context, kind models.BenefitKind, memberID string) ([]models.Benefit, error) {
	benefits, err := s.benefits.GetByMember(ctx, kind, memberID)
	if err != nil {
		return nil, storeError(err, entityName(kind))
	}
	return benefits, nil
}

func benefitFromForm(kind models.BenefitKind, form *models.BenefitForm) *models.Benefit {
	// Validate has already rejected a malformed date
	date, _ := models.ParseDate(form.Date)
	return &models.Benefit{
		Kind:     kind,
		MemberID: strings.TrimSpace(form.MemberID),
		Amount:   form.Amount,
		Date:     date,
		Reason:   strings.TrimSpace(form.Reason),
		Details:  form.Details,
	}
}

func (s *benefitService) requireMember(ctx context.Context, memberID string) error {
	exists, err := s.members.Exists(ctx, memberID)
	if err != nil {
		return storeError(err, "member")
	}
	if !exists {
		return apperrors.NewNotFound("member not found")
	}
	return nil
}

// Create records a new claim for an existing member
func (s *benefitService) Create(ctx context.Context, actor string, kind models.BenefitKind, form *models.BenefitForm) (*models.Benefit, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, validationError(errs)
	}
	if err := s.requireMember(ctx, form.MemberID); err != nil {
		return nil, err
	}

	benefit := benefitFromForm(kind, form)
	if err := s.benefits.Create(ctx, benefit, actor); err != nil {
		return nil, storeError(err, entityName(kind))
	}
	return benefit, nil
}

// Update replaces the fields of an existing claim
func (s *benefitService) Update(ctx context.Context, actor string, kind models.BenefitKind, id string, form *models.BenefitForm) (*models.Benefit, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, validationError(errs)
	}

	existing, err := s.benefits.GetByID(ctx, kind, id)
	if err != nil {
		return nil, storeError(err, entityName(kind))
	}
	if form.MemberID != existing.MemberID {
		if err := s.requireMember(ctx, form.MemberID); err != nil {
			return nil, err
		}
	}

	benefit := benefitFromForm(kind, form)
	benefit.ID = existing.ID
	benefit.CreatedAt = existing.CreatedAt
	benefit.CreatedBy = existing.CreatedBy

	if err := s.benefits.Update(ctx, benefit, actor); err != nil {
		return nil, storeError(err, entityName(kind))
	}
	return benefit, nil
}

// Delete deletes a claim by kind and ID
func (s *benefitService) Delete(ctx context.Context, kind models.BenefitKind, id string) error {
	return storeError(s.benefits.Delete(ctx, kind, id), entityName(kind))
}
