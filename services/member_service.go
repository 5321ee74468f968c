package services

import (
	"context"
	"strings"

	"github.com/blogem/welfare-admin/models"
	"github.com/blogem/welfare-admin/repositories"
)

// MemberService interface defines member profile management
type MemberService interface {
	GetProfile(ctx context.Context, id string) (*models.Member, error)
	GetAll(ctx context.Context) ([]models.Member, error)
	Update(ctx context.Context, id string, form *models.MemberForm) (*models.Member, error)
	Delete(ctx context.Context, id string) error
}

// memberService implements MemberService interface
type memberService struct {
	members repositories.MemberRepository
}

// NewMemberService creates a new member service
func NewMemberService(members repositories.MemberRepository) MemberService {
	return &memberService{members: members}
}

// GetProfile retrieves a member profile by ID
func (s *memberService) GetProfile(ctx context.Context, id string) (*models.Member, error) {
	member, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "member")
	}
	return member, nil
}

// GetAll retrieves all members
func (s *memberService) GetAll(ctx context.Context) ([]models.Member, error) {
	members, err := s.members.GetAll(ctx)
	if err != nil {
		return nil, storeError(err, "members")
	}
	return members, nil
}

// Update replaces the profile fields of a member. Role and password are left unchanged.
func (s *memberService) Update(ctx context.Context, id string, form *models.MemberForm) (*models.Member, error) {
	if errs := form.Validate(false); len(errs) > 0 {
		return nil, validationError(errs)
	}

	existing, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "member")
	}

	member := memberFromForm(form)
	member.ID = existing.ID
	member.Role = existing.Role
	member.CreatedAt = existing.CreatedAt
	if strings.TrimSpace(form.Email) == "" {
		member.Email = existing.Email
	}

	if err := s.members.Update(ctx, member); err != nil {
		return nil, storeError(err, "member")
	}
	return member, nil
}

// Delete deletes a member by ID
func (s *memberService) Delete(ctx context.Context, id string) error {
	return storeError(s.members.Delete(ctx, id), "member")
}
