package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/blogem/welfare-admin/apperrors"
	"github.com/blogem/welfare-admin/metrics"
	"github.com/blogem/welfare-admin/models"
	"github.com/blogem/welfare-admin/repositories"
)

// TokenIssuer signs session tokens for a principal
type TokenIssuer interface {
	Issue(principalID string) (string, time.Time, error)
}

// Session is the outcome of a successful sign-in or registration
type Session struct {
	Member    *models.Member
	Token     string
	ExpiresAt time.Time
}

// AuthService interface defines sign-in and account registration
type AuthService interface {
	// Login authenticates any member by EPF number or email.
	Login(ctx context.Context, form *models.LoginForm) (*Session, error)
	// StaffLogin is Login restricted to members holding a staff role.
	StaffLogin(ctx context.Context, form *models.LoginForm) (*Session, error)
	// LoginWithEmail signs in a staff member whose email an external identity provider has verified.
	LoginWithEmail(ctx context.Context, email string) (*Session, error)
	Register(ctx context.Context, form *models.MemberForm) (*Session, error)
	RegisterStaff(ctx context.Context, actor *models.Principal, form *models.StaffForm) (*models.Member, error)
	// EnsureSuperAdmin creates a super admin with the given EPF number unless one already exists.
	EnsureSuperAdmin(ctx context.Context, epf, password string) (bool, error)
}

// errInvalidCredentials is returned for an unknown login and for a wrong password alike
var errInvalidCredentials = apperrors.NewUnauthenticated("invalid credentials")

// authService implements AuthService interface
type authService struct {
	members repositories.MemberRepository
	tokens  TokenIssuer
}

// NewAuthService creates a new auth service
func NewAuthService(members repositories.MemberRepository, tokens TokenIssuer) AuthService {
	return &authService{
		members: members,
		tokens:  tokens,
	}
}

func (s *authService) authenticate(ctx context.Context, form *models.LoginForm, method string) (*models.Member, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, validationError(errs)
	}

	member, err := s.members.GetCredentials(ctx, form.Login())
	if errors.Is(err, repositories.ErrNotFound) {
		verifyPassword(form.Password, "")
		metrics.Logins.WithLabelValues(method, metrics.OutcomeFailure).Inc()
		return nil, errInvalidCredentials
	}
	if err != nil {
		return nil, storeError(err, "member")
	}

	if !verifyPassword(form.Password, member.PasswordHash) {
		metrics.Logins.WithLabelValues(method, metrics.OutcomeFailure).Inc()
		return nil, errInvalidCredentials
	}

	member.PasswordHash = ""
	return member, nil
}

func (s *authService) issue(member *models.Member, method string) (*Session, error) {
	signed, expiresAt, err := s.tokens.Issue(member.ID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrConfiguration) {
			return nil, err
		}
		return nil, apperrors.New(apperrors.ErrInternal, "failed to issue token", err)
	}

	metrics.Logins.WithLabelValues(method, metrics.OutcomeSuccess).Inc()
	return &Session{Member: member, Token: signed, ExpiresAt: expiresAt}, nil
}

// Login signs in a member by EPF number or email
func (s *authService) Login(ctx context.Context, form *models.LoginForm) (*Session, error) {
	member, err := s.authenticate(ctx, form, "password")
	if err != nil {
		return nil, err
	}
	return s.issue(member, "password")
}

// StaffLogin signs in a staff member by EPF number or email
func (s *authService) StaffLogin(ctx context.Context, form *models.LoginForm) (*Session, error) {
	member, err := s.authenticate(ctx, form, "staff_password")
	if err != nil {
		return nil, err
	}
	if !isStaff(member.Role) {
		metrics.Logins.WithLabelValues("staff_password", metrics.OutcomeFailure).Inc()
		return nil, errInvalidCredentials
	}
	return s.issue(member, "staff_password")
}

// LoginWithEmail signs in the staff member registered under a verified email address
func (s *authService) LoginWithEmail(ctx context.Context, email string) (*Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperrors.NewUnauthenticated("identity provider returned no email")
	}

	member, err := s.members.GetByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) || (err == nil && !isStaff(member.Role)) {
		metrics.Logins.WithLabelValues("oidc", metrics.OutcomeFailure).Inc()
		return nil, apperrors.NewUnauthenticated("no staff account is registered for this email")
	}
	if err != nil {
		return nil, storeError(err, "member")
	}

	return s.issue(member, "oidc")
}

// Register creates a member account and signs it in
func (s *authService) Register(ctx context.Context, form *models.MemberForm) (*Session, error) {
	member, err := s.create(ctx, form, models.RoleMember)
	if err != nil {
		return nil, err
	}
	return s.issue(member, "register")
}

// RegisterStaff creates a staff account. An admin may only grant member or admin;
// elected offices and super admin are granted by a super admin.
func (s *authService) RegisterStaff(ctx context.Context, actor *models.Principal, form *models.StaffForm) (*models.Member, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, validationError(errs)
	}

	role, _ := models.ParseRole(form.Role)
	if !canGrant(actor, role) {
		return nil, apperrors.NewForbidden(fmt.Sprintf("only a super admin can register a %s", role))
	}

	return s.create(ctx, &form.MemberForm, role)
}

// canGrant reports whether actor may create an account holding role
func canGrant(actor *models.Principal, role models.Role) bool {
	if actor == nil {
		return false
	}
	if actor.Role == models.RoleSuperAdmin {
		return true
	}
	return actor.Role == models.RoleAdmin && (role == models.RoleMember || role == models.RoleAdmin)
}

// EnsureSuperAdmin bootstraps the first super admin account
func (s *authService) EnsureSuperAdmin(ctx context.Context, epf, password string) (bool, error) {
	_, err := s.members.GetCredentials(ctx, epf)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return false, storeError(err, "member")
	}

	form := &models.MemberForm{
		Name:      "Super Admin",
		EPF:       epf,
		WelfareNo: epf,
		Password:  password,
	}
	if _, err := s.create(ctx, form, models.RoleSuperAdmin); err != nil {
		return false, err
	}
	return true, nil
}

func (s *authService) create(ctx context.Context, form *models.MemberForm, role models.Role) (*models.Member, error) {
	if errs := form.Validate(true); len(errs) > 0 {
		return nil, validationError(errs)
	}

	hash, err := hashPassword(form.Password)
	if err != nil {
		return nil, err
	}

	member := memberFromForm(form)
	member.Role = role
	member.PasswordHash = hash

	if err := s.members.Create(ctx, member); err != nil {
		return nil, storeError(err, "member")
	}

	member.PasswordHash = ""
	return member, nil
}

func isStaff(role models.Role) bool {
	return role.Valid() && role != models.RoleMember
}

func memberFromForm(form *models.MemberForm) *models.Member {
	return &models.Member{
		Name:          strings.TrimSpace(form.Name),
		Email:         strings.ToLower(strings.TrimSpace(form.Email)),
		EPF:           strings.TrimSpace(form.EPF),
		WelfareNo:     strings.TrimSpace(form.WelfareNo),
		Payroll:       strings.TrimSpace(form.Payroll),
		Division:      strings.TrimSpace(form.Division),
		Branch:        strings.TrimSpace(form.Branch),
		Unit:          strings.TrimSpace(form.Unit),
		ContactNumber: strings.TrimSpace(form.ContactNumber),
		DateOfJoined:  form.DateOfJoined,
		DateOfBirth:   form.DateOfBirth,
		MemberFee:     form.MemberFee,
	}
}
