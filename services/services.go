package services

import (
	"github.com/blogem/welfare-admin/repositories"
)

// Services holds all service instances
type Services struct {
	Auth     AuthService
	Members  MemberService
	Loans    LoanService
	Benefits BenefitService
	Audit    AuditService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, tokens TokenIssuer, auditOpts AuditOptions) *Services {
	return &Services{
		Auth:     NewAuthService(repos.Members, tokens),
		Members:  NewMemberService(repos.Members),
		Loans:    NewLoanService(repos.Loans, repos.Members),
		Benefits: NewBenefitService(repos.Benefits, repos.Members),
		Audit:    NewAuditService(repos.Audit, auditOpts),
	}
}
