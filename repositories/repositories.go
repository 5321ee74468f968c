package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Members  MemberRepository
	Loans    LoanRepository
	Benefits BenefitRepository
	Audit    AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Members:  NewMemberRepository(db),
		Loans:    NewLoanRepository(db),
		Benefits: NewBenefitRepository(db),
		Audit:    NewAuditRepository(db),
	}
}
