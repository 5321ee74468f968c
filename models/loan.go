package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus is the approval state of a loan application.
type LoanStatus string

const (
	LoanPending  LoanStatus = "pending"
	LoanApproved LoanStatus = "approved"
	LoanRejected LoanStatus = "rejected"
)

// ParseLoanStatus converts a submitted status into a LoanStatus.
func ParseLoanStatus(s string) (LoanStatus, error) {
	switch st := LoanStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case LoanPending, LoanApproved, LoanRejected:
		return st, nil
	}
	return "", fmt.Errorf("unknown loan status %q", s)
}

// Loan is a loan application recorded against a member
type Loan struct {
	ID           string          `json:"_id"`
	LoanNumber   string          `json:"loanNumber"`
	MemberID     string          `json:"memberId"`
	Amount       decimal.Decimal `json:"loanAmount"`
	Reason       string          `json:"reasonForLoan,omitempty"`
	RequiredDate *time.Time      `json:"requiredLoanDate,omitempty"`
	Status       LoanStatus      `json:"loanStatus"`
	CreatedAt    time.Time       `json:"createdAt"`
	AuditFields
}

// LoanForm is the payload for creating or updating a loan application
type LoanForm struct {
	MemberID     string          `json:"memberId"`
	LoanNumber   string          `json:"loanNumber"`
	Amount       decimal.Decimal `json:"loanAmount"`
	Reason       string          `json:"reasonForLoan"`
	RequiredDate string          `json:"requiredLoanDate"`
}

// Validate validates the loan form data
func (f *LoanForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.MemberID) == "" {
		errors = append(errors, "Member ID is required")
	}
	if !f.Amount.IsPositive() {
		errors = append(errors, "Loan amount must be greater than zero")
	}
	if len(f.Reason) > 1000 {
		errors = append(errors, "Reason must be less than 1000 characters")
	}
	if f.RequiredDate != "" {
		if _, err := ParseDate(f.RequiredDate); err != nil {
			errors = append(errors, "Required loan date must use the YYYY-MM-DD format")
		}
	}

	return errors
}

// LoanStatusForm changes the approval state of a loan
type LoanStatusForm struct {
	Status string `json:"loanStatus"`
}
