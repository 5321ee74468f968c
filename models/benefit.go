package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BenefitKind identifies one of the benefit categories the fund pays out.
type BenefitKind string

const (
	BenefitDeathFund   BenefitKind = "death_fund"
	BenefitMedical     BenefitKind = "medical"
	BenefitRefund      BenefitKind = "refund"
	BenefitRetirement  BenefitKind = "retirement"
	BenefitScholarship BenefitKind = "scholarship"
)

// BenefitKinds lists every benefit category alongside the URL segment it is served under.
var BenefitKinds = []struct {
	Kind BenefitKind
	Path string
}{
	{BenefitDeathFund, "deathfunds"},
	{BenefitMedical, "medicals"},
	{BenefitRefund, "refunds"},
	{BenefitRetirement, "retirements"},
	{BenefitScholarship, "scholarships"},
}

// Benefit is a claim paid (or to be paid) to a member under one category
type Benefit struct {
	ID        string            `json:"_id"`
	Kind      BenefitKind       `json:"benefit"`
	MemberID  string            `json:"memberId"`
	Amount    decimal.Decimal   `json:"amount"`
	Date      time.Time         `json:"date"`
	Reason    string            `json:"reason,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	AuditFields
}

// BenefitForm is the payload for creating or updating a benefit claim.
// Details holds category specific fields such as personType or indexNumber.
type BenefitForm struct {
	MemberID string            `json:"memberId"`
	Amount   decimal.Decimal   `json:"amount"`
	Date     string            `json:"date"`
	Reason   string            `json:"reason"`
	Details  map[string]string `json:"details"`
}

// Validate validates the benefit form data
func (f *BenefitForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.MemberID) == "" {
		errors = append(errors, "Member ID is required")
	}
	if f.Amount.IsNegative() {
		errors = append(errors, "Amount cannot be negative")
	}
	if f.Date == "" {
		errors = append(errors, "Date is required")
	} else if _, err := ParseDate(f.Date); err != nil {
		errors = append(errors, "Date must use the YYYY-MM-DD format")
	}
	if len(f.Details) > 20 {
		errors = append(errors, "Too many detail fields")
	}

	return errors
}
