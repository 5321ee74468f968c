package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Member is a fund member or staff account. Staff are members with an elevated role.
type Member struct {
	ID            string          `json:"_id"`
	Name          string          `json:"name"`
	Email         string          `json:"email,omitempty"`
	EPF           string          `json:"epf"`
	WelfareNo     string          `json:"welfareNo"`
	Role          Role            `json:"role"`
	Payroll       string          `json:"payroll,omitempty"`
	Division      string          `json:"division,omitempty"`
	Branch        string          `json:"branch,omitempty"`
	Unit          string          `json:"unit,omitempty"`
	ContactNumber string          `json:"contactNo,omitempty"`
	DateOfJoined  string          `json:"dateOfJoined,omitempty"`
	DateOfBirth   string          `json:"dateOfBirth,omitempty"`
	MemberFee     decimal.Decimal `json:"memberFee"`
	PasswordHash  string          `json:"-"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Principal projects the member onto the request-scoped identity.
func (m *Member) Principal() *Principal {
	return &Principal{ID: m.ID, Role: m.Role, Name: m.Name}
}

// MemberForm is the payload for registering or updating a member profile
type MemberForm struct {
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Password      string          `json:"password"`
	EPF           string          `json:"epf"`
	WelfareNo     string          `json:"welfareNo"`
	Payroll       string          `json:"payroll"`
	Division      string          `json:"division"`
	Branch        string          `json:"branch"`
	Unit          string          `json:"unit"`
	ContactNumber string          `json:"contactNo"`
	DateOfJoined  string          `json:"dateOfJoined"`
	DateOfBirth   string          `json:"dateOfBirth"`
	MemberFee     decimal.Decimal `json:"memberFee"`
}

// Validate validates the member form data. Passwords are only checked when requirePassword is set.
func (f *MemberForm) Validate(requirePassword bool) []string {
	var errors []string

	if strings.TrimSpace(f.Name) == "" {
		errors = append(errors, "Name is required")
	}
	if len(f.Name) > 100 {
		errors = append(errors, "Name must be less than 100 characters")
	}
	if strings.TrimSpace(f.EPF) == "" {
		errors = append(errors, "EPF number is required")
	}
	if strings.TrimSpace(f.WelfareNo) == "" {
		errors = append(errors, "Welfare number is required")
	}
	if f.Email != "" && !isValidEmail(f.Email) {
		errors = append(errors, "Email format is invalid")
	}
	if f.MemberFee.IsNegative() {
		errors = append(errors, "Member fee cannot be negative")
	}
	if requirePassword && len(f.Password) < 8 {
		errors = append(errors, "Password must be at least 8 characters")
	}
	for _, d := range []string{f.DateOfJoined, f.DateOfBirth} {
		if d == "" {
			continue
		}
		if _, err := ParseDate(d); err != nil {
			errors = append(errors, "Dates must use the YYYY-MM-DD format")
			break
		}
	}

	return errors
}

// StaffForm registers a staff account with an explicit role
type StaffForm struct {
	MemberForm
	Role string `json:"role"`
}

// Validate validates the staff form data
func (f *StaffForm) Validate() []string {
	errors := f.MemberForm.Validate(true)
	if _, err := ParseRole(f.Role); err != nil {
		errors = append(errors, "Role is invalid")
	}
	return errors
}

// LoginForm carries login credentials. Identifier may be an EPF number or an email address.
type LoginForm struct {
	Identifier string `json:"identifier"`
	EPF        string `json:"epf"`
	Password   string `json:"password"`
}

// Login returns the identifier the caller supplied.
func (f *LoginForm) Login() string {
	if f.Identifier != "" {
		return strings.TrimSpace(f.Identifier)
	}
	return strings.TrimSpace(f.EPF)
}

// Validate validates the login form
func (f *LoginForm) Validate() []string {
	var errors []string
	if f.Login() == "" {
		errors = append(errors, "EPF number or email is required")
	}
	if f.Password == "" {
		errors = append(errors, "Password is required")
	}
	return errors
}
