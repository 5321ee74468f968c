package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

// Test MemberForm validation
func TestMemberFormValidation(t *testing.T) {
	validForm := MemberForm{
		Name:      "Nimal Perera",
		Email:     "nimal@example.com",
		Password:  "correct-horse",
		EPF:       "EPF-1001",
		WelfareNo: "W-77",
		MemberFee: decimal.NewFromInt(500),
	}
	if errors := validForm.Validate(true); len(errors) != 0 {
		t.Errorf("Expected no errors for valid form, got: %v", errors)
	}

	invalidForm := MemberForm{
		Name:      "",
		Email:     "invalid-email",
		EPF:       "EPF-1002",
		WelfareNo: "W-78",
	}
	if errors := invalidForm.Validate(false); len(errors) != 2 {
		t.Errorf("Expected 2 errors for invalid form, got: %v", errors)
	}

	// Short password only matters when a password is required
	shortPassword := validForm
	shortPassword.Password = "short"
	if errors := shortPassword.Validate(false); len(errors) != 0 {
		t.Errorf("Expected no errors when password is not required, got: %v", errors)
	}
	if errors := shortPassword.Validate(true); len(errors) != 1 {
		t.Errorf("Expected 1 error for short password, got: %v", errors)
	}
}

func TestStaffFormRejectsUnknownRole(t *testing.T) {
	form := StaffForm{
		MemberForm: MemberForm{Name: "Staff", EPF: "E1", WelfareNo: "W1", Password: "long-enough"},
		Role:       "chairman",
	}
	if errors := form.Validate(); len(errors) != 1 {
		t.Errorf("Expected 1 error for unknown role, got: %v", errors)
	}

	form.Role = "treasurer"
	if errors := form.Validate(); len(errors) != 0 {
		t.Errorf("Expected no errors for treasurer role, got: %v", errors)
	}
}

func TestParseRole(t *testing.T) {
	for _, r := range AllRoles() {
		parsed, err := ParseRole(string(r))
		if err != nil || parsed != r {
			t.Errorf("Expected %s to parse, got %v (%v)", r, parsed, err)
		}
	}

	for _, s := range []string{"", "Super_Admin", "root", "admin "} {
		if r, err := ParseRole(s); err == nil || r != RoleUnknown {
			t.Errorf("Expected %q to be rejected, got %v", s, r)
		}
	}

	if RoleUnknown.Valid() {
		t.Error("Expected unknown role to be invalid")
	}
}

func TestLoanFormValidation(t *testing.T) {
	form := LoanForm{MemberID: "m-1", Amount: decimal.RequireFromString("25000.50"), RequiredDate: "2026-01-31"}
	if errors := form.Validate(); len(errors) != 0 {
		t.Errorf("Expected no errors for valid loan, got: %v", errors)
	}

	form = LoanForm{Amount: decimal.Zero, RequiredDate: "31/01/2026"}
	if errors := form.Validate(); len(errors) != 3 {
		t.Errorf("Expected 3 errors for invalid loan, got: %v", errors)
	}
}

func TestBenefitFormValidation(t *testing.T) {
	form := BenefitForm{MemberID: "m-1", Amount: decimal.NewFromInt(1000), Date: "2026-02-01"}
	if errors := form.Validate(); len(errors) != 0 {
		t.Errorf("Expected no errors for valid benefit, got: %v", errors)
	}

	form = BenefitForm{MemberID: "m-1", Amount: decimal.NewFromInt(-1)}
	if errors := form.Validate(); len(errors) != 2 {
		t.Errorf("Expected 2 errors for invalid benefit, got: %v", errors)
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{1, 20, 1, 20},
		{0, 0, 1, 1},
		{-3, -10, 1, 1},
		{2, 500, 2, 100},
		{7, 100, 7, 100},
	}
	for _, tt := range tests {
		page, limit := ClampPage(tt.page, tt.limit)
		if page != tt.wantPage || limit != tt.wantLimit {
			t.Errorf("ClampPage(%d, %d) = (%d, %d), want (%d, %d)",
				tt.page, tt.limit, page, limit, tt.wantPage, tt.wantLimit)
		}
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(1, 10, 25)
	if p.TotalPages != 3 || p.TotalItems != 25 || !p.HasNextPage || p.HasPrevPage {
		t.Errorf("Unexpected pagination: %+v", p)
	}

	p = NewPagination(3, 10, 25)
	if p.HasNextPage || !p.HasPrevPage {
		t.Errorf("Expected last page to have only a previous page: %+v", p)
	}

	p = NewPagination(1, 20, 0)
	if p.TotalPages != 0 || p.HasNextPage {
		t.Errorf("Expected empty result to have no pages: %+v", p)
	}
}

func TestParseTimestamp(t *testing.T) {
	ts, dateOnly, err := ParseTimestamp("2026-03-04")
	if err != nil || !dateOnly || FormatDate(ts) != "2026-03-04" {
		t.Errorf("Expected date-only parse, got %v %v %v", ts, dateOnly, err)
	}

	_, dateOnly, err = ParseTimestamp("2026-03-04T10:11:12Z")
	if err != nil || dateOnly {
		t.Errorf("Expected full timestamp parse, got %v %v", dateOnly, err)
	}

	if _, _, err := ParseTimestamp("yesterday"); err == nil {
		t.Error("Expected error for unparseable timestamp")
	}
}
