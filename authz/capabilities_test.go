package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blogem/welfare-admin/apperrors"
	"github.com/blogem/welfare-admin/models"
)

func principal(role models.Role) *models.Principal {
	return &models.Principal{ID: "p-1", Role: role, Name: "Test"}
}

func TestEveryCapabilityHasExplicitRoles(t *testing.T) {
	for _, c := range Capabilities() {
		assert.NotEmpty(t, AllowedRoles(c), "capability %s has no roles", c)
		assert.Contains(t, AllowedRoles(c), models.RoleSuperAdmin, "super admin missing from %s", c)
	}
}

func TestSuperAdminSubsumesEveryOffice(t *testing.T) {
	for _, r := range models.AllRoles() {
		assert.True(t, Subsumes(models.RoleSuperAdmin, r), "super_admin should subsume %s", r)
	}
}

func TestOfficeHoldersSubsumeTheirDeputies(t *testing.T) {
	assert.True(t, Subsumes(models.RoleTreasurer, models.RoleAssistantTreasurer))
	assert.True(t, Subsumes(models.RoleSecretary, models.RoleAssistantSecretary))
	assert.True(t, Subsumes(models.RolePresident, models.RoleVicePresident))

	// The hierarchy is not a total order.
	assert.False(t, Subsumes(models.RoleTreasurer, models.RoleSecretary))
	assert.False(t, Subsumes(models.RoleSecretary, models.RoleTreasurer))
	assert.False(t, Subsumes(models.RoleAdmin, models.RoleTreasurer))
}

func TestMemberPassesNoOfficeOrAdminCapability(t *testing.T) {
	m := principal(models.RoleMember)
	for _, c := range Capabilities() {
		if Authorize(m, c).Allowed {
			// Anything a member may do, every other role may do as well.
			assert.Len(t, AllowedRoles(c), len(models.AllRoles()), "member passes restricted capability %s", c)
		}
	}

	for _, c := range []Capability{LoanRead, BenefitRead, ProfileRead} {
		assert.True(t, Authorize(m, c).Allowed, "member should pass %s", c)
	}
}

func TestMoneyMovingAndDeleteSets(t *testing.T) {
	tests := []struct {
		capability Capability
		role       models.Role
		allowed    bool
	}{
		{LoanCreate, models.RoleTreasurer, true},
		{LoanCreate, models.RoleAssistantTreasurer, true},
		{LoanCreate, models.RoleSuperAdmin, true},
		{LoanCreate, models.RoleMember, false},
		{LoanCreate, models.RoleAdmin, false},
		{LoanCreate, models.RolePresident, false},
		{LoanCreate, models.RoleSecretary, false},
		{LoanStatusUpdate, models.RoleAssistantTreasurer, true},
		{BenefitUpdate, models.RoleVicePresident, false},
		{LoanDelete, models.RoleTreasurer, false},
		{LoanDelete, models.RoleSuperAdmin, true},
		{BenefitDelete, models.RoleAssistantTreasurer, false},
		{MemberDelete, models.RoleSecretary, false},
		{AuditRead, models.RolePresident, false},
		{AuditRead, models.RoleSuperAdmin, true},
		{AuditStats, models.RoleVicePresident, true},
		{StaffRegister, models.RoleAdmin, true},
		{MemberUpdate, models.RoleAssistantSecretary, true},
	}
	for _, tt := range tests {
		got := Authorize(principal(tt.role), tt.capability).Allowed
		assert.Equal(t, tt.allowed, got, "%s as %s", tt.capability, tt.role)
	}
}

func TestDeletesAreNarrowerThanCreates(t *testing.T) {
	for _, pair := range [][2]Capability{{LoanDelete, LoanCreate}, {BenefitDelete, BenefitCreate}} {
		deleters := AllowedRoles(pair[0])
		creators := AllowedRoles(pair[1])
		assert.Less(t, len(deleters), len(creators))
		for _, r := range deleters {
			assert.Contains(t, creators, r)
		}
	}
}

func TestUnknownInputsAreDenied(t *testing.T) {
	assert.False(t, Authorize(nil, LoanRead).Allowed)
	assert.False(t, Authorize(principal(models.RoleUnknown), LoanRead).Allowed)
	assert.False(t, Authorize(principal(models.Role("owner")), LoanRead).Allowed)
	assert.False(t, Authorize(principal(models.RoleSuperAdmin), Capability("loan.launder")).Allowed)
}

func TestCheckReturnsForbidden(t *testing.T) {
	err := Check(principal(models.RoleMember), LoanCreate)
	assert.True(t, apperrors.Is(err, apperrors.ErrForbidden))
	assert.NoError(t, Check(principal(models.RoleTreasurer), LoanCreate))
}
