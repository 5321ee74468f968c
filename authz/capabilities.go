// Package authz maps roles to the capabilities they may exercise.
//
// The table in this file is the single source of truth: every capability lists
// its allowed roles explicitly, and anything absent from a set is denied.
package authz

import (
	"fmt"
	"sort"

	"github.com/blogem/welfare-admin/apperrors"
	"github.com/blogem/welfare-admin/models"
)

// Capability names a permission that gates one operation.
type Capability string

const (
	ProfileRead Capability = "profile.read"

	LoanRead           Capability = "loan.read"
	LoanCreate         Capability = "loan.create"
	LoanUpdate         Capability = "loan.update"
	LoanStatusUpdate   Capability = "loan.status.update"
	LoanNumberGenerate Capability = "loan.number.generate"
	LoanDelete         Capability = "loan.delete"

	BenefitRead   Capability = "benefit.read"
	BenefitCreate Capability = "benefit.create"
	BenefitUpdate Capability = "benefit.update"
	BenefitDelete Capability = "benefit.delete"

	MemberList   Capability = "member.list"
	MemberUpdate Capability = "member.update"
	MemberDelete Capability = "member.delete"

	StaffRegister Capability = "staff.register"

	AuditRead     Capability = "audit.read"
	AuditStats    Capability = "audit.stats"
	AuditAnnotate Capability = "audit.annotate"
)

const (
	member             = models.RoleMember
	admin              = models.RoleAdmin
	secretary          = models.RoleSecretary
	assistantSecretary = models.RoleAssistantSecretary
	treasurer          = models.RoleTreasurer
	assistantTreasurer = models.RoleAssistantTreasurer
	president          = models.RolePresident
	vicePresident      = models.RoleVicePresident
	superAdmin         = models.RoleSuperAdmin
)

type roleSet map[models.Role]struct{}

func roles(rs ...models.Role) roleSet {
	set := make(roleSet, len(rs))
	for _, r := range rs {
		set[r] = struct{}{}
	}
	return set
}

var table = map[Capability]roleSet{
	// Plain reads: any authenticated role.
	ProfileRead: roles(member, admin, secretary, assistantSecretary, treasurer, assistantTreasurer, president, vicePresident, superAdmin),
	LoanRead:    roles(member, admin, secretary, assistantSecretary, treasurer, assistantTreasurer, president, vicePresident, superAdmin),
	BenefitRead: roles(member, admin, secretary, assistantSecretary, treasurer, assistantTreasurer, president, vicePresident, superAdmin),

	// Money-moving: treasurer's office.
	LoanCreate:         roles(treasurer, assistantTreasurer, superAdmin),
	LoanUpdate:         roles(treasurer, assistantTreasurer, superAdmin),
	LoanStatusUpdate:   roles(treasurer, assistantTreasurer, superAdmin),
	LoanNumberGenerate: roles(treasurer, assistantTreasurer, superAdmin),
	BenefitCreate:      roles(treasurer, assistantTreasurer, superAdmin),
	BenefitUpdate:      roles(treasurer, assistantTreasurer, superAdmin),

	// Destructive deletes.
	LoanDelete:    roles(superAdmin),
	BenefitDelete: roles(superAdmin),
	MemberDelete:  roles(superAdmin),

	// Membership records: secretary's office.
	MemberList:   roles(admin, secretary, assistantSecretary, treasurer, assistantTreasurer, president, vicePresident, superAdmin),
	MemberUpdate: roles(secretary, assistantSecretary, superAdmin),

	StaffRegister: roles(admin, superAdmin),

	// Oversight: president's office sees the summary, only super admin sees the trail.
	AuditStats:    roles(president, vicePresident, superAdmin),
	AuditRead:     roles(superAdmin),
	AuditAnnotate: roles(superAdmin),
}

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	Reason  string
}

// Authorize decides whether principal may exercise capability.
// Nil principals, unknown roles and unknown capabilities are denied.
func Authorize(principal *models.Principal, capability Capability) Decision {
	if principal == nil {
		return Decision{Reason: "no principal"}
	}
	allowed, ok := table[capability]
	if !ok {
		return Decision{Reason: fmt.Sprintf("unknown capability %q", capability)}
	}
	if !principal.Role.Valid() {
		return Decision{Reason: "unrecognised role"}
	}
	if _, ok := allowed[principal.Role]; !ok {
		return Decision{Reason: fmt.Sprintf("role %s lacks %s", principal.Role, capability)}
	}
	return Decision{Allowed: true}
}

// Check is Authorize returning a ForbiddenError on deny.
func Check(principal *models.Principal, capability Capability) error {
	if d := Authorize(principal, capability); !d.Allowed {
		return apperrors.NewForbidden("not authorized: " + d.Reason)
	}
	return nil
}

// Capabilities returns every capability in the table, sorted by name.
func Capabilities() []Capability {
	caps := make([]Capability, 0, len(table))
	for c := range table {
		caps = append(caps, c)
	}
	sort.Slice(caps, func(i, j int) bool { return caps[i] < caps[j] })
	return caps
}

// AllowedRoles returns the roles admitted by capability, in declaration order.
func AllowedRoles(capability Capability) []models.Role {
	var out []models.Role
	for _, r := range models.AllRoles() {
		if _, ok := table[capability][r]; ok {
			out = append(out, r)
		}
	}
	return out
}

// Subsumes reports whether role a passes every capability check that role b passes.
func Subsumes(a, b models.Role) bool {
	for _, set := range table {
		if _, ok := set[b]; !ok {
			continue
		}
		if _, ok := set[a]; !ok {
			return false
		}
	}
	return true
}
