package models

import "fmt"

// Role is the closed set of roles a member account can hold.
type Role string

const (
	// RoleUnknown is what a stored role that fails to parse becomes. No capability admits it.
	RoleUnknown            Role = ""
	RoleMember             Role = "member"
	RoleAdmin              Role = "admin"
	RoleSecretary          Role = "secretary"
	RoleAssistantSecretary Role = "assistant_secretary"
	RoleTreasurer          Role = "treasurer"
	RoleAssistantTreasurer Role = "assistant_treasurer"
	RolePresident          Role = "president"
	RoleVicePresident      Role = "vice_president"
	RoleSuperAdmin         Role = "super_admin"
)

var knownRoles = []Role{
	RoleMember,
	RoleAdmin,
	RoleSecretary,
	RoleAssistantSecretary,
	RoleTreasurer,
	RoleAssistantTreasurer,
	RolePresident,
	RoleVicePresident,
	RoleSuperAdmin,
}

// AllRoles returns every known role in declaration order.
func AllRoles() []Role {
	return append([]Role(nil), knownRoles...)
}

// ParseRole converts a stored or submitted role name into a Role.
func ParseRole(s string) (Role, error) {
	for _, r := range knownRoles {
		if string(r) == s {
			return r, nil
		}
	}
	return RoleUnknown, fmt.Errorf("unknown role %q", s)
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// IsElectedOffice reports whether r is one of the elected committee positions.
func (r Role) IsElectedOffice() bool {
	switch r {
	case RoleSecretary, RoleAssistantSecretary,
		RoleTreasurer, RoleAssistantTreasurer,
		RolePresident, RoleVicePresident:
		return true
	}
	return false
}

func (r Role) String() string {
	if r == RoleUnknown {
		return "unknown"
	}
	return string(r)
}
