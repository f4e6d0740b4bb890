package models

// OrganizationType classifies an organization's plan tier.
type OrganizationType string

// Organization types. Upgrades move strictly up the lattice:
// individual → {team, enterprise}, team → enterprise. No downgrades.
const (
	OrgTypeIndividual OrganizationType = "individual"
	OrgTypeTeam       OrganizationType = "team"
	OrgTypeEnterprise OrganizationType = "enterprise"
)

// OrganizationRole is a member's role within an organization.
type OrganizationRole string

const (
	OrgRoleAdmin OrganizationRole = "admin"
	OrgRoleUser  OrganizationRole = "user"
)

// OrganizationMember is one entry on an organization's member list.
type OrganizationMember struct {
	UserID string           `json:"user_id"`
	Role   OrganizationRole `json:"role"`
}

// CanUpgradeOrgType reports whether the from → to type change is allowed
// by the upgrade lattice. Same-type "changes" are allowed (no-op).
func CanUpgradeOrgType(from, to OrganizationType) bool {
	if from == to {
		return true
	}
	switch from {
	case OrgTypeIndividual:
		return to == OrgTypeTeam || to == OrgTypeEnterprise
	case OrgTypeTeam:
		return to == OrgTypeEnterprise
	default:
		return false
	}
}

// HasAdmin reports whether the member list contains at least one admin.
func HasAdmin(members []OrganizationMember) bool {
	for _, m := range members {
		if m.Role == OrgRoleAdmin {
			return true
		}
	}
	return false
}

// MemberRole returns the role of userID on the member list, or "" if absent.
func MemberRole(members []OrganizationMember, userID string) OrganizationRole {
	for _, m := range members {
		if m.UserID == userID {
			return m.Role
		}
	}
	return ""
}
