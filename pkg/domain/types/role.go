package types

// Role represents the organization role granted by an invitation
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleDirectMember Role = "direct_member"
)

// DefaultRole is used when neither the request nor configuration names a role
const DefaultRole = RoleDirectMember

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the role is one GitHub accepts for invitations
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDirectMember:
		return true
	default:
		return false
	}
}
