package authorization

// Role is the flat access level of a staff account. There is no hierarchy:
// each capability is answered per role rather than by rank comparison.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleAgent  Role = "agent"
	RoleViewer Role = "viewer"
)

var validRoles = map[Role]bool{
	RoleAdmin:  true,
	RoleAgent:  true,
	RoleViewer: true,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// CanManageRequests reports whether the role may create, update or delete
// support requests and knowledge base articles. Viewers are read-only
// everywhere.
func (r Role) CanManageRequests() bool {
	return r == RoleAdmin || r == RoleAgent
}

// CanManageSettings reports whether the role may read or change AI settings.
func (r Role) CanManageSettings() bool {
	return r == RoleAdmin
}

func ParseRole(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}
	return RoleViewer
}
