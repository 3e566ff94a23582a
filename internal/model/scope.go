package model

// Role is an authorization role. Roles are strictly ordered:
// admin > maintainer > viewer.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleMaintainer Role = "maintainer"
	RoleViewer     Role = "viewer"
)

// Scope identifies the authenticated caller of a request.
type Scope struct {
	User string
	Role Role
}
