package auth

import "github-manager/internal/model"

// Actions guarded by the authorizer.
const (
	ActionRead   = "read"
	ActionSync   = "sync"
	ActionCreate = "create"
	ActionMerge  = "merge"
	ActionClose  = "close"
	ActionDelete = "delete"
)

// Authorizer decides whether a caller may perform an action on a resource
// kind. Roles are cumulative: each role includes everything below it.
type Authorizer struct {
	grants map[model.Role]map[string]bool
}

// New creates an authorizer with the built-in role grants.
func New() *Authorizer {
	viewer := map[string]bool{
		ActionRead: true,
		ActionSync: true,
	}
	maintainer := merge(viewer, map[string]bool{
		ActionCreate: true,
		ActionMerge:  true,
		ActionClose:  true,
	})
	admin := merge(maintainer, map[string]bool{
		ActionDelete: true,
	})

	return &Authorizer{
		grants: map[model.Role]map[string]bool{
			model.RoleViewer:     viewer,
			model.RoleMaintainer: maintainer,
			model.RoleAdmin:      admin,
		},
	}
}

// Can reports whether the scope's role permits the action on the resource
// kind. Unknown roles and unknown actions are denied.
func (a *Authorizer) Can(sc model.Scope, action, resource string) bool {
	actions, ok := a.grants[sc.Role]
	if !ok {
		return false
	}
	return actions[action]
}

func merge(base, extra map[string]bool) map[string]bool {
	out := make(map[string]bool, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
