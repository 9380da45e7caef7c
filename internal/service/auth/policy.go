package service

import "github.com/you-humble/autoparts-inventory/internal/model"

// Policy maps roles to the capabilities they hold.
type Policy struct {
	grants map[model.Role]map[model.Capability]struct{}
}

// NewPolicy grants every capability to both roles. With enforceRoles the
// user-management capabilities are kept for admins only.
func NewPolicy(enforceRoles bool) *Policy {
	p := &Policy{grants: map[model.Role]map[model.Capability]struct{}{
		model.RoleAdmin: {},
		model.RoleUser:  {},
	}}

	for _, c := range model.AllCapabilities {
		p.grants[model.RoleAdmin][c] = struct{}{}

		if enforceRoles && (c == model.CapUsersRead || c == model.CapUsersWrite) {
			continue
		}
		p.grants[model.RoleUser][c] = struct{}{}
	}

	return p
}

// Allows reports whether role holds c. Roles other than admin and user,
// which older accounts may carry, hold the user grants.
func (p *Policy) Allows(role model.Role, c model.Capability) bool {
	caps, ok := p.grants[role]
	if !ok {
		caps = p.grants[model.RoleUser]
	}
	_, ok = caps[c]
	return ok
}
