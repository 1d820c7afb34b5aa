package identity

import (
	"sort"
	"strings"
)

// Role names one capability grouping inside a fleet. Roles are additive; an
// account may hold several at once.
type Role string

const (
	RoleOwner              Role = "owner"
	RoleAdmin              Role = "admin"
	RoleDispatcher         Role = "dispatcher"
	RoleFleetManager       Role = "fleet_manager"
	RoleMaintenanceManager Role = "maintenance_manager"
	RoleBilling            Role = "billing"
	RoleDriver             Role = "driver"
)

// String returns the wire name of the role.
func (r Role) String() string {
	return string(r)
}

// DispatchingRoles returns the roles allowed to run dispatcher actions on
// loads. Owners and admins dispatch implicitly.
func DispatchingRoles() []Role {
	return []Role{RoleDispatcher, RoleOwner, RoleAdmin}
}

// RoleSet is an unordered set of roles. The zero value is an empty set and is
// safe to query.
type RoleSet struct {
	roles map[Role]struct{}
}

// NewRoleSet builds a set from the given roles, ignoring duplicates.
func NewRoleSet(roles ...Role) RoleSet {
	set := RoleSet{roles: make(map[Role]struct{}, len(roles))}
	for _, r := range roles {
		set.roles[r] = struct{}{}
	}
	return set
}

// RoleSetFromStrings builds a set from wire names, as found in token claims.
// Unknown names are kept as-is: the guards only ever test for known roles, so
// an unrecognized role grants nothing.
func RoleSetFromStrings(names []string) RoleSet {
	roles := make([]Role, 0, len(names))
	for _, name := range names {
		roles = append(roles, Role(name))
	}
	return NewRoleSet(roles...)
}

// Has reports whether the set contains the role.
func (s RoleSet) Has(role Role) bool {
	_, ok := s.roles[role]
	return ok
}

// HasAny reports whether the set contains at least one of the given roles.
func (s RoleSet) HasAny(roles ...Role) bool {
	for _, r := range roles {
		if s.Has(r) {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the set holds no roles at all.
func (s RoleSet) IsEmpty() bool {
	return len(s.roles) == 0
}

// Slice returns the roles sorted by name, for stable messages and logs.
func (s RoleSet) Slice() []Role {
	out := make([]Role, 0, len(s.roles))
	for r := range s.roles {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String returns the sorted, comma-joined role names.
func (s RoleSet) String() string {
	names := make([]string, 0, len(s.roles))
	for _, r := range s.Slice() {
		names = append(names, r.String())
	}
	return strings.Join(names, ",")
}
