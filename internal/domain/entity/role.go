package entity

import "slices"

// Role is an authorization role carried in access tokens.
type Role string

const (
	// RoleCustomer is granted to every registered customer.
	RoleCustomer Role = "customer"
	// RoleAdmin may advance order statuses.
	RoleAdmin Role = "admin"
)

// Roles is the role set of one token.
type Roles []Role

// Contains reports whether role is in the set.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Strings returns the roles as JWT claim values.
func (rs Roles) Strings() []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, string(r))
	}

	return out
}

// ParseRoles keeps the known roles from a claim value and drops the rest.
func ParseRoles(ss []string) Roles {
	out := make(Roles, 0, len(ss))
	for _, s := range ss {
		switch r := Role(s); r {
		case RoleCustomer, RoleAdmin:
			out = append(out, r)
		}
	}

	return out
}
