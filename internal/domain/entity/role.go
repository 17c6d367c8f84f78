// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of actor an account can have in the system.
type Role string

const (
	// RoleSuperAdmin indicates the platform administrator role.
	RoleSuperAdmin Role = "SuperAdmin"
	// RoleAgent indicates a travel agent role.
	RoleAgent Role = "Agent"
	// RoleRestaurant indicates a restaurant partner role.
	RoleRestaurant Role = "Restaurant"
	// RoleShop indicates a shop partner role.
	RoleShop Role = "Shop"
	// RoleActivity indicates an activity partner role.
	RoleActivity Role = "Activity"

	// RoleBooking is not an account role: it marks credentials minted from a
	// verified booking and carries no identity of its own.
	RoleBooking Role = "booking"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid account role.
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAgent, RoleRestaurant, RoleShop, RoleActivity:
		return true
	default:
		return false
	}
}

// IsPartner reports whether the role is one of the business partner roles.
func (r Role) IsPartner() bool {
	return slices.Contains(PartnerRoles(), r)
}

// PartnerRoles returns the roles grouped under the "Partner" pseudo-role.
func PartnerRoles() []Role {
	return []Role{RoleRestaurant, RoleShop, RoleActivity}
}

// ParseRole normalizes a role string coming off the wire.
// The mobile clients send "Activities" where the backend stores "Activity".
func ParseRole(s string) (Role, bool) {
	if s == "Activities" {
		s = string(RoleActivity)
	}

	role := Role(s)
	if !role.IsValid() {
		return "", false
	}

	return role, true
}
