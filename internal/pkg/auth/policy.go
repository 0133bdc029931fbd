// Package auth provides the role-based capability check consumed by the HTTP
// adapter. Authentication itself (credentials, token issuance and verification)
// lives in an external gateway; this package only answers whether an already
// authenticated actor may perform a given action.
package auth

// Role identifies the privilege level of an authenticated actor.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

// ParseRole maps a role label to a Role. Unknown labels yield ("", false).
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleStaff:
		return Role(s), true
	default:
		return "", false
	}
}

// Action names an operation that requires authorization.
type Action string

const (
	ActionCreateOrder           Action = "order:create"
	ActionTransitionOrderStatus Action = "order:transition_status"
	ActionManageCustomers       Action = "customer:manage"
	ActionManageProducts        Action = "product:manage"
)

// Policy answers capability checks for actor roles.
type Policy struct {
	allowed map[Role]map[Action]bool
}

// NewPolicy creates the default policy:
//   - admin may do everything
//   - manager may transition order statuses and manage the catalog
//   - staff may create orders and manage customers
//
// Read operations are not listed; they are open to any authenticated caller.
func NewPolicy() *Policy {
	return &Policy{
		allowed: map[Role]map[Action]bool{
			RoleAdmin: {
				ActionCreateOrder:           true,
				ActionTransitionOrderStatus: true,
				ActionManageCustomers:       true,
				ActionManageProducts:        true,
			},
			RoleManager: {
				ActionTransitionOrderStatus: true,
				ActionManageProducts:        true,
				ActionCreateOrder:           true,
			},
			RoleStaff: {
				ActionCreateOrder:     true,
				ActionManageCustomers: true,
			},
		},
	}
}

// CanPerform reports whether the given role is allowed to perform the action.
func (p *Policy) CanPerform(role Role, action Action) bool {
	return p.allowed[role][action]
}
