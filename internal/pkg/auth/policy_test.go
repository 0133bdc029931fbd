package auth_test

import (
	"testing"

	"restaurant/internal/pkg/auth"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for _, label := range []string{"admin", "manager", "staff"} {
		role, ok := auth.ParseRole(label)
		assert.True(t, ok, label)
		assert.Equal(t, auth.Role(label), role)
	}

	_, ok := auth.ParseRole("superuser")
	assert.False(t, ok)

	_, ok = auth.ParseRole("")
	assert.False(t, ok)
}

func TestPolicyCanPerform(t *testing.T) {
	policy := auth.NewPolicy()

	t.Run("admin can do everything", func(t *testing.T) {
		for _, action := range []auth.Action{
			auth.ActionCreateOrder,
			auth.ActionTransitionOrderStatus,
			auth.ActionManageCustomers,
			auth.ActionManageProducts,
		} {
			assert.True(t, policy.CanPerform(auth.RoleAdmin, action), action)
		}
	})

	t.Run("staff cannot transition order statuses", func(t *testing.T) {
		assert.False(t, policy.CanPerform(auth.RoleStaff, auth.ActionTransitionOrderStatus))
		assert.True(t, policy.CanPerform(auth.RoleStaff, auth.ActionCreateOrder))
	})

	t.Run("manager can transition order statuses", func(t *testing.T) {
		assert.True(t, policy.CanPerform(auth.RoleManager, auth.ActionTransitionOrderStatus))
		assert.False(t, policy.CanPerform(auth.RoleManager, auth.ActionManageCustomers))
	})

	t.Run("unknown role can do nothing", func(t *testing.T) {
		assert.False(t, policy.CanPerform(auth.Role("ghost"), auth.ActionCreateOrder))
	})
}
