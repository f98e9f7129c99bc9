package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionsForRoles(t *testing.T) {
	t.Run("cajero saves sales but cannot issue", func(t *testing.T) {
		perms := PermissionsForRoles([]string{RoleCajero})

		assert.Contains(t, perms, "document:sale:create")
		assert.Contains(t, perms, "document:sale:update")
		assert.Contains(t, perms, "catalog:product:read")
		assert.Contains(t, perms, "catalog:client:update")
		assert.NotContains(t, perms, "document:sale:issue")
		assert.NotContains(t, perms, "catalog:product:delete")
	})

	t.Run("supervisor issues both document types", func(t *testing.T) {
		perms := PermissionsForRoles([]string{RoleSupervisor})

		assert.Contains(t, perms, "document:sale:issue")
		assert.Contains(t, perms, "document:purchase:issue")
		assert.Contains(t, perms, "catalog:tax:update")
		assert.NotContains(t, perms, "catalog:tax:delete", "deletion stays admin-only")
	})

	t.Run("roles combine without duplicates", func(t *testing.T) {
		perms := PermissionsForRoles([]string{RoleCajero, RoleAlmacenista})

		seen := make(map[string]int)
		for _, p := range perms {
			seen[p]++
		}
		for p, n := range seen {
			assert.Equal(t, 1, n, "permission %s duplicated", p)
		}
		assert.Contains(t, perms, "document:purchase:create")
		assert.Contains(t, perms, "document:sale:create")
	})

	t.Run("unknown role grants nothing", func(t *testing.T) {
		assert.Empty(t, PermissionsForRoles([]string{"intern"}))
	})
}

func TestValidateToken_ExpandsRolesToPermissions(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	user := NewUser("cajero@tienda.mx", "hash")
	user.Roles = []string{RoleCajero}

	token, _, err := svc.GenerateAccessToken(user, "", "")
	require.NoError(t, err)

	sess, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, []string{RoleCajero}, sess.Roles)
	assert.Contains(t, sess.Permissions, "document:sale:create")
	assert.NotContains(t, sess.Permissions, "document:sale:issue")
}

func TestRoleGrantsReturnsCopy(t *testing.T) {
	grants := RoleGrants()
	require.NotEmpty(t, grants[RoleCajero])

	grants[RoleCajero][0] = "mutated"
	assert.NotContains(t, rolePermissions[RoleCajero], "mutated")
}
