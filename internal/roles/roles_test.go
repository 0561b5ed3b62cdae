package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(SuperAdmin, OrdersDelete))
	assert.False(t, HasPermission(Admin, OrdersDelete))
	assert.True(t, HasPermission(Admin, OrdersEdit))
	assert.False(t, HasPermission(Staff, OrdersEdit))
	assert.True(t, HasPermission(Staff, ClaimsCreate))
	assert.False(t, HasPermission(DesignerInhouse, ClaimsCreate))

	assert.False(t, HasPermission("", OrdersView))
	assert.False(t, HasPermission("INTERN", OrdersView))
	assert.False(t, HasPermission(SuperAdmin, Permission("orders:unknown")))
}

func TestHasAnyPermission(t *testing.T) {
	assert.True(t, HasAnyPermission(Staff, OrdersDelete, OrdersCreate))
	assert.False(t, HasAnyPermission(Staff, OrdersDelete, MembersView))
}

func TestPermissionsForRole(t *testing.T) {
	super := PermissionsForRole(SuperAdmin)
	assert.Contains(t, super, MembersManageRoles)
	assert.Contains(t, super, MastersDelete)

	staff := PermissionsForRole(Staff)
	assert.Contains(t, staff, DashboardView)
	assert.NotContains(t, staff, MembersView)

	assert.Empty(t, PermissionsForRole("INTERN"))
}

func TestHierarchy(t *testing.T) {
	assert.True(t, HasHigherOrEqualRole(SuperAdmin, Admin))
	assert.True(t, HasHigherOrEqualRole(Admin, Admin))
	assert.False(t, HasHigherOrEqualRole(Staff, Admin))
	assert.True(t, HasHigherOrEqualRole(DesignerInhouse, Staff))

	// Unknown roles never outrank anything, on either side.
	assert.False(t, HasHigherOrEqualRole("INTERN", Staff))
	assert.False(t, HasHigherOrEqualRole("INTERN", "INTERN"))
	assert.True(t, HasHigherOrEqualRole(Staff, "INTERN"))
}

func TestIsAdminRole(t *testing.T) {
	assert.True(t, IsAdminRole(SuperAdmin))
	assert.True(t, IsAdminRole(Admin))
	assert.False(t, IsAdminRole(DesignerInhouse))
	assert.False(t, IsAdminRole(Staff))
}

func TestValidRole(t *testing.T) {
	for _, r := range []string{SuperAdmin, Admin, DesignerInhouse, Staff} {
		assert.True(t, ValidRole(r), r)
	}
	assert.False(t, ValidRole("intern"))
	assert.False(t, ValidRole(""))
}
