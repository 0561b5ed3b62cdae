// Package roles is the role-based access table for the admin API. Routes
// declare the permission they need and the guard checks the caller's role
// claim against it.
package roles

// Role codes assigned to members.
const (
	SuperAdmin      = "SUPER_ADMIN"
	Admin           = "ADMIN"
	DesignerInhouse = "DESIGNER_INHOUSE"
	Staff           = "STAFF"
)

// Permission names one guarded capability of the admin API.
type Permission string

const (
	DashboardView       Permission = "dashboard:view"
	DashboardStatistics Permission = "dashboard:statistics"

	OrdersView         Permission = "orders:view"
	OrdersViewAll      Permission = "orders:view_all"
	OrdersViewOwn      Permission = "orders:view_own"
	OrdersCreate       Permission = "orders:create"
	OrdersEdit         Permission = "orders:edit"
	OrdersDelete       Permission = "orders:delete"
	OrdersAssign       Permission = "orders:assign"
	OrdersUpdateStatus Permission = "orders:update_status"

	MembersView        Permission = "members:view"
	MembersCreate      Permission = "members:create"
	MembersEdit        Permission = "members:edit"
	MembersDelete      Permission = "members:delete"
	MembersManageRoles Permission = "members:manage_roles"

	MastersView   Permission = "masters:view"
	MastersCreate Permission = "masters:create"
	MastersEdit   Permission = "masters:edit"
	MastersDelete Permission = "masters:delete"

	ClaimsView    Permission = "claims:view"
	ClaimsCreate  Permission = "claims:create"
	ClaimsEdit    Permission = "claims:edit"
	ClaimsResolve Permission = "claims:resolve"
	ClaimsDelete  Permission = "claims:delete"

	SettingsView Permission = "settings:view"
	SettingsEdit Permission = "settings:edit"
)

var permissions = map[Permission][]string{
	DashboardView:       {SuperAdmin, Admin, DesignerInhouse, Staff},
	DashboardStatistics: {SuperAdmin, Admin},

	OrdersView:         {SuperAdmin, Admin, DesignerInhouse, Staff},
	OrdersViewAll:      {SuperAdmin, Admin},
	OrdersViewOwn:      {DesignerInhouse, Staff},
	OrdersCreate:       {SuperAdmin, Admin, Staff},
	OrdersEdit:         {SuperAdmin, Admin},
	OrdersDelete:       {SuperAdmin},
	OrdersAssign:       {SuperAdmin, Admin},
	OrdersUpdateStatus: {SuperAdmin, Admin, DesignerInhouse},

	MembersView:        {SuperAdmin, Admin},
	MembersCreate:      {SuperAdmin, Admin},
	MembersEdit:        {SuperAdmin, Admin},
	MembersDelete:      {SuperAdmin},
	MembersManageRoles: {SuperAdmin},

	MastersView:   {SuperAdmin, Admin},
	MastersCreate: {SuperAdmin},
	MastersEdit:   {SuperAdmin},
	MastersDelete: {SuperAdmin},

	ClaimsView:    {SuperAdmin, Admin, DesignerInhouse, Staff},
	ClaimsCreate:  {SuperAdmin, Admin, Staff},
	ClaimsEdit:    {SuperAdmin, Admin},
	ClaimsResolve: {SuperAdmin, Admin},
	ClaimsDelete:  {SuperAdmin},

	SettingsView: {SuperAdmin, Admin},
	SettingsEdit: {SuperAdmin},
}

// hierarchy ranks roles for comparisons.
var hierarchy = map[string]int{
	SuperAdmin:      100,
	Admin:           80,
	DesignerInhouse: 50,
	Staff:           30,
}

// HasPermission reports whether the role may exercise the permission.
func HasPermission(roleCode string, p Permission) bool {
	if roleCode == "" {
		return false
	}
	for _, allowed := range permissions[p] {
		if allowed == roleCode {
			return true
		}
	}
	return false
}

// HasAnyPermission reports whether the role may exercise at least one of
// the permissions.
func HasAnyPermission(roleCode string, ps ...Permission) bool {
	for _, p := range ps {
		if HasPermission(roleCode, p) {
			return true
		}
	}
	return false
}

// PermissionsForRole lists every permission the role holds.
func PermissionsForRole(roleCode string) []Permission {
	var out []Permission
	for p, allowed := range permissions {
		for _, r := range allowed {
			if r == roleCode {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// IsAdminRole reports whether the role is at the admin level or above.
func IsAdminRole(roleCode string) bool {
	return roleCode == SuperAdmin || roleCode == Admin
}

// HasHigherOrEqualRole compares two roles in the hierarchy. Unknown roles
// rank below every known one.
func HasHigherOrEqualRole(roleCode, targetRole string) bool {
	return hierarchy[roleCode] >= hierarchy[targetRole] && hierarchy[roleCode] > 0
}

// ValidRole reports whether the code names a known role.
func ValidRole(roleCode string) bool {
	_, ok := hierarchy[roleCode]
	return ok
}
