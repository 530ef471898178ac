package identity

import "strings"

// Permission is a "resource:action" code, e.g. "expense:approve".
type Permission string

// NewPermission builds a permission code from resource and action
func NewPermission(resource, action string) Permission {
	return Permission(resource + ":" + action)
}

// Resource returns the resource part of the permission code
func (p Permission) Resource() string {
	if i := strings.Index(string(p), ":"); i >= 0 {
		return string(p)[:i]
	}
	return string(p)
}

// Action returns the action part of the permission code
func (p Permission) Action() string {
	if i := strings.Index(string(p), ":"); i >= 0 {
		return string(p)[i+1:]
	}
	return ""
}

// IsValid checks that the code has a non-empty resource and action
func (p Permission) IsValid() bool {
	parts := strings.Split(string(p), ":")
	return len(parts) == 2 && parts[0] != "" && parts[1] != ""
}

// Permission codes
const (
	PermUserCreate      Permission = "user:create"
	PermUserRead        Permission = "user:read"
	PermUserUpdate      Permission = "user:update"
	PermUserDelete      Permission = "user:delete"
	PermUserPasswordSet Permission = "user:password_set"

	PermClientCreate Permission = "client:create"
	PermClientRead   Permission = "client:read"
	PermClientUpdate Permission = "client:update"
	PermClientDelete Permission = "client:delete"

	PermProjectCreate Permission = "project:create"
	PermProjectRead   Permission = "project:read"
	PermProjectUpdate Permission = "project:update"
	PermProjectDelete Permission = "project:delete"

	PermCampaignCreate Permission = "campaign:create"
	PermCampaignRead   Permission = "campaign:read"
	PermCampaignUpdate Permission = "campaign:update"
	PermCampaignDelete Permission = "campaign:delete"

	PermVendorCreate Permission = "vendor:create"
	PermVendorRead   Permission = "vendor:read"
	PermVendorUpdate Permission = "vendor:update"
	PermVendorDelete Permission = "vendor:delete"

	PermVehicleCreate Permission = "vehicle:create"
	PermVehicleRead   Permission = "vehicle:read"
	PermVehicleUpdate Permission = "vehicle:update"
	PermVehicleDelete Permission = "vehicle:delete"

	PermDriverCreate Permission = "driver:create"
	PermDriverRead   Permission = "driver:read"
	PermDriverUpdate Permission = "driver:update"
	PermDriverDelete Permission = "driver:delete"

	PermPromoterCreate Permission = "promoter:create"
	PermPromoterRead   Permission = "promoter:read"
	PermPromoterUpdate Permission = "promoter:update"
	PermPromoterDelete Permission = "promoter:delete"

	PermPromoterActivityCreate Permission = "promoter_activity:create"
	PermPromoterActivityRead   Permission = "promoter_activity:read"
	PermPromoterActivityUpdate Permission = "promoter_activity:update"
	PermPromoterActivityDelete Permission = "promoter_activity:delete"

	PermExpenseCreate  Permission = "expense:create"
	PermExpenseRead    Permission = "expense:read"
	PermExpenseUpdate  Permission = "expense:update"
	PermExpenseDelete  Permission = "expense:delete"
	PermExpenseApprove Permission = "expense:approve"

	PermReportCreate Permission = "report:create"
	PermReportRead   Permission = "report:read"
	PermReportUpdate Permission = "report:update"
	PermReportDelete Permission = "report:delete"

	PermInvoiceCreate  Permission = "invoice:create"
	PermInvoiceRead    Permission = "invoice:read"
	PermInvoiceUpdate  Permission = "invoice:update"
	PermInvoiceDelete  Permission = "invoice:delete"
	PermInvoiceApprove Permission = "invoice:approve"

	PermPaymentCreate Permission = "payment:create"
	PermPaymentRead   Permission = "payment:read"
	PermPaymentUpdate Permission = "payment:update"
	PermPaymentDelete Permission = "payment:delete"

	PermDashboardView                Permission = "dashboard:view"
	PermVendorDashboardView          Permission = "vendor_dashboard:view"
	PermClientServicingDashboardView Permission = "client_servicing_dashboard:view"
	PermDriverDashboardView          Permission = "driver_dashboard:view"
	PermAnalyticsView                Permission = "analytics:view"

	PermGodownCreate Permission = "godown:create"
	PermGodownRead   Permission = "godown:read"
	PermGodownUpdate Permission = "godown:update"
	PermGodownDelete Permission = "godown:delete"

	PermInventoryCreate Permission = "inventory:create"
	PermInventoryRead   Permission = "inventory:read"
	PermInventoryUpdate Permission = "inventory:update"
	PermInventoryDelete Permission = "inventory:delete"

	PermSettingsView   Permission = "settings:view"
	PermSettingsUpdate Permission = "settings:update"
)

// AllPermissions enumerates every permission code the system knows about
var AllPermissions = []Permission{
	PermUserCreate, PermUserRead, PermUserUpdate, PermUserDelete, PermUserPasswordSet,
	PermClientCreate, PermClientRead, PermClientUpdate, PermClientDelete,
	PermProjectCreate, PermProjectRead, PermProjectUpdate, PermProjectDelete,
	PermCampaignCreate, PermCampaignRead, PermCampaignUpdate, PermCampaignDelete,
	PermVendorCreate, PermVendorRead, PermVendorUpdate, PermVendorDelete,
	PermVehicleCreate, PermVehicleRead, PermVehicleUpdate, PermVehicleDelete,
	PermDriverCreate, PermDriverRead, PermDriverUpdate, PermDriverDelete,
	PermPromoterCreate, PermPromoterRead, PermPromoterUpdate, PermPromoterDelete,
	PermPromoterActivityCreate, PermPromoterActivityRead, PermPromoterActivityUpdate, PermPromoterActivityDelete,
	PermExpenseCreate, PermExpenseRead, PermExpenseUpdate, PermExpenseDelete, PermExpenseApprove,
	PermReportCreate, PermReportRead, PermReportUpdate, PermReportDelete,
	PermInvoiceCreate, PermInvoiceRead, PermInvoiceUpdate, PermInvoiceDelete, PermInvoiceApprove,
	PermPaymentCreate, PermPaymentRead, PermPaymentUpdate, PermPaymentDelete,
	PermDashboardView, PermVendorDashboardView, PermClientServicingDashboardView, PermDriverDashboardView, PermAnalyticsView,
	PermGodownCreate, PermGodownRead, PermGodownUpdate, PermGodownDelete,
	PermInventoryCreate, PermInventoryRead, PermInventoryUpdate, PermInventoryDelete,
	PermSettingsView, PermSettingsUpdate,
}

// rolePermissions is the built-in role to permission matrix. The
// role_grants table can override the set for a role; when the table
// has no rows for a role, this matrix is the fallback.
var rolePermissions = map[Role][]Permission{
	RoleAdmin: AllPermissions,

	RoleSales: {
		PermClientCreate, PermClientRead, PermClientUpdate,
		PermProjectCreate, PermProjectRead, PermProjectUpdate,
		PermCampaignRead,
		PermVendorRead,
		PermReportRead,
		PermDashboardView,
	},

	RolePurchase: {
		PermVendorCreate, PermVendorRead, PermVendorUpdate,
		PermProjectRead,
		PermCampaignRead,
		PermExpenseRead,
		PermDashboardView,
	},

	RoleClientServicing: {
		PermClientRead,
		PermProjectCreate, PermProjectRead, PermProjectUpdate,
		PermCampaignCreate, PermCampaignRead, PermCampaignUpdate,
		PermVendorRead, PermVehicleRead, PermDriverRead,
		PermPromoterRead, PermPromoterActivityRead,
		PermReportCreate, PermReportRead, PermReportUpdate,
		PermExpenseRead,
		PermDashboardView, PermClientServicingDashboardView,
	},

	RoleOperationsManager: {
		PermProjectRead,
		PermCampaignCreate, PermCampaignRead, PermCampaignUpdate,
		PermVehicleCreate, PermVehicleRead, PermVehicleUpdate,
		PermDriverCreate, PermDriverRead, PermDriverUpdate,
		PermPromoterCreate, PermPromoterRead, PermPromoterUpdate,
		PermExpenseRead,
		PermReportRead,
		PermDriverDashboardView, PermDashboardView,
	},

	RoleOperator: {
		PermCampaignRead, PermCampaignUpdate,
		PermVehicleRead, PermVehicleUpdate,
		PermDriverRead, PermDriverUpdate,
		PermVendorRead,
		PermPromoterRead, PermPromoterUpdate,
		PermExpenseCreate, PermExpenseRead,
		PermDashboardView,
	},

	RoleDriver: {
		PermCampaignRead,
		PermVehicleRead,
		PermExpenseCreate, PermExpenseRead,
		PermDriverDashboardView, PermDashboardView,
	},

	RolePromoter: {
		PermCampaignRead,
		PermPromoterRead, PermPromoterUpdate,
		PermPromoterActivityCreate, PermPromoterActivityRead,
		PermExpenseCreate, PermExpenseRead,
		PermReportCreate, PermReportRead,
		PermDashboardView,
	},

	RoleAnchor: {
		PermCampaignRead,
		PermExpenseCreate, PermExpenseRead,
		PermDashboardView,
	},

	RoleVendor: {
		PermCampaignRead,
		PermVehicleCreate, PermVehicleRead, PermVehicleUpdate,
		PermDriverCreate, PermDriverRead, PermDriverUpdate,
		PermInvoiceCreate, PermInvoiceRead, PermInvoiceUpdate,
		PermPaymentRead,
		PermVendorDashboardView,
		PermExpenseCreate, PermExpenseRead,
		PermDashboardView,
	},

	RoleVehicleManager: {
		PermVehicleCreate, PermVehicleRead, PermVehicleUpdate,
		PermDriverRead,
		PermCampaignRead,
		PermExpenseRead,
		PermDashboardView,
	},

	RoleGodownManager: {
		PermCampaignRead,
		PermProjectRead,
		PermDashboardView,
		PermGodownCreate, PermGodownRead, PermGodownUpdate, PermGodownDelete,
		PermInventoryCreate, PermInventoryRead, PermInventoryUpdate, PermInventoryDelete,
	},

	RoleAccounts: {
		PermProjectRead,
		PermCampaignRead,
		PermVendorRead,
		PermExpenseCreate, PermExpenseRead, PermExpenseUpdate, PermExpenseApprove,
		PermInvoiceRead, PermInvoiceApprove,
		PermPaymentCreate, PermPaymentRead, PermPaymentUpdate,
		PermReportRead,
		PermDashboardView,
	},

	RoleClient: {
		PermProjectRead,
		PermCampaignRead,
		PermReportRead,
		PermDashboardView,
	},
}

// DefaultPermissions returns the built-in permission set for a role.
// Unknown roles get no permissions.
func DefaultPermissions(role Role) []Permission {
	perms, ok := rolePermissions[role]
	if !ok {
		return nil
	}
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// PermissionStrings converts a permission slice to plain strings for
// embedding in JWT claims.
func PermissionStrings(perms []Permission) []string {
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}

// menuVisibility drives which frontend menu sections each role sees.
var menuVisibility = map[Role][]string{
	RoleAdmin:             {"dashboard", "clients", "projects", "campaigns", "vendors", "vendor-dashboard", "client-servicing-dashboard", "driver-dashboard", "vehicles", "drivers", "promoters", "promoter-activities", "operations", "expenses", "reports", "accounts", "analytics", "settings"},
	RoleSales:             {"dashboard", "clients", "projects", "campaigns", "vendors", "reports"},
	RolePurchase:          {"dashboard", "vendors", "projects", "campaigns"},
	RoleClientServicing:   {"dashboard", "client-servicing-dashboard", "clients", "projects", "campaigns", "reports", "operations", "vendors", "vehicles"},
	RoleOperationsManager: {"dashboard", "driver-dashboard", "projects", "campaigns", "operations", "drivers", "vehicles", "promoters", "promoter-activities", "expenses", "reports"},
	RoleOperator:          {"dashboard", "campaigns", "operations", "drivers", "vehicles", "vendors", "promoters", "promoter-activities"},
	RoleDriver:            {"dashboard", "driver-dashboard", "expenses", "campaigns"},
	RolePromoter:          {"dashboard", "campaigns", "promoter-activities", "reports", "expenses"},
	RoleAnchor:            {"dashboard", "events", "campaigns", "promoter-activities"},
	RoleVendor:            {"vendor-dashboard", "campaigns", "vehicles", "drivers"},
	RoleVehicleManager:    {"dashboard", "vehicles", "drivers", "maintenance"},
	RoleGodownManager:     {"dashboard", "inventory", "stock", "campaigns"},
	RoleAccounts:          {"dashboard", "expenses", "payments", "reports", "projects", "campaigns", "vendors"},
	RoleClient:            {"dashboard", "reports", "projects", "campaigns"},
}

// MenuSections returns the frontend menu sections visible to a role
func MenuSections(role Role) []string {
	menus, ok := menuVisibility[role]
	if !ok {
		return []string{"dashboard"}
	}
	out := make([]string, len(menus))
	copy(out, menus)
	return out
}
