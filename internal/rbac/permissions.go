package rbac

import "github.com/grn-engineering/smartvend/backend/internal/domain"

// SectionKey identifies a gated dashboard section. Section keys and
// routing paths are identical in this system.
type SectionKey string

const (
	SectionDashboard   SectionKey = "dashboard"
	SectionInventory   SectionKey = "inventory"
	SectionAnalytics   SectionKey = "analytics"
	SectionMaintenance SectionKey = "maintenance"
	SectionUsers       SectionKey = "users"
	SectionSettings    SectionKey = "settings"
)

// permissionTable is the single source of truth for role access. Both
// the route guard and the navigation menu read from it. Admin's set is
// a superset of every other role's.
var permissionTable = map[domain.Role][]SectionKey{
	domain.RoleAdmin:           {SectionDashboard, SectionInventory, SectionAnalytics, SectionMaintenance, SectionUsers, SectionSettings},
	domain.RoleRegionalManager: {SectionDashboard, SectionInventory, SectionAnalytics, SectionMaintenance},
	domain.RoleOperator:        {SectionDashboard, SectionInventory, SectionMaintenance},
	domain.RoleTechnician:      {SectionDashboard, SectionMaintenance},
	domain.RoleAnalyst:         {SectionDashboard, SectionAnalytics},
}

// Permissions returns the section keys reachable by a role. Total over
// all inputs: an unknown role maps to the empty set.
func Permissions(role domain.Role) []SectionKey {
	keys, ok := permissionTable[role]
	if !ok {
		return nil
	}
	out := make([]SectionKey, len(keys))
	copy(out, keys)
	return out
}

// HasPermission reports whether a role may reach a section
func HasPermission(role domain.Role, key SectionKey) bool {
	for _, k := range permissionTable[role] {
		if k == key {
			return true
		}
	}
	return false
}
