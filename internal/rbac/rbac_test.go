package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grn-engineering/smartvend/backend/internal/domain"
	"github.com/grn-engineering/smartvend/backend/internal/rbac"
)

func TestPermissions_EveryRoleNonEmpty(t *testing.T) {
	for _, role := range domain.Roles() {
		keys := rbac.Permissions(role)
		assert.NotEmpty(t, keys, "role %s must map to at least one section", role)
	}
}

func TestPermissions_AdminIsSuperset(t *testing.T) {
	admin := rbac.Permissions(domain.RoleAdmin)
	adminSet := map[rbac.SectionKey]bool{}
	for _, k := range admin {
		adminSet[k] = true
	}

	for _, role := range domain.Roles() {
		for _, k := range rbac.Permissions(role) {
			assert.True(t, adminSet[k], "admin must hold %s granted to %s", k, role)
		}
	}
}

func TestPermissions_UnknownRoleIsEmpty(t *testing.T) {
	assert.Empty(t, rbac.Permissions(domain.Role("Intern")))
}

func TestSectionsByRole_MatchesPermissionTable(t *testing.T) {
	for _, role := range domain.Roles() {
		sections := rbac.SectionsByRole(role)
		require.NotEmpty(t, sections)
		for _, s := range sections {
			assert.True(t, rbac.HasPermission(role, s.RequiredPermission),
				"section %s listed for %s without permission", s.Path, role)
		}
	}
}

func TestSectionsByRole_Technician(t *testing.T) {
	sections := rbac.SectionsByRole(domain.RoleTechnician)
	require.Len(t, sections, 2)
	assert.Equal(t, "/dashboard", sections[0].Path)
	assert.Equal(t, "/maintenance", sections[1].Path)
}

func TestSectionsByRole_PreservesRegistryOrder(t *testing.T) {
	sections := rbac.SectionsByRole(domain.RoleRegionalManager)
	paths := make([]string, 0, len(sections))
	for _, s := range sections {
		paths = append(paths, s.Path)
	}
	assert.Equal(t, []string{"/dashboard", "/inventory", "/analytics", "/maintenance"}, paths)
}

func TestSectionRegistry_PathEqualsPermission(t *testing.T) {
	for _, s := range rbac.Sections() {
		assert.Equal(t, "/"+string(s.RequiredPermission), s.Path)
	}
}

func TestSectionLabels(t *testing.T) {
	s, ok := rbac.SectionByPath("/maintenance")
	require.True(t, ok)
	assert.Equal(t, "Maintenance", s.Label(rbac.LanguageEnglish))
	assert.Equal(t, "メンテナンス", s.Label(rbac.LanguageJapanese))
	// unknown language falls back to English
	assert.Equal(t, "Maintenance", s.Label(rbac.Language("fr")))
}

func TestEvaluate_NoUserRedirectsToLogin(t *testing.T) {
	for _, key := range []rbac.SectionKey{rbac.SectionDashboard, rbac.SectionUsers, rbac.SectionKey("bogus")} {
		d := rbac.Evaluate(nil, key)
		assert.Equal(t, rbac.DecisionRedirectLogin, d)
		assert.Equal(t, "/login", d.RedirectPath())
	}
}

func TestEvaluate_UnauthorizedRedirectsToDashboard(t *testing.T) {
	tech := &domain.User{ID: "U004", Role: domain.RoleTechnician}
	d := rbac.Evaluate(tech, rbac.SectionUsers)
	assert.Equal(t, rbac.DecisionRedirectDashboard, d)
	assert.Equal(t, "/dashboard", d.RedirectPath())
}

func TestEvaluate_AuthorizedAllows(t *testing.T) {
	tech := &domain.User{ID: "U004", Role: domain.RoleTechnician}
	d := rbac.Evaluate(tech, rbac.SectionMaintenance)
	assert.Equal(t, rbac.DecisionAllow, d)
	assert.Equal(t, "", d.RedirectPath())
}

func TestEvaluate_TotalOverAllRoleSectionPairs(t *testing.T) {
	keys := []rbac.SectionKey{
		rbac.SectionDashboard, rbac.SectionInventory, rbac.SectionAnalytics,
		rbac.SectionMaintenance, rbac.SectionUsers, rbac.SectionSettings,
		rbac.SectionKey("unknown"),
	}
	roles := append(domain.Roles(), domain.Role("Ghost"))
	for _, role := range roles {
		for _, key := range keys {
			d := rbac.Evaluate(&domain.User{Role: role}, key)
			assert.Contains(t,
				[]rbac.Decision{rbac.DecisionAllow, rbac.DecisionRedirectLogin, rbac.DecisionRedirectDashboard},
				d)
		}
	}
}

func TestEvaluate_UnknownRoleReachesNothing(t *testing.T) {
	ghost := &domain.User{ID: "U999", Role: domain.Role("Ghost")}
	for _, s := range rbac.Sections() {
		assert.Equal(t, rbac.DecisionRedirectDashboard, rbac.Evaluate(ghost, s.RequiredPermission))
	}
}
