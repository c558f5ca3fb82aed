package rbac

import "github.com/grn-engineering/smartvend/backend/internal/domain"

// Language selects display strings for section labels
type Language string

const (
	LanguageEnglish  Language = "en"
	LanguageJapanese Language = "ja"
)

// Section describes one navigable dashboard area
type Section struct {
	Path               string     `json:"path"`
	RequiredPermission SectionKey `json:"required_permission"`
	labels             map[Language]string
}

// Label returns the display string for the given language, falling
// back to English for anything else
func (s Section) Label(lang Language) string {
	if l, ok := s.labels[lang]; ok {
		return l
	}
	return s.labels[LanguageEnglish]
}

// registry lists every section in declared navigation order. Path and
// required permission are equal by construction.
var registry = []Section{
	{
		Path:               "/dashboard",
		RequiredPermission: SectionDashboard,
		labels:             map[Language]string{LanguageEnglish: "Dashboard", LanguageJapanese: "ダッシュボード"},
	},
	{
		Path:               "/inventory",
		RequiredPermission: SectionInventory,
		labels:             map[Language]string{LanguageEnglish: "Inventory", LanguageJapanese: "在庫管理"},
	},
	{
		Path:               "/analytics",
		RequiredPermission: SectionAnalytics,
		labels:             map[Language]string{LanguageEnglish: "Analytics", LanguageJapanese: "分析"},
	},
	{
		Path:               "/maintenance",
		RequiredPermission: SectionMaintenance,
		labels:             map[Language]string{LanguageEnglish: "Maintenance", LanguageJapanese: "メンテナンス"},
	},
	{
		Path:               "/users",
		RequiredPermission: SectionUsers,
		labels:             map[Language]string{LanguageEnglish: "Users", LanguageJapanese: "ユーザー"},
	},
}

// Sections returns the full registry in navigation order
func Sections() []Section {
	out := make([]Section, len(registry))
	copy(out, registry)
	return out
}

// SectionByPath looks up a section by its routing path
func SectionByPath(path string) (Section, bool) {
	for _, s := range registry {
		if s.Path == path {
			return s, true
		}
	}
	return Section{}, false
}

// SectionsByRole filters the registry to sections the role may reach,
// preserving registry order. Reads the same permission table as the
// route guard so the navigation menu cannot drift from enforcement.
func SectionsByRole(role domain.Role) []Section {
	var out []Section
	for _, s := range registry {
		if HasPermission(role, s.RequiredPermission) {
			out = append(out, s)
		}
	}
	return out
}
