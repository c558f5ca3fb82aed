package rbac

import "github.com/grn-engineering/smartvend/backend/internal/domain"

// Decision is the outcome of a navigation check
type Decision int

const (
	// DecisionAllow admits the request to the section
	DecisionAllow Decision = iota
	// DecisionRedirectLogin sends an unauthenticated caller to /login
	DecisionRedirectLogin
	// DecisionRedirectDashboard sends an authenticated caller lacking
	// permission to the default section
	DecisionRedirectDashboard
)

// DefaultSectionPath is where unauthorized-but-authenticated
// navigation lands
const DefaultSectionPath = "/dashboard"

// LoginPath is where unauthenticated navigation lands
const LoginPath = "/login"

// RedirectPath returns the navigation target implied by a decision, or
// "" for DecisionAllow
func (d Decision) RedirectPath() string {
	switch d {
	case DecisionRedirectLogin:
		return LoginPath
	case DecisionRedirectDashboard:
		return DefaultSectionPath
	}
	return ""
}

// Evaluate decides whether the session subject may reach the section.
// Pure and total: no user means redirect to login, a role missing the
// section's permission (including unknown roles, which hold no
// permissions) means redirect to the default section. Callers must
// re-evaluate on every navigation; decisions are never cached.
func Evaluate(user *domain.User, key SectionKey) Decision {
	if user == nil {
		return DecisionRedirectLogin
	}
	if !HasPermission(user.Role, key) {
		return DecisionRedirectDashboard
	}
	return DecisionAllow
}
