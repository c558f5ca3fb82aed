package session

import "github.com/grn-engineering/smartvend/backend/internal/domain"

// DemoVerifier accepts any non-empty password for a known user. This is
// the demo-mode placeholder policy, not credential verification;
// deployments with real password hashes configure a bcrypt verifier
// instead.
type DemoVerifier struct{}

// Verify accepts any non-empty password
func (DemoVerifier) Verify(_ *domain.User, password string) error {
	if password == "" {
		return ErrInvalidCredentials
	}
	return nil
}
