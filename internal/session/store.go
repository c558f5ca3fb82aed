package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/grn-engineering/smartvend/backend/internal/domain"
	"github.com/grn-engineering/smartvend/backend/internal/settings"
)

var (
	// ErrInvalidCredentials is returned when the email is unknown or
	// the password is rejected. Session state is unchanged.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrSuperseded is returned when a login resolves after a logout or
	// a newer login has taken over. Its result is discarded.
	ErrSuperseded = errors.New("login superseded")
)

// Verifier checks a password against a user record
type Verifier interface {
	Verify(user *domain.User, password string) error
}

// Persistence stores the session subject across restarts
type Persistence interface {
	Save(user *domain.User) error
	Load() (*domain.User, error)
	Clear() error
}

// Store holds the authenticated session subject: at most one current
// user. Mutations are ordered by an operation sequence so that a slow
// login can never overwrite the outcome of a later logout or login
// (last writer wins by operation order, not completion order).
type Store struct {
	users      domain.UserRepository
	settings   *settings.Store
	persist    Persistence
	verify     Verifier
	loginDelay time.Duration

	mu      sync.Mutex
	current *domain.User
	opSeq   uint64
}

// NewStore creates an empty, unauthenticated session store.
// loginDelay simulates backend latency inside Login; zero disables it.
func NewStore(users domain.UserRepository, st *settings.Store, persist Persistence, verify Verifier, loginDelay time.Duration) *Store {
	return &Store{
		users:      users,
		settings:   st,
		persist:    persist,
		verify:     verify,
		loginDelay: loginDelay,
	}
}

// Restore rehydrates the session from persisted storage. A corrupt
// record is discarded and the store stays unauthenticated; corruption
// is never surfaced to the caller.
func (s *Store) Restore() {
	if s.persist == nil {
		return
	}
	user, err := s.persist.Load()
	if err != nil || user == nil {
		_ = s.persist.Clear()
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.opSeq == 0 && s.current == nil {
		s.current = user
	}
}

// Login authenticates by exact email match plus password verification.
// On success the found user becomes the session subject, is persisted,
// and the settings store's selected country is reset to the user's
// home country. On failure the session is unchanged.
//
// Login honors ctx cancellation during the simulated latency window:
// an abandoned call returns ctx.Err() without touching state. A call
// that resolves after a logout or newer login has bumped the operation
// sequence returns ErrSuperseded and its result is discarded.
func (s *Store) Login(ctx context.Context, email, password string) (*domain.User, error) {
	s.mu.Lock()
	s.opSeq++
	seq := s.opSeq
	s.mu.Unlock()

	if s.loginDelay > 0 {
		timer := time.NewTimer(s.loginDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil || user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := s.verify.Verify(user, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.opSeq {
		return nil, ErrSuperseded
	}
	s.current = user
	if s.persist != nil {
		_ = s.persist.Save(user)
	}
	if s.settings != nil {
		_ = s.settings.SetSelectedCountry(user.Country)
	}
	return user, nil
}

// Logout clears the session subject and removes the persisted record.
// Idempotent: logging out with no active session is a no-op.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opSeq++
	s.current = nil
	if s.persist != nil {
		_ = s.persist.Clear()
	}
}

// CurrentUser returns the session subject, if any
func (s *Store) CurrentUser() (*domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, false
	}
	return s.current, true
}
