package session_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grn-engineering/smartvend/backend/internal/domain"
	"github.com/grn-engineering/smartvend/backend/internal/session"
	"github.com/grn-engineering/smartvend/backend/internal/settings"
)

type stubUserRepo struct {
	byEmail map[string]*domain.User
}

func (r *stubUserRepo) Create(context.Context, *domain.User) error     { return errors.New("read-only") }
func (r *stubUserRepo) Update(context.Context, *domain.User) error     { return nil }
func (r *stubUserRepo) Delete(context.Context, string) error           { return errors.New("read-only") }
func (r *stubUserRepo) GetByID(context.Context, string) (*domain.User, error) {
	return nil, errors.New("not found")
}
func (r *stubUserRepo) List(context.Context) ([]*domain.User, error) { return nil, nil }

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func seededRepo() *stubUserRepo {
	sato := &domain.User{
		ID: "U004", Name: "Hiroshi Sato", Email: "h.sato@grn.co.jp",
		Role: domain.RoleTechnician, Country: domain.CountryJapan, Status: domain.UserStatusActive,
	}
	patel := &domain.User{
		ID: "U001", Name: "Raj Patel", Email: "raj.patel@grn.co.in",
		Role: domain.RoleAdmin, Country: domain.CountryIndia, Status: domain.UserStatusActive,
	}
	return &stubUserRepo{byEmail: map[string]*domain.User{
		sato.Email:  sato,
		patel.Email: patel,
	}}
}

func newStore(t *testing.T, delay time.Duration) (*session.Store, *settings.Store) {
	t.Helper()
	st := settings.NewStore()
	return session.NewStore(seededRepo(), st, nil, session.DemoVerifier{}, delay), st
}

func TestLogin_KnownEmailNonEmptyPassword(t *testing.T) {
	store, st := newStore(t, 0)

	user, err := store.Login(context.Background(), "h.sato@grn.co.jp", "demo123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleTechnician, user.Role)

	current, ok := store.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "U004", current.ID)

	// selected country follows the user's home country
	assert.Equal(t, domain.CountryJapan, st.SelectedCountry())
}

func TestLogin_UnknownEmailFails(t *testing.T) {
	store, st := newStore(t, 0)

	_, err := store.Login(context.Background(), "nobody@grn.co.in", "demo123")
	require.ErrorIs(t, err, session.ErrInvalidCredentials)

	_, ok := store.CurrentUser()
	assert.False(t, ok)
	assert.Equal(t, domain.CountryIndia, st.SelectedCountry())
}

func TestLogin_EmptyPasswordFails(t *testing.T) {
	store, _ := newStore(t, 0)

	_, err := store.Login(context.Background(), "h.sato@grn.co.jp", "")
	require.ErrorIs(t, err, session.ErrInvalidCredentials)

	_, ok := store.CurrentUser()
	assert.False(t, ok)
}

func TestLogout_ClearsSession(t *testing.T) {
	store, _ := newStore(t, 0)

	_, err := store.Login(context.Background(), "raj.patel@grn.co.in", "demo123")
	require.NoError(t, err)

	store.Logout()
	_, ok := store.CurrentUser()
	assert.False(t, ok)
}

func TestLogout_Idempotent(t *testing.T) {
	store, _ := newStore(t, 0)

	store.Logout()
	store.Logout()

	_, ok := store.CurrentUser()
	assert.False(t, ok)
}

func TestLogin_CancelledDuringLatencyLeavesStateUnchanged(t *testing.T) {
	store, st := newStore(t, 200*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := store.Login(ctx, "h.sato@grn.co.jp", "demo123")
		done <- err
	}()
	cancel()

	err := <-done
	require.ErrorIs(t, err, context.Canceled)
	_, ok := store.CurrentUser()
	assert.False(t, ok)
	assert.Equal(t, domain.CountryIndia, st.SelectedCountry())
}

func TestLogin_SupersededByLogout(t *testing.T) {
	store, _ := newStore(t, 100*time.Millisecond)

	done := make(chan error, 1)
	go func() {
		_, err := store.Login(context.Background(), "h.sato@grn.co.jp", "demo123")
		done <- err
	}()

	// logout issued while the login is still in flight wins
	time.Sleep(20 * time.Millisecond)
	store.Logout()

	err := <-done
	require.ErrorIs(t, err, session.ErrSuperseded)
	_, ok := store.CurrentUser()
	assert.False(t, ok, "final state must be unauthenticated")
}

func TestLogin_NewerLoginWins(t *testing.T) {
	store, _ := newStore(t, 100*time.Millisecond)

	first := make(chan error, 1)
	go func() {
		_, err := store.Login(context.Background(), "h.sato@grn.co.jp", "demo123")
		first <- err
	}()

	time.Sleep(20 * time.Millisecond)
	second := make(chan error, 1)
	go func() {
		_, err := store.Login(context.Background(), "raj.patel@grn.co.in", "demo123")
		second <- err
	}()

	errFirst := <-first
	require.NoError(t, <-second)
	require.ErrorIs(t, errFirst, session.ErrSuperseded)

	current, ok := store.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "raj.patel@grn.co.in", current.Email)
}

func TestRestore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	persist := session.NewFilePersistence(path)

	store := session.NewStore(seededRepo(), settings.NewStore(), persist, session.DemoVerifier{}, 0)
	_, err := store.Login(context.Background(), "h.sato@grn.co.jp", "demo123")
	require.NoError(t, err)

	restored := session.NewStore(seededRepo(), settings.NewStore(), persist, session.DemoVerifier{}, 0)
	restored.Restore()

	current, ok := restored.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "h.sato@grn.co.jp", current.Email)
}

func TestRestore_CorruptRecordDiscarded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	persist := session.NewFilePersistence(path)
	store := session.NewStore(seededRepo(), settings.NewStore(), persist, session.DemoVerifier{}, 0)
	store.Restore()

	_, ok := store.CurrentUser()
	assert.False(t, ok)

	// the corrupt record is removed, not kept around
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestLogout_RemovesPersistedRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	persist := session.NewFilePersistence(path)

	store := session.NewStore(seededRepo(), settings.NewStore(), persist, session.DemoVerifier{}, 0)
	_, err := store.Login(context.Background(), "raj.patel@grn.co.in", "demo123")
	require.NoError(t, err)

	store.Logout()
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
