package middleware_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grn-engineering/smartvend/backend/internal/application"
	"github.com/grn-engineering/smartvend/backend/internal/domain"
	"github.com/grn-engineering/smartvend/backend/internal/interfaces/http/middleware"
	"github.com/grn-engineering/smartvend/backend/internal/rbac"
	"github.com/grn-engineering/smartvend/backend/internal/session"
	"github.com/grn-engineering/smartvend/backend/internal/settings"
)

type stubUserRepo struct {
	byEmail map[string]*domain.User
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	r.byEmail[u.Email] = u
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, session.ErrInvalidCredentials
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, session.ErrInvalidCredentials
	}
	return u, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) { return nil, nil }
func (r *stubUserRepo) Update(_ context.Context, _ *domain.User) error { return nil }
func (r *stubUserRepo) Delete(_ context.Context, _ string) error       { return nil }

func newTestApp(t *testing.T) (*fiber.App, *application.AuthService) {
	t.Helper()

	repo := &stubUserRepo{byEmail: map[string]*domain.User{
		"h.sato@grn.co.jp": {
			ID:      "U004",
			Name:    "Hiroshi Sato",
			Email:   "h.sato@grn.co.jp",
			Role:    domain.RoleTechnician,
			Country: domain.CountryJapan,
			Status:  domain.UserStatusActive,
		},
		"raj.patel@grn.co.in": {
			ID:      "U001",
			Name:    "Raj Patel",
			Email:   "raj.patel@grn.co.in",
			Role:    domain.RoleAdmin,
			Country: domain.CountryIndia,
			Status:  domain.UserStatusActive,
		},
	}}

	sessions := session.NewStore(repo, settings.NewStore(), nil, session.DemoVerifier{}, 0)
	authService := application.NewAuthService(sessions, repo, "test-secret", "smartvend360", 1)
	authMiddleware := middleware.NewAuthMiddleware(authService)

	app := fiber.New()
	protected := app.Group("", authMiddleware.Authenticate())

	maintenance := protected.Group("/maintenance", authMiddleware.RequireSection(rbac.SectionMaintenance))
	maintenance.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	users := protected.Group("/users", authMiddleware.RequireSection(rbac.SectionUsers))
	users.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	return app, authService
}

func loginToken(t *testing.T, authService *application.AuthService, email string) string {
	t.Helper()
	result, err := authService.Login(context.Background(), email, "secret")
	require.NoError(t, err)
	return result.Token
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/maintenance/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "/login", body["redirect"])
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/maintenance/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "/login", body["redirect"])
}

func TestRequireSection_TechnicianAllowedMaintenance(t *testing.T) {
	app, authService := newTestApp(t)
	token := loginToken(t, authService, "h.sato@grn.co.jp")

	req := httptest.NewRequest(http.MethodGet, "/maintenance/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireSection_TechnicianDeniedUsers(t *testing.T) {
	app, authService := newTestApp(t)
	token := loginToken(t, authService, "h.sato@grn.co.jp")

	req := httptest.NewRequest(http.MethodGet, "/users/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "/dashboard", body["redirect"])
}

func TestRequireSection_AdminAllowedUsers(t *testing.T) {
	app, authService := newTestApp(t)
	token := loginToken(t, authService, "raj.patel@grn.co.in")

	req := httptest.NewRequest(http.MethodGet, "/users/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
