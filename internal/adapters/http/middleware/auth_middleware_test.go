package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"rbx-staffhub/internal/adapters/persistence/models"
	"rbx-staffhub/internal/adapters/persistence/repositories"
	"rbx-staffhub/internal/config"
	"rbx-staffhub/internal/core/services"
	"rbx-staffhub/internal/pkg/jwt"
)

type gateFixture struct {
	app      *fiber.App
	db       *gorm.DB
	sessions *services.SessionService
	cfg      *config.Config
}

func newGateFixture(t *testing.T) *gateFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	cfg := &config.Config{
		AppMode: "dev",
		Session: config.SessionConfig{
			Secret:     "test_secret",
			TTLDays:    30,
			CookieName: "staffhub_session",
		},
	}

	sessions := services.NewSessionService(
		repositories.NewSessionRepository(db),
		repositories.NewAccountRepository(db),
		cfg.Session.TTLDays,
	)

	app := fiber.New()

	requireSession := AuthMiddleware(sessions, cfg)

	app.Get("/me", requireSession, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"rank": c.Locals(LocalRankLabel)})
	})

	admin := app.Group("/admin", requireSession, PrivilegedOnly())
	admin.Get("/requests", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	return &gateFixture{app: app, db: db, sessions: sessions, cfg: cfg}
}

// loginAs creates an account plus live session and returns the signed cookie value
func (f *gateFixture) loginAs(t *testing.T, username, rankLabel string) string {
	t.Helper()

	account := &models.Account{
		RobloxUsername: username,
		RobloxUserID:   int64(len(username)) * 1000,
		RankLabel:      rankLabel,
		RankID:         200,
		Department:     "Operations",
		SubDepartment:  "General",
		VerifiedAt:     time.Now(),
		LastLoginAt:    time.Now(),
	}
	require.NoError(t, f.db.Create(account).Error)

	opaque, err := f.sessions.Create(context.Background(), account.ID)
	require.NoError(t, err)

	cookie, err := jwt.SignSessionCookie(opaque, f.cfg.Session.Secret, f.sessions.TTL())
	require.NoError(t, err)
	return cookie
}

func doRequest(t *testing.T, app *fiber.App, path, cookie string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "staffhub_session", Value: cookie})
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_NoCookie(t *testing.T) {
	f := newGateFixture(t)

	resp := doRequest(t, f.app, "/me", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TamperedCookie(t *testing.T) {
	f := newGateFixture(t)

	cookie := f.loginAs(t, "alice", "Supervisor")
	resp := doRequest(t, f.app, "/me", cookie+"x")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_CookieSignedWithWrongSecret(t *testing.T) {
	f := newGateFixture(t)

	forged, err := jwt.SignSessionCookie("some-token", "attacker_secret", time.Hour)
	require.NoError(t, err)

	resp := doRequest(t, f.app, "/me", forged)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ValidSessionPasses(t *testing.T) {
	f := newGateFixture(t)

	cookie := f.loginAs(t, "alice", "Supervisor")
	resp := doRequest(t, f.app, "/me", cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_DestroyedSessionRejected(t *testing.T) {
	f := newGateFixture(t)

	cookie := f.loginAs(t, "alice", "Supervisor")
	resp := doRequest(t, f.app, "/me", cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Recover the opaque token to log it out server-side, then replay the cookie.
	opaque, err := jwt.ParseSessionCookie(cookie, f.cfg.Session.Secret)
	require.NoError(t, err)
	require.NoError(t, f.sessions.Destroy(context.Background(), opaque))

	resp = doRequest(t, f.app, "/me", cookie)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestPrivilegedOnly_NonPrivilegedForbidden(t *testing.T) {
	f := newGateFixture(t)

	cookie := f.loginAs(t, "alice", "Supervisor")
	resp := doRequest(t, f.app, "/admin/requests", cookie)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestPrivilegedOnly_BoardAllowed(t *testing.T) {
	f := newGateFixture(t)

	cookie := f.loginAs(t, "bigboss", "Board of Directors")
	resp := doRequest(t, f.app, "/admin/requests", cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestPrivilegedOnly_ExecutiveBoardAllowed(t *testing.T) {
	f := newGateFixture(t)

	cookie := f.loginAs(t, "vicechair", "Executive Board")
	resp := doRequest(t, f.app, "/admin/requests", cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
