package middleware

import (
	"rbx-staffhub/internal/config"
	"rbx-staffhub/internal/core/domain"
	"rbx-staffhub/internal/core/services"
	"rbx-staffhub/internal/pkg/jwt"
	"rbx-staffhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by AuthMiddleware
const (
	LocalAccountID = "accountID"
	LocalAccount   = "account"
	LocalRankLabel = "rankLabel"
	LocalSessionID = "sessionToken"
)

// AuthMiddleware resolves the session cookie to an account. The cookie
// carries a signed wrapper around the opaque session token; the session
// itself lives server-side and slides forward on every validated request.
func AuthMiddleware(sessions *services.SessionService, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cookieValue := c.Cookies(cfg.Session.CookieName)
		if cookieValue == "" {
			return response.Unauthorized(c, "Authentication required")
		}

		opaque, err := jwt.ParseSessionCookie(cookieValue, cfg.Session.Secret)
		if err != nil {
			return response.Unauthorized(c, "Invalid session")
		}

		_, account, err := sessions.Validate(c.UserContext(), opaque)
		if err != nil {
			if err == domain.ErrSessionExpired {
				return response.Unauthorized(c, "Session expired")
			}
			return response.Unauthorized(c, "Invalid session")
		}

		c.Locals(LocalAccountID, account.ID)
		c.Locals(LocalAccount, account)
		c.Locals(LocalRankLabel, account.RankLabel)
		c.Locals(LocalSessionID, opaque)

		return c.Next()
	}
}

// PrivilegedOnly allows only accounts whose rank label is in the
// privileged set (Board of Directors, Executive Board)
func PrivilegedOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		label, ok := c.Locals(LocalRankLabel).(string)
		if !ok {
			return response.Unauthorized(c, "Authentication required")
		}

		if !domain.IsPrivilegedLabel(label) {
			return response.Forbidden(c, "You don't have permission to access this resource")
		}

		return c.Next()
	}
}
