package handlers

import (
	"errors"
	"time"

	"rbx-staffhub/internal/adapters/http/middleware"
	"rbx-staffhub/internal/adapters/persistence/models"
	"rbx-staffhub/internal/config"
	"rbx-staffhub/internal/core/domain"
	"rbx-staffhub/internal/core/services"
	"rbx-staffhub/internal/pkg/jwt"
	"rbx-staffhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles verification and session endpoints
type AuthHandler struct {
	verifyService *services.VerificationService
	sessions      *services.SessionService
	cfg           *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(verifyService *services.VerificationService, sessions *services.SessionService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		verifyService: verifyService,
		sessions:      sessions,
		cfg:           cfg,
	}
}

// GenerateCodeRequest represents a code issuance request body
type GenerateCodeRequest struct {
	Username string `json:"username"`
}

// VerifyRequest represents a verification request body
type VerifyRequest struct {
	Username string `json:"username"`
}

// GenerateCode issues a verification code to place in the Roblox profile
// @Summary Generate verification code
// @Description Issues an 8-character code to place in the caller's Roblox profile text
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body GenerateCodeRequest true "Roblox username"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /auth/generate-code [post]
func (h *AuthHandler) GenerateCode(c *fiber.Ctx) error {
	var req GenerateCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Username == "" {
		return response.BadRequest(c, "Username is required")
	}

	issued, err := h.verifyService.GenerateCode(c.UserContext(), req.Username)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Username is required")
		case errors.Is(err, domain.ErrRobloxUserNotFound):
			return response.NotFound(c, "Roblox user not found")
		case errors.Is(err, domain.ErrIneligible):
			return response.Forbidden(c, "You must be ranked Supervisor or above to use this portal")
		default:
			return response.InternalServerError(c, "Failed to generate verification code")
		}
	}

	return response.Success(c, "Place this code in your Roblox profile, then verify", fiber.Map{
		"code":       issued.Code,
		"expires_at": issued.ExpiresAt,
	})
}

// Verify completes verification and opens a session
// @Summary Verify profile code
// @Description Checks the issued code against the caller's Roblox profile text and logs them in
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body VerifyRequest true "Roblox username"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /auth/verify [post]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Username == "" {
		return response.BadRequest(c, "Username is required")
	}

	account, sessionToken, err := h.verifyService.Verify(c.UserContext(), req.Username)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Username is required")
		case errors.Is(err, domain.ErrRobloxUserNotFound):
			return response.NotFound(c, "Roblox user not found")
		case errors.Is(err, domain.ErrIneligible):
			return response.Forbidden(c, "You must be ranked Supervisor or above to use this portal")
		case errors.Is(err, domain.ErrNoCodeFound):
			return response.BadRequest(c, "No active verification code; generate one first")
		case errors.Is(err, domain.ErrCodeExpired):
			return response.BadRequest(c, "Verification code expired; generate a new one")
		case errors.Is(err, domain.ErrCodeNotInProfile):
			return response.BadRequest(c, "Verification code not found in your profile text")
		default:
			return response.InternalServerError(c, "Verification failed")
		}
	}

	if err := h.setSessionCookie(c, sessionToken); err != nil {
		return response.InternalServerError(c, "Failed to establish session")
	}

	return response.Success(c, "Verification successful", fiber.Map{
		"user": account,
	})
}

// Me returns the calling account
// @Summary Current account
// @Description Returns the account bound to the session cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	account, ok := c.Locals(middleware.LocalAccount).(*models.Account)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	return response.Success(c, "Account retrieved successfully", fiber.Map{
		"user": account,
	})
}

// Logout destroys the session
// @Summary Logout
// @Description Destroys the server-side session and clears the cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if opaque, ok := c.Locals(middleware.LocalSessionID).(string); ok && opaque != "" {
		_ = h.sessions.Destroy(c.UserContext(), opaque)
	}

	h.clearSessionCookie(c)

	return response.Success(c, "Logged out successfully", nil)
}

// setSessionCookie wraps the opaque session token in a signed cookie
func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, sessionToken string) error {
	value, err := jwt.SignSessionCookie(sessionToken, h.cfg.Session.Secret, h.sessions.TTL())
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   h.cfg.Session.TTLDays * 24 * 60 * 60,
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})

	return nil
}

// clearSessionCookie clears the session cookie
func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-1 * time.Hour),
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}
