package handlers_fiber

import (
	"net/http"
	"time"

	"github.com/jaimerodas/elixirschool/internal/session"
	"github.com/jaimerodas/elixirschool/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// Login starts the GitHub OAuth handshake.
func (h *Handler) Login(c *fiber.Ctx) error {
	state, err := session.NewID()
	if err != nil {
		h.log.Errorw("failed to generate oauth state", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(errorResponse(CodeInternal, "internal error"))
	}

	if err := h.sessions.SaveState(c.Context(), state); err != nil {
		h.log.Errorw("failed to save oauth state", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(errorResponse(CodeInternal, "internal error"))
	}

	return c.Redirect(h.oauth.AuthCodeURL(state), http.StatusFound)
}

// Callback completes the OAuth handshake and opens a session.
func (h *Handler) Callback(c *fiber.Ctx) error {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(CodeOAuthFailed, "missing code or state"))
	}

	if err := h.sessions.ConsumeState(c.Context(), state); err != nil {
		h.log.Warnw("oauth state rejected", "error", err)
		return c.Status(http.StatusBadRequest).JSON(errorResponse(CodeOAuthFailed, "state mismatch"))
	}

	res, err := h.oauth.Exchange(c.Context(), code)
	if err != nil {
		h.log.Errorw("oauth exchange failed", "error", err)
		return c.Status(http.StatusBadGateway).JSON(errorResponse(CodeOAuthFailed, "github login failed"))
	}

	id, err := session.NewID()
	if err != nil {
		h.log.Errorw("failed to generate session id", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(errorResponse(CodeInternal, "internal error"))
	}

	sess := session.Session{
		ID:        id,
		Login:     res.Login,
		Token:     res.Token,
		ExpiresAt: time.Now().Add(h.sessionTTL),
	}
	if err := h.sessions.Create(c.Context(), sess); err != nil {
		h.log.Errorw("failed to create session", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(errorResponse(CodeInternal, "internal error"))
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    id,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect("/eligibility", http.StatusFound)
}
