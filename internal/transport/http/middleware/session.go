package middleware

import (
	"net/http"

	"github.com/jaimerodas/elixirschool/internal/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	// CookieName is the browser session cookie.
	CookieName = "_extranet_session"
	// SessionKey is the fiber locals key holding the resolved *session.Session.
	SessionKey = "session"
)

// RequireSession resolves the session cookie against the store and rejects
// unauthenticated requests.
func RequireSession(log *zap.SugaredLogger, store session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(CookieName)
		if id == "" {
			return unauthorized(c)
		}

		sess, err := store.Get(c.Context(), id)
		if err != nil {
			log.Debugw("session lookup failed", "error", err)
			return unauthorized(c)
		}

		c.Locals(SessionKey, sess)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    "SESSION_REQUIRED",
			"message": "login required",
		},
	})
}
