// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"time"

	"github.com/jaimerodas/elixirschool/internal/gateway/github"
	"github.com/jaimerodas/elixirschool/internal/session"
	"github.com/jaimerodas/elixirschool/internal/transport/http/middleware"
	"github.com/jaimerodas/elixirschool/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the login flow and the eligibility/invite API.
type Handler struct {
	log        *zap.SugaredLogger
	uc         usecase.InterfaceUsecase
	sessions   session.Store
	oauth      github.Authenticator
	sessionTTL time.Duration
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(
	log *zap.SugaredLogger,
	uc usecase.InterfaceUsecase,
	sessions session.Store,
	oauth github.Authenticator,
	sessionTTL time.Duration,
) *Handler {
	return &Handler{
		log:        log,
		uc:         uc,
		sessions:   sessions,
		oauth:      oauth,
		sessionTTL: sessionTTL,
	}
}

// RegisterRoutes mounts public auth routes and session-protected API routes.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/auth/login", h.Login)
	app.Get("/auth/callback", h.Callback)

	protected := app.Group("", middleware.RequireSession(h.log, h.sessions))
	protected.Get("/eligibility", h.GetEligibility)
	protected.Post("/invites", h.PostInvite)
	protected.Get("/invites/me", h.GetMyInvitation)
}

func sessionFromCtx(c *fiber.Ctx) *session.Session {
	sess, _ := c.Locals(middleware.SessionKey).(*session.Session)
	return sess
}
