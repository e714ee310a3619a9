package handlers_fiber

import (
	"net/http"
	"time"

	"github.com/jaimerodas/elixirschool/internal/entities"

	"github.com/gofiber/fiber/v2"
)

type invitationResponse struct {
	Login     string    `json:"login"`
	Email     string    `json:"email"`
	Org       string    `json:"org"`
	Repo      string    `json:"repo"`
	InvitedAt time.Time `json:"invited_at"`
}

func toInvitationResponse(inv entities.Invitation) invitationResponse {
	return invitationResponse{
		Login:     inv.Login,
		Email:     inv.Email,
		Org:       inv.Org,
		Repo:      inv.Repo,
		InvitedAt: inv.InvitedAt,
	}
}

// PostInvite requests a workspace invite for the logged-in user.
func (h *Handler) PostInvite(c *fiber.Ctx) error {
	sess := sessionFromCtx(c)

	var body struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(CodeInvalidArgument, "invalid body"))
	}

	inv, err := h.uc.RequestInvite(c.Context(), sess.Login, sess.Token, body.Email)
	if err != nil {
		h.log.Errorw("failed to request invite", "login", sess.Login, "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Invitation invitationResponse `json:"invitation"`
	}{Invitation: toInvitationResponse(*inv)}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetMyInvitation returns the invite record for the logged-in user.
func (h *Handler) GetMyInvitation(c *fiber.Ctx) error {
	sess := sessionFromCtx(c)

	inv, err := h.uc.Invitation(c.Context(), sess.Login)
	if err != nil {
		return writeError(c, err)
	}

	resp := struct {
		Invitation invitationResponse `json:"invitation"`
	}{Invitation: toInvitationResponse(*inv)}
	return c.Status(http.StatusOK).JSON(resp)
}
