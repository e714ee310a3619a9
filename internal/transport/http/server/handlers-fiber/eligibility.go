package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// GetEligibility reports the verdict for the logged-in user.
func (h *Handler) GetEligibility(c *fiber.Ctx) error {
	sess := sessionFromCtx(c)

	verdict, err := h.uc.Resolve(c.Context(), sess.Login, sess.Token)
	if err != nil {
		h.log.Errorw("failed to resolve eligibility", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Login    string `json:"login"`
		Eligible bool   `json:"eligible"`
		Org      string `json:"org,omitempty"`
		Repo     string `json:"repo,omitempty"`
	}{
		Login:    sess.Login,
		Eligible: verdict.Eligible,
		Org:      verdict.Org,
		Repo:     verdict.Repo,
	}

	return c.Status(http.StatusOK).JSON(resp)
}
