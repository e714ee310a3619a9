package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/jaimerodas/elixirschool/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// Error codes returned to clients.
const (
	CodeInvalidArgument    = "INVALID_ARGUMENT"
	CodeNotEligible        = "NOT_ELIGIBLE"
	CodeAlreadyInvited     = "ALREADY_INVITED"
	CodeInvitationNotFound = "INVITATION_NOT_FOUND"
	CodeSessionRequired    = "SESSION_REQUIRED"
	CodeInviteFailed       = "INVITE_FAILED"
	CodeOAuthFailed        = "OAUTH_FAILED"
	CodeInternal           = "INTERNAL"
)

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := CodeInternal
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = CodeInvalidArgument
		msg = err.Error()
	case errors.Is(err, entities.ErrNotEligible):
		status = http.StatusForbidden
		code = CodeNotEligible
		msg = "no contribution found in the configured repositories"
	case errors.Is(err, entities.ErrAlreadyInvited):
		status = http.StatusConflict
		code = CodeAlreadyInvited
		msg = "an invite was already sent for this login"
	case errors.Is(err, entities.ErrInvitationNotFound):
		status = http.StatusNotFound
		code = CodeInvitationNotFound
		msg = "no invitation for this login"
	case errors.Is(err, entities.ErrSessionNotFound):
		status = http.StatusUnauthorized
		code = CodeSessionRequired
		msg = "login required"
	case errors.Is(err, entities.ErrInviteFailed):
		status = http.StatusBadGateway
		code = CodeInviteFailed
		msg = "could not deliver the workspace invite"
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code, msg string) ErrorResponse {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = msg
	return resp
}
