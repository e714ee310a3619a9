// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotEligible signals the user has no contribution evidence.
	ErrNotEligible = errors.New("not eligible")
	// ErrAlreadyInvited signals a duplicate invite attempt for a login.
	ErrAlreadyInvited = errors.New("already invited")
	// ErrInvitationNotFound signals a missing invitation record.
	ErrInvitationNotFound = errors.New("invitation not found")
	// ErrSessionNotFound signals a missing or expired session.
	ErrSessionNotFound = errors.New("session not found")
	// ErrInviteFailed signals the workspace invite could not be delivered.
	ErrInviteFailed = errors.New("invite failed")
)
