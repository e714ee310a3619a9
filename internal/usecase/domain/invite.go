package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/jaimerodas/elixirschool/internal/entities"
)

// RequestInvite resolves eligibility for login and, on success, dispatches
// a Slack invite to email and records it in the ledger. Each login is
// invited at most once.
func (u *Usecase) RequestInvite(ctx context.Context, login, token, email string) (*entities.Invitation, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if login == "" || token == "" || email == "" {
		return nil, fmt.Errorf("%w: login, token and email are required", entities.ErrInvalidArgument)
	}

	if _, err := u.repo.GetInvitation(ctx, login); err == nil {
		return nil, entities.ErrAlreadyInvited
	} else if !errors.Is(err, entities.ErrInvitationNotFound) {
		return nil, err
	}

	verdict, err := u.Resolve(ctx, login, token)
	if err != nil {
		return nil, err
	}
	if !verdict.Eligible {
		return nil, entities.ErrNotEligible
	}

	if err := u.inviter.Invite(ctx, email); err != nil {
		u.log.Errorw("invite dispatch failed", "login", login, "error", err)
		return nil, fmt.Errorf("%w: %s", entities.ErrInviteFailed, err)
	}

	inv, err := u.repo.CreateInvitation(ctx, entities.Invitation{
		Login: login,
		Email: email,
		Org:   verdict.Org,
		Repo:  verdict.Repo,
	})
	if err != nil {
		return nil, err
	}

	u.log.Infow("invite dispatched", "login", login, "org", inv.Org, "repo", inv.Repo)
	return inv, nil
}

// Invitation returns the ledger entry for a login.
func (u *Usecase) Invitation(ctx context.Context, login string) (*entities.Invitation, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if login == "" {
		return nil, fmt.Errorf("%w: login is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetInvitation(ctx, login)
}
