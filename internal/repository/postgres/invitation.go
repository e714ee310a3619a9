package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jaimerodas/elixirschool/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertInvitationQuery = `
INSERT INTO invitations (login, email, org, repo)
VALUES ($1, $2, $3, $4)
ON CONFLICT (login) DO NOTHING
RETURNING login, email, org, repo, invited_at`

	selectInvitationQuery = `
SELECT login, email, org, repo, invited_at
FROM invitations
WHERE login = $1`
)

// CreateInvitation records a dispatched invite, once per login.
func (p *Postgres) CreateInvitation(ctx context.Context, inv entities.Invitation) (*entities.Invitation, error) {
	var created entities.Invitation
	err := p.db.QueryRow(ctx, insertInvitationQuery, inv.Login, inv.Email, inv.Org, inv.Repo).
		Scan(&created.Login, &created.Email, &created.Org, &created.Repo, &created.InvitedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrAlreadyInvited
		}

		p.log.Errorw("failed to create invitation", "error", err, "login", inv.Login)
		return nil, fmt.Errorf("create invitation: %w", err)
	}

	p.log.Infow("invitation recorded", "login", created.Login, "org", created.Org, "repo", created.Repo)
	return &created, nil
}

// GetInvitation returns the ledger row for a login.
func (p *Postgres) GetInvitation(ctx context.Context, login string) (*entities.Invitation, error) {
	var inv entities.Invitation
	err := p.db.QueryRow(ctx, selectInvitationQuery, login).
		Scan(&inv.Login, &inv.Email, &inv.Org, &inv.Repo, &inv.InvitedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrInvitationNotFound
		}

		p.log.Errorw("failed to get invitation", "error", err, "login", login)
		return nil, fmt.Errorf("get invitation: %w", err)
	}

	return &inv, nil
}
