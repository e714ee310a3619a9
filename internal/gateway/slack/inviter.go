// Package slack delivers workspace invitations.
package slack

import (
	"context"
	"fmt"

	"github.com/jaimerodas/elixirschool/internal/entities"

	slackapi "github.com/slack-go/slack"
	"go.uber.org/zap"
)

// Inviter sends a workspace invitation to an email address.
type Inviter interface {
	Invite(ctx context.Context, email string) error
}

// TeamInviter invites users to a Slack workspace.
type TeamInviter struct {
	log    *zap.SugaredLogger
	client *slackapi.Client
	team   string
}

// NewTeamInviter constructs the Slack inviter from workspace credentials.
func NewTeamInviter(log *zap.SugaredLogger, token, team string) (*TeamInviter, error) {
	if token == "" || team == "" {
		return nil, fmt.Errorf("slack token and team are required")
	}

	return &TeamInviter{
		log:    log.Named("gateway.slack"),
		client: slackapi.New(token),
		team:   team,
	}, nil
}

// Invite sends a single workspace invitation. One outbound call, no retries.
func (i *TeamInviter) Invite(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}

	if err := i.client.InviteToTeamContext(ctx, i.team, "", "", email); err != nil {
		i.log.Errorw("slack invite failed", "error", err)
		return fmt.Errorf("invite to team: %w", err)
	}

	i.log.Infow("slack invite sent", "team", i.team)
	return nil
}
