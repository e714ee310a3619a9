package usecase

import (
	"context"

	"github.com/jaimerodas/elixirschool/internal/entities"
)

// EligibilityUsecaseInterface abstracts contribution checks for delivery layer.
type EligibilityUsecaseInterface interface {
	// Resolve walks the configured catalog and reports whether login has
	// contributed to any of its repositories.
	Resolve(ctx context.Context, login, token string) (entities.Verdict, error)
}

// InviteUsecaseInterface abstracts invitation operations.
type InviteUsecaseInterface interface {
	RequestInvite(ctx context.Context, login, token, email string) (*entities.Invitation, error)
	Invitation(ctx context.Context, login string) (*entities.Invitation, error)
}
