// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/jaimerodas/elixirschool/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// InvitationInterface exposes the dispatched-invitation ledger.
type InvitationInterface interface {
	// CreateInvitation records a dispatched invite. A login can be invited
	// at most once; a second attempt returns entities.ErrAlreadyInvited.
	CreateInvitation(ctx context.Context, inv entities.Invitation) (*entities.Invitation, error)

	// GetInvitation returns the ledger row for a login, or
	// entities.ErrInvitationNotFound.
	GetInvitation(ctx context.Context, login string) (*entities.Invitation, error)
}
