// Package session stores authenticated browser sessions and OAuth state
// nonces between the login redirect and subsequent requests.
package session

import (
	"context"
	"time"
)

// Session carries the authenticated GitHub identity and its bearer token.
// The token lives only here for the session's TTL; nothing else persists it.
type Session struct {
	ID        string    `json:"id"`
	Login     string    `json:"login"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store defines how sessions and one-shot OAuth states are kept.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error

	// SaveState records an OAuth state nonce; ConsumeState validates and
	// burns it in one step.
	SaveState(ctx context.Context, state string) error
	ConsumeState(ctx context.Context, state string) error
}
