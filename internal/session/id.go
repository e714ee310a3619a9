package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// NewID generates a cryptographically random identifier with 256 bits of
// entropy, used for both session IDs and OAuth state nonces.
func NewID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
