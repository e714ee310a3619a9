package entities

import "time"

// Invitation records a Slack invite dispatched to an eligible contributor.
type Invitation struct {
	Login     string
	Email     string
	Org       string
	Repo      string
	InvitedAt time.Time
}
