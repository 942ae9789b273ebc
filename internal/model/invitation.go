package model

import "time"

// Invitation statuses.
const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationRevoked  = "revoked"
	InvitationExpired  = "expired"
)

// Invitation lets an email address join an organization with a role.
// Expiry is only evaluated when the invitation is accepted.
type Invitation struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	OrgID     string    `json:"org_id"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expires_at"`
	Status    string    `json:"status"`
	Revoked   bool      `json:"revoked"`
	CreatedAt time.Time `json:"created_at"`
}
