package model

import "time"

// Notification types emitted by the service itself.
const (
	NotificationContractExpiry   = "contract-expiry"
	NotificationContractRenewed  = "contract-renewed"
	NotificationContractAssigned = "contract-assigned"
)

// Notification is shown in a user's notification center. After creation only
// Read changes.
type Notification struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Type      string         `json:"type"`
	Read      bool           `json:"read"`
	Priority  *string        `json:"priority,omitempty"`
	ActionURL *string        `json:"action_url,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// NotificationType is an entry of the notification type registry.
type NotificationType struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

// NotificationSettings are per-user delivery preferences.
type NotificationSettings struct {
	UserID            string    `json:"user_id"`
	EmailEnabled      bool      `json:"email_enabled"`
	PushEnabled       bool      `json:"push_enabled"`
	PhoneNumber       *string   `json:"phone_number,omitempty"`
	NotificationTypes []string  `json:"notification_types"`
	Frequency         string    `json:"frequency"`
	UpdatedAt         time.Time `json:"updated_at"`
}
