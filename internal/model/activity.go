package model

import "time"

// Activity types.
const (
	ActivityFile     = "file"
	ActivityContract = "contract"
	ActivityEvent    = "event"
	ActivityUser     = "user"
)

// RecentActivity is an append-only, human-readable audit entry.
type RecentActivity struct {
	ID           string    `json:"id"`
	Action       string    `json:"action"`
	Description  string    `json:"description"`
	UserID       *string   `json:"user_id,omitempty"`
	UserName     *string   `json:"user_name,omitempty"`
	ContractID   *string   `json:"contract_id,omitempty"`
	ContractName *string   `json:"contract_name,omitempty"`
	EventID      *string   `json:"event_id,omitempty"`
	EventTitle   *string   `json:"event_title,omitempty"`
	Department   *string   `json:"department,omitempty"`
	Type         string    `json:"type"`
	Timestamp    time.Time `json:"timestamp"`
}
