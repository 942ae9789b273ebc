package model

import (
	"strings"
	"time"
)

// Contract statuses referenced by the service. The full set is stored in the
// contract_statuses table.
const (
	ContractStatusPendingReview  = "pending-review"
	ContractStatusActionRequired = "action-required"
	ContractStatusActive         = "active"
	ContractStatusInactive       = "inactive"
	ContractStatusRenewed        = "renewed"
)

// Contract is created from an uploaded File. AssignedManagers holds display names
// resolved at write time; they are not refreshed when a user is renamed.
type Contract struct {
	ID                 string     `json:"id"`
	ContractName       string     `json:"contract_name"`
	ContractExpiryDate *time.Time `json:"contract_expiry_date,omitempty"`
	Status             string     `json:"status"`
	Amount             *float64   `json:"amount,omitempty"`
	DaysUntilExpiry    *int       `json:"days_until_expiry,omitempty"`
	Compliance         string     `json:"compliance"`
	AssignedManagers   []string   `json:"assigned_managers"`
	Department         *string    `json:"department,omitempty"`
	ContractType       string     `json:"contract_type"`
	Vendor             *string    `json:"vendor,omitempty"`
	ContractNumber     *string    `json:"contract_number,omitempty"`
	Priority           string     `json:"priority"`
	Description        *string    `json:"description,omitempty"`
	FileID             string     `json:"file_id"`
	FileRef            string     `json:"file_ref"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// LooksLikeContract reports whether a name contains "contract", case-insensitively.
func LooksLikeContract(name string) bool {
	return strings.Contains(strings.ToLower(name), "contract")
}
