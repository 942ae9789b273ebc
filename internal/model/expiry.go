package model

import (
	"encoding/json"
	"time"
)

// ExpiryLayout is the wire format of contract expiry dates: UTC with milliseconds.
const ExpiryLayout = "2006-01-02T15:04:05.000Z"

func expiryString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(ExpiryLayout)
	return &s
}

// MarshalJSON writes contract_expiry_date in ExpiryLayout.
func (c Contract) MarshalJSON() ([]byte, error) {
	type alias Contract
	return json.Marshal(struct {
		alias
		ContractExpiryDate *string `json:"contract_expiry_date,omitempty"`
	}{alias(c), expiryString(c.ContractExpiryDate)})
}

// MarshalJSON writes contract_expiry_date in ExpiryLayout.
func (f File) MarshalJSON() ([]byte, error) {
	type alias File
	return json.Marshal(struct {
		alias
		ContractExpiryDate *string `json:"contract_expiry_date,omitempty"`
	}{alias(f), expiryString(f.ContractExpiryDate)})
}
