package model

import "time"

// File is an uploaded blob plus its metadata. Contract fields are copied from the linked
// Contract at upload time so list views do not need a join.
type File struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Type               string     `json:"type"`
	Extension          string     `json:"extension"`
	URL                string     `json:"url"`
	Size               int64      `json:"size"`
	Owner              string     `json:"owner"`
	AccountID          string     `json:"account_id"`
	Users              []string   `json:"users"`
	BucketFileID       string     `json:"bucket_file_id"`
	ContractID         *string    `json:"contract_id,omitempty"`
	ContractExpiryDate *time.Time `json:"contract_expiry_date,omitempty"`
	Status             *string    `json:"status,omitempty"`
	ContractName       *string    `json:"contract_name,omitempty"`
	ContractType       *string    `json:"contract_type,omitempty"`
	Amount             *float64   `json:"amount,omitempty"`
	Department         *string    `json:"department,omitempty"`
	Vendor             *string    `json:"vendor,omitempty"`
	IsContract         bool       `json:"is_contract"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// FileContractFields is the denormalized subset written back onto a File once its
// Contract exists.
type FileContractFields struct {
	ContractID         string
	ContractExpiryDate *time.Time
	Status             string
	ContractName       string
	ContractType       string
	Amount             *float64
	Department         *string
	Vendor             *string
}
