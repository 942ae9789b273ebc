package model

import "time"

type Report struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description,omitempty"`
	Type         string    `json:"type"`
	CreatedBy    string    `json:"created_by"`
	BucketFileID *string   `json:"bucket_file_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
