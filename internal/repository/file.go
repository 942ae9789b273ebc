package repository

import (
	"context"

	"contractapi/internal/model"
)

// FileRepository persists uploaded file records. Missing rows surface as sql.ErrNoRows.
type FileRepository interface {
	Create(ctx context.Context, f *model.File) (*model.File, error)
	FindByID(ctx context.Context, id string) (*model.File, error)
	// ListByOwner returns files owned by or shared with owner. An empty owner lists everything.
	ListByOwner(ctx context.Context, owner string, pq PageQuery) (*PageResult[model.File], error)
	// SetContractFields copies the denormalized contract columns onto the file.
	SetContractFields(ctx context.Context, id string, fields model.FileContractFields) error
	// MarkContract sets is_contract on the file.
	MarkContract(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
