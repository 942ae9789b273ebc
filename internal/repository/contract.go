package repository

import (
	"context"

	"contractapi/internal/model"
)

// ContractRepository persists contracts. Missing rows surface as sql.ErrNoRows.
type ContractRepository interface {
	Create(ctx context.Context, c *model.Contract) (*model.Contract, error)
	FindByID(ctx context.Context, id string) (*model.Contract, error)
	FindByFileID(ctx context.Context, fileID string) (*model.Contract, error)
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Contract], error)
	// ListWithExpiry returns every contract that has an expiry date.
	ListWithExpiry(ctx context.Context) ([]model.Contract, error)
	UpdateAssignedManagers(ctx context.Context, id string, managers []string) error
	// UpdateStatus returns sql.ErrNoRows when no contract has the id.
	UpdateStatus(ctx context.Context, id, status string) (*model.Contract, error)
	// Statuses lists the allowed status values from the contract_statuses table.
	Statuses(ctx context.Context) ([]string, error)
}
