package repository

import (
	"context"

	"contractapi/internal/model"
)

type ActivityRepository interface {
	Create(ctx context.Context, a *model.RecentActivity) (*model.RecentActivity, error)
	// Recent returns the newest activities first.
	Recent(ctx context.Context, limit int) ([]model.RecentActivity, error)
	// IDsBeyond returns ids of every activity older than the newest keep entries.
	IDsBeyond(ctx context.Context, keep int) ([]string, error)
	Delete(ctx context.Context, id string) error
}
