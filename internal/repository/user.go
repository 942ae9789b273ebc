package repository

import (
	"context"

	"contractapi/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	ListByRoles(ctx context.Context, roles ...string) ([]model.User, error)
}
