package repository

import (
	"context"

	"contractapi/internal/model"
)

type ReportRepository interface {
	Create(ctx context.Context, r *model.Report) (*model.Report, error)
	FindByID(ctx context.Context, id string) (*model.Report, error)
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Report], error)
	Delete(ctx context.Context, id string) error
}
