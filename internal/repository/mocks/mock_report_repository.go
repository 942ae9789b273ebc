package mocks

import (
	"context"

	"contractapi/internal/model"
	"contractapi/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(ctx context.Context, r *model.Report) (*model.Report, error) {
	args := m.Called(ctx, r)
	if fn, ok := args.Get(0).(func(*model.Report) *model.Report); ok {
		return fn(r), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func (m *MockReportRepository) FindByID(ctx context.Context, id string) (*model.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func (m *MockReportRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Report], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Report]), args.Error(1)
}

func (m *MockReportRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
