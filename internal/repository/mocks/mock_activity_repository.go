package mocks

import (
	"context"

	"contractapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, a *model.RecentActivity) (*model.RecentActivity, error) {
	args := m.Called(ctx, a)
	if fn, ok := args.Get(0).(func(*model.RecentActivity) *model.RecentActivity); ok {
		return fn(a), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RecentActivity), args.Error(1)
}

func (m *MockActivityRepository) Recent(ctx context.Context, limit int) ([]model.RecentActivity, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RecentActivity), args.Error(1)
}

func (m *MockActivityRepository) IDsBeyond(ctx context.Context, keep int) ([]string, error) {
	args := m.Called(ctx, keep)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockActivityRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
