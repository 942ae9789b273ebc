package mocks

import (
	"context"

	"contractapi/internal/model"
	"contractapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) Log(ctx context.Context, a service.NewActivity) (*model.RecentActivity, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RecentActivity), args.Error(1)
}

func (m *MockActivityService) Recent(ctx context.Context, limit int) ([]model.RecentActivity, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RecentActivity), args.Error(1)
}

func (m *MockActivityService) Cleanup(ctx context.Context, keep int) (int, error) {
	args := m.Called(ctx, keep)
	return args.Int(0), args.Error(1)
}
