package mocks

import (
	"context"

	"contractapi/internal/model"
	"contractapi/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) Create(ctx context.Context, c *model.Contract) (*model.Contract, error) {
	args := m.Called(ctx, c)
	if fn, ok := args.Get(0).(func(*model.Contract) *model.Contract); ok {
		return fn(c), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contract), args.Error(1)
}

func (m *MockContractRepository) FindByID(ctx context.Context, id string) (*model.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contract), args.Error(1)
}

func (m *MockContractRepository) FindByFileID(ctx context.Context, fileID string) (*model.Contract, error) {
	args := m.Called(ctx, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contract), args.Error(1)
}

func (m *MockContractRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Contract], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Contract]), args.Error(1)
}

func (m *MockContractRepository) ListWithExpiry(ctx context.Context) ([]model.Contract, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contract), args.Error(1)
}

func (m *MockContractRepository) UpdateAssignedManagers(ctx context.Context, id string, managers []string) error {
	args := m.Called(ctx, id, managers)
	return args.Error(0)
}

func (m *MockContractRepository) UpdateStatus(ctx context.Context, id, status string) (*model.Contract, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contract), args.Error(1)
}

func (m *MockContractRepository) Statuses(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
