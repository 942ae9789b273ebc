package mocks

import (
	"context"

	"contractapi/internal/model"
	"contractapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockContractService struct {
	mock.Mock
}

func (m *MockContractService) Assign(ctx context.Context, contractID string, managerIDs []string, fileID string, by service.Actor) (*service.ContractResult, error) {
	args := m.Called(ctx, contractID, managerIDs, fileID, by)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ContractResult), args.Error(1)
}

func (m *MockContractService) UpdateStatus(ctx context.Context, contractID, status string, by service.Actor) (*service.ContractResult, error) {
	args := m.Called(ctx, contractID, status, by)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ContractResult), args.Error(1)
}

func (m *MockContractService) Statuses(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockContractService) Get(ctx context.Context, id string) (*model.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contract), args.Error(1)
}

func (m *MockContractService) List(ctx context.Context, limit, offset int) (*service.ContractListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ContractListResult), args.Error(1)
}

type MockExpirySweep struct {
	mock.Mock
}

func (m *MockExpirySweep) Run(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
