package mocks

import (
	"context"

	"contractapi/internal/model"
	"contractapi/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockFileRepository struct {
	mock.Mock
}

func (m *MockFileRepository) Create(ctx context.Context, f *model.File) (*model.File, error) {
	args := m.Called(ctx, f)
	if fn, ok := args.Get(0).(func(*model.File) *model.File); ok {
		return fn(f), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.File), args.Error(1)
}

func (m *MockFileRepository) FindByID(ctx context.Context, id string) (*model.File, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.File), args.Error(1)
}

func (m *MockFileRepository) ListByOwner(ctx context.Context, owner string, pq repository.PageQuery) (*repository.PageResult[model.File], error) {
	args := m.Called(ctx, owner, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.File]), args.Error(1)
}

func (m *MockFileRepository) SetContractFields(ctx context.Context, id string, fields model.FileContractFields) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockFileRepository) MarkContract(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFileRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
