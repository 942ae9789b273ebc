package mocks

import (
	"context"
	"io"

	"contractapi/internal/model"
	"contractapi/internal/service"
	"contractapi/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Create(ctx context.Context, in service.NewReport) (*model.Report, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func (m *MockReportService) List(ctx context.Context, limit, offset int) (*service.ReportListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReportListResult), args.Error(1)
}

func (m *MockReportService) Download(ctx context.Context, id string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, storage.ObjectInfo{}, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}

func (m *MockReportService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
