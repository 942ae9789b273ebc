package mocks

import (
	"context"

	"contractapi/internal/model"
	"contractapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Create(ctx context.Context, n service.NewNotification) (*model.Notification, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Notification), args.Error(1)
}

func (m *MockNotificationService) Notify(ctx context.Context, n service.NewNotification) (*service.NotifyResult, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.NotifyResult), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationService) MarkUnread(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationService) ListForUser(ctx context.Context, userID string, unreadOnly bool, limit, offset int) (*service.NotificationListResult, error) {
	args := m.Called(ctx, userID, unreadOnly, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.NotificationListResult), args.Error(1)
}

func (m *MockNotificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationService) GetSettings(ctx context.Context, userID string) (*model.NotificationSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NotificationSettings), args.Error(1)
}

func (m *MockNotificationService) UpsertSettings(ctx context.Context, s *model.NotificationSettings) (*model.NotificationSettings, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NotificationSettings), args.Error(1)
}
