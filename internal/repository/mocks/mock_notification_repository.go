package mocks

import (
	"context"

	"contractapi/internal/model"
	"contractapi/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	args := m.Called(ctx, n)
	if fn, ok := args.Get(0).(func(*model.Notification) *model.Notification); ok {
		return fn(n), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Notification), args.Error(1)
}

func (m *MockNotificationRepository) ListForUser(ctx context.Context, userID string, unreadOnly bool, pq repository.PageQuery) (*repository.PageResult[model.Notification], error) {
	args := m.Called(ctx, userID, unreadOnly, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Notification]), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationRepository) SetRead(ctx context.Context, id string, read bool) error {
	args := m.Called(ctx, id, read)
	return args.Error(0)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationRepository) ExistsExpiryReminder(ctx context.Context, contractID string, daysUntil int) (bool, error) {
	args := m.Called(ctx, contractID, daysUntil)
	return args.Bool(0), args.Error(1)
}

func (m *MockNotificationRepository) FindType(ctx context.Context, name string) (*model.NotificationType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NotificationType), args.Error(1)
}

func (m *MockNotificationRepository) FindSettings(ctx context.Context, userID string) (*model.NotificationSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NotificationSettings), args.Error(1)
}

func (m *MockNotificationRepository) UpsertSettings(ctx context.Context, s *model.NotificationSettings) (*model.NotificationSettings, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NotificationSettings), args.Error(1)
}
