package mocks

import (
	"context"

	"contractapi/internal/messaging"

	"github.com/stretchr/testify/mock"
)

type MockSMSSender struct {
	mock.Mock
}

func (m *MockSMSSender) Send(ctx context.Context, s messaging.SMS) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendInvitation(ctx context.Context, e messaging.InvitationEmail) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishNotification(ctx context.Context, ev messaging.NotificationEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
