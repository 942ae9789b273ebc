package mocks

import (
	"context"

	"contractapi/internal/model"
	"contractapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockInvitationService struct {
	mock.Mock
}

func (m *MockInvitationService) Create(ctx context.Context, in service.NewInvitation) (*service.InvitationResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.InvitationResult), args.Error(1)
}

func (m *MockInvitationService) Resend(ctx context.Context, token string) (*model.Invitation, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invitation), args.Error(1)
}

func (m *MockInvitationService) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockInvitationService) Accept(ctx context.Context, token string, in service.AcceptInvitation) (*model.User, error) {
	args := m.Called(ctx, token, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
