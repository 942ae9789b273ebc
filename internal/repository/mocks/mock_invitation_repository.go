package mocks

import (
	"context"
	"time"

	"contractapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockInvitationRepository struct {
	mock.Mock
}

func (m *MockInvitationRepository) Create(ctx context.Context, inv *model.Invitation) (*model.Invitation, error) {
	args := m.Called(ctx, inv)
	if fn, ok := args.Get(0).(func(*model.Invitation) *model.Invitation); ok {
		return fn(inv), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invitation), args.Error(1)
}

func (m *MockInvitationRepository) FindByToken(ctx context.Context, token string) (*model.Invitation, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invitation), args.Error(1)
}

func (m *MockInvitationRepository) UpdateStatus(ctx context.Context, token, status string, revoked bool) error {
	args := m.Called(ctx, token, status, revoked)
	return args.Error(0)
}

func (m *MockInvitationRepository) Extend(ctx context.Context, token string, expiresAt time.Time) error {
	args := m.Called(ctx, token, expiresAt)
	return args.Error(0)
}
