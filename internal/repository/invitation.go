package repository

import (
	"context"
	"time"

	"contractapi/internal/model"
)

type InvitationRepository interface {
	Create(ctx context.Context, inv *model.Invitation) (*model.Invitation, error)
	FindByToken(ctx context.Context, token string) (*model.Invitation, error)
	UpdateStatus(ctx context.Context, token, status string, revoked bool) error
	Extend(ctx context.Context, token string, expiresAt time.Time) error
}
