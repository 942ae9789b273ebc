package repository

import (
	"context"

	"contractapi/internal/model"
)

// NotificationRepository persists notifications, the type registry and user settings.
type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) (*model.Notification, error)
	ListForUser(ctx context.Context, userID string, unreadOnly bool, pq PageQuery) (*PageResult[model.Notification], error)
	CountUnread(ctx context.Context, userID string) (int, error)
	// SetRead returns sql.ErrNoRows when the notification does not exist.
	SetRead(ctx context.Context, id string, read bool) error
	Delete(ctx context.Context, id string) error
	// ExistsExpiryReminder reports whether a contract-expiry notification for the contract
	// and day count was already created.
	ExistsExpiryReminder(ctx context.Context, contractID string, daysUntil int) (bool, error)

	FindType(ctx context.Context, name string) (*model.NotificationType, error)

	FindSettings(ctx context.Context, userID string) (*model.NotificationSettings, error)
	UpsertSettings(ctx context.Context, s *model.NotificationSettings) (*model.NotificationSettings, error)
}
