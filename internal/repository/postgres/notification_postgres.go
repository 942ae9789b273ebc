package postgres

import (
	"context"
	"database/sql"
	"strconv"

	"contractapi/internal/model"
	"contractapi/internal/repository"
)

const notificationColumns = `id, user_id, title, message, type, read, priority, action_url, metadata, created_at`

// NotificationPostgres is a PostgreSQL implementation of repository.NotificationRepository.
type NotificationPostgres struct {
	db *sql.DB
}

// NewNotificationPostgres creates a new NotificationPostgres repository.
func NewNotificationPostgres(db *sql.DB) *NotificationPostgres {
	return &NotificationPostgres{db: db}
}

var _ repository.NotificationRepository = (*NotificationPostgres)(nil)

func scanNotification(s rowScanner) (*model.Notification, error) {
	var n model.Notification
	var meta jsonObject
	if err := s.Scan(
		&n.ID,
		&n.UserID,
		&n.Title,
		&n.Message,
		&n.Type,
		&n.Read,
		&n.Priority,
		&n.ActionURL,
		&meta,
		&n.CreatedAt,
	); err != nil {
		return nil, err
	}
	n.Metadata = meta
	return &n, nil
}

// Create inserts a notification and returns the stored record.
func (r *NotificationPostgres) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	const q = `
		INSERT INTO notifications (id, user_id, title, message, type, read, priority, action_url, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + notificationColumns
	row := r.db.QueryRowContext(ctx, q,
		n.ID,
		n.UserID,
		n.Title,
		n.Message,
		n.Type,
		n.Read,
		n.Priority,
		n.ActionURL,
		jsonObject(n.Metadata),
		n.CreatedAt,
	)
	return scanNotification(row)
}

// ListForUser returns a user's notifications, newest first.
func (r *NotificationPostgres) ListForUser(ctx context.Context, userID string, unreadOnly bool, pq repository.PageQuery) (*repository.PageResult[model.Notification], error) {
	const where = ` WHERE user_id = $1 AND (NOT $2 OR read = FALSE)`

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notifications`+where, userID, unreadOnly).Scan(&total); err != nil {
		return nil, err
	}

	q := `SELECT ` + notificationColumns + ` FROM notifications` + where + `
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.db.QueryContext(ctx, q, userID, unreadOnly, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Notification]{Items: items, Total: total}, nil
}

// CountUnread returns how many unread notifications a user has.
func (r *NotificationPostgres) CountUnread(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = FALSE`, userID).Scan(&n)
	return n, err
}

// SetRead toggles the read flag.
func (r *NotificationPostgres) SetRead(ctx context.Context, id string, read bool) error {
	return execOne(ctx, r.db, `UPDATE notifications SET read = $2 WHERE id = $1`, id, read)
}

// Delete removes a notification; sql.ErrNoRows when it did not exist.
func (r *NotificationPostgres) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, `DELETE FROM notifications WHERE id = $1`, id)
}

// ExistsExpiryReminder looks up the (type, contractId, daysUntil) idempotency key.
func (r *NotificationPostgres) ExistsExpiryReminder(ctx context.Context, contractID string, daysUntil int) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM notifications
			WHERE type = $1 AND metadata->>'contractId' = $2 AND metadata->>'daysUntil' = $3
		)
	`
	var exists bool
	err := r.db.QueryRowContext(ctx, q, model.NotificationContractExpiry, contractID, strconv.Itoa(daysUntil)).Scan(&exists)
	return exists, err
}

// FindType looks up a notification type in the registry.
func (r *NotificationPostgres) FindType(ctx context.Context, name string) (*model.NotificationType, error) {
	var t model.NotificationType
	err := r.db.QueryRowContext(ctx,
		`SELECT name, description, enabled FROM notification_types WHERE name = $1`, name,
	).Scan(&t.Name, &t.Description, &t.Enabled)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

const settingsColumns = `user_id, email_enabled, push_enabled, phone_number, notification_types, frequency, updated_at`

func scanSettings(s rowScanner) (*model.NotificationSettings, error) {
	var st model.NotificationSettings
	var types stringList
	if err := s.Scan(
		&st.UserID,
		&st.EmailEnabled,
		&st.PushEnabled,
		&st.PhoneNumber,
		&types,
		&st.Frequency,
		&st.UpdatedAt,
	); err != nil {
		return nil, err
	}
	st.NotificationTypes = types
	return &st, nil
}

// FindSettings returns a user's settings or sql.ErrNoRows.
func (r *NotificationPostgres) FindSettings(ctx context.Context, userID string) (*model.NotificationSettings, error) {
	q := `SELECT ` + settingsColumns + ` FROM notification_settings WHERE user_id = $1`
	return scanSettings(r.db.QueryRowContext(ctx, q, userID))
}

// UpsertSettings creates the settings row if absent, otherwise updates it.
func (r *NotificationPostgres) UpsertSettings(ctx context.Context, s *model.NotificationSettings) (*model.NotificationSettings, error) {
	const q = `
		INSERT INTO notification_settings (user_id, email_enabled, push_enabled, phone_number, notification_types, frequency, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (user_id) DO UPDATE SET
			email_enabled = EXCLUDED.email_enabled,
			push_enabled = EXCLUDED.push_enabled,
			phone_number = EXCLUDED.phone_number,
			notification_types = EXCLUDED.notification_types,
			frequency = EXCLUDED.frequency,
			updated_at = now()
		RETURNING ` + settingsColumns
	row := r.db.QueryRowContext(ctx, q,
		s.UserID,
		s.EmailEnabled,
		s.PushEnabled,
		s.PhoneNumber,
		stringList(s.NotificationTypes),
		s.Frequency,
	)
	return scanSettings(row)
}
