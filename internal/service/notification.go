package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"contractapi/internal/messaging"
	"contractapi/internal/metrics"
	"contractapi/internal/model"
	"contractapi/internal/repository"
)

// Default notification settings returned for users that never saved any.
const (
	DefaultFrequency = "instant"
)

// NewNotification is the input to NotificationService.Create and Notify.
type NewNotification struct {
	UserID    string         `json:"userId"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Type      string         `json:"type"`
	Priority  *string        `json:"priority,omitempty"`
	ActionURL *string        `json:"actionUrl,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// NotifyResult is a stored notification plus its fan-out outcomes.
type NotifyResult struct {
	Notification *model.Notification `json:"notification"`
	SideEffects  []Outcome           `json:"sideEffects"`
}

// NotificationListResult is the service-level DTO for paginated notifications.
type NotificationListResult struct {
	Items []model.Notification `json:"data"`
	Total int                  `json:"total"`
}

// NotificationService stores notifications and fans them out.
type NotificationService interface {
	// Create stores a notification without validating its type and without fan-out.
	Create(ctx context.Context, n NewNotification) (*model.Notification, error)
	// Notify validates the type against the registry, stores the notification, then
	// attempts SMS and event fan-out. Fan-out failures never undo the stored record.
	Notify(ctx context.Context, n NewNotification) (*NotifyResult, error)

	MarkRead(ctx context.Context, id string) error
	MarkUnread(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	ListForUser(ctx context.Context, userID string, unreadOnly bool, limit, offset int) (*NotificationListResult, error)
	UnreadCount(ctx context.Context, userID string) (int, error)

	GetSettings(ctx context.Context, userID string) (*model.NotificationSettings, error)
	UpsertSettings(ctx context.Context, s *model.NotificationSettings) (*model.NotificationSettings, error)
}

type notificationService struct {
	repo      repository.NotificationRepository
	sms       messaging.SMSSender
	publisher messaging.Publisher
	effects   sideEffects
	metrics   *metrics.Metrics
	log       *zap.Logger
	region    string
	now       func() time.Time
}

// NewNotificationService wires the dispatcher. phoneRegion is used to parse phone
// numbers saved without a country code; leave empty to require E.164 input.
func NewNotificationService(
	repo repository.NotificationRepository,
	sms messaging.SMSSender,
	publisher messaging.Publisher,
	phoneRegion string,
	log *zap.Logger,
	m *metrics.Metrics,
) NotificationService {
	return &notificationService{
		repo:      repo,
		sms:       sms,
		publisher: publisher,
		effects:   sideEffects{log: log, metrics: m},
		metrics:   m,
		log:       log,
		region:    phoneRegion,
		now:       time.Now,
	}
}

func (s *notificationService) Create(ctx context.Context, in NewNotification) (*model.Notification, error) {
	if in.UserID == "" {
		return nil, ErrUserRequired
	}
	stored, err := s.repo.Create(ctx, &model.Notification{
		ID:        uuid.New().String(),
		UserID:    in.UserID,
		Title:     in.Title,
		Message:   in.Message,
		Type:      in.Type,
		Read:      false,
		Priority:  in.Priority,
		ActionURL: in.ActionURL,
		Metadata:  in.Metadata,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	s.metrics.NotificationCreated(stored.Type)
	return stored, nil
}

func (s *notificationService) Notify(ctx context.Context, in NewNotification) (*NotifyResult, error) {
	nt, err := s.repo.FindType(ctx, in.Type)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownNotificationType, in.Type)
		}
		return nil, err
	}
	if !nt.Enabled {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNotificationType, in.Type)
	}

	stored, err := s.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	res := &NotifyResult{Notification: stored}
	res.SideEffects = append(res.SideEffects, s.sendSMS(ctx, stored))
	res.SideEffects = append(res.SideEffects, s.effects.run(ctx, "notify", "event", func(ctx context.Context) error {
		err := s.publisher.PublishNotification(ctx, messaging.NotificationEvent{
			ID:        stored.ID,
			UserID:    stored.UserID,
			Type:      stored.Type,
			Title:     stored.Title,
			CreatedAt: stored.CreatedAt,
		})
		s.metrics.EventPublished(err == nil)
		return err
	}))
	return res, nil
}

// sendSMS is a no-op unless the user enabled push and saved a phone number.
func (s *notificationService) sendSMS(ctx context.Context, n *model.Notification) Outcome {
	const effect = "sms"

	settings, err := s.repo.FindSettings(ctx, n.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.metrics.SMSAttempt("skipped")
			return Outcome{Effect: effect, OK: true}
		}
		s.metrics.SMSAttempt("failed")
		return s.effects.failed("notify", effect, fmt.Errorf("load settings: %w", err))
	}
	if !wantsSMS(settings, n.Type) {
		s.metrics.SMSAttempt("skipped")
		return Outcome{Effect: effect, OK: true}
	}

	to, err := messaging.NormalizePhone(*settings.PhoneNumber, s.region)
	if err != nil {
		s.metrics.SMSAttempt("failed")
		return s.effects.failed("notify", effect, err)
	}

	return s.effects.run(ctx, "notify", effect, func(ctx context.Context) error {
		err := s.sms.Send(ctx, messaging.SMS{To: to, Body: smsBody(n)})
		if err != nil {
			s.metrics.SMSAttempt("failed")
			return err
		}
		s.metrics.SMSAttempt("sent")
		s.log.Debug("sms sent", zap.String("notification_id", n.ID), zap.String("user_id", n.UserID))
		return nil
	})
}

// wantsSMS checks push_enabled, the phone number and the optional type allow-list.
func wantsSMS(st *model.NotificationSettings, typ string) bool {
	if st == nil || !st.PushEnabled || st.PhoneNumber == nil || *st.PhoneNumber == "" {
		return false
	}
	return len(st.NotificationTypes) == 0 || slices.Contains(st.NotificationTypes, typ)
}

func smsBody(n *model.Notification) string {
	if n.Message == "" {
		return n.Title
	}
	return n.Title + ": " + n.Message
}

func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	return s.setRead(ctx, id, true)
}

func (s *notificationService) MarkUnread(ctx context.Context, id string) error {
	return s.setRead(ctx, id, false)
}

func (s *notificationService) setRead(ctx context.Context, id string, read bool) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.repo.SetRead(ctx, id, read); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotificationNotFound
		}
		return err
	}
	return nil
}

func (s *notificationService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotificationNotFound
		}
		return err
	}
	return nil
}

func (s *notificationService) ListForUser(ctx context.Context, userID string, unreadOnly bool, limit, offset int) (*NotificationListResult, error) {
	if userID == "" {
		return nil, ErrUserRequired
	}
	limit, offset = page(limit, offset)
	res, err := s.repo.ListForUser(ctx, userID, unreadOnly, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &NotificationListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, ErrUserRequired
	}
	return s.repo.CountUnread(ctx, userID)
}

// GetSettings returns stored settings, or defaults when the user never saved any.
func (s *notificationService) GetSettings(ctx context.Context, userID string) (*model.NotificationSettings, error) {
	if userID == "" {
		return nil, ErrUserRequired
	}
	st, err := s.repo.FindSettings(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &model.NotificationSettings{
				UserID:            userID,
				EmailEnabled:      true,
				PushEnabled:       false,
				NotificationTypes: []string{},
				Frequency:         DefaultFrequency,
			}, nil
		}
		return nil, err
	}
	return st, nil
}

func (s *notificationService) UpsertSettings(ctx context.Context, st *model.NotificationSettings) (*model.NotificationSettings, error) {
	if st == nil || st.UserID == "" {
		return nil, ErrUserRequired
	}
	if st.Frequency == "" {
		st.Frequency = DefaultFrequency
	}
	if st.PhoneNumber != nil && *st.PhoneNumber != "" {
		normalized, err := messaging.NormalizePhone(*st.PhoneNumber, s.region)
		if err != nil {
			return nil, err
		}
		st.PhoneNumber = &normalized
	}
	return s.repo.UpsertSettings(ctx, st)
}

// page applies the default and bounds used by every list endpoint.
func page(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
