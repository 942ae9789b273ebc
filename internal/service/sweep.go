package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"contractapi/internal/lock"
	"contractapi/internal/metadata"
	"contractapi/internal/metrics"
	"contractapi/internal/model"
	"contractapi/internal/repository"
)

const (
	sweepLockName = "expiry-sweep"
	sweepLockTTL  = 10 * time.Minute
)

// ExpirySweep sends reminder notifications for contracts whose expiry is exactly
// one of metadata.ReminderThresholds days away.
type ExpirySweep interface {
	// Run returns the number of notifications created.
	Run(ctx context.Context) (int, error)
}

type expirySweep struct {
	contracts     repository.ContractRepository
	users         repository.UserRepository
	notifications repository.NotificationRepository
	dispatcher    NotificationService
	locker        lock.Locker
	log           *zap.Logger
	metrics       *metrics.Metrics
	now           func() time.Time
}

func NewExpirySweep(
	contracts repository.ContractRepository,
	users repository.UserRepository,
	notifications repository.NotificationRepository,
	dispatcher NotificationService,
	locker lock.Locker,
	log *zap.Logger,
	m *metrics.Metrics,
) ExpirySweep {
	return &expirySweep{
		contracts:     contracts,
		users:         users,
		notifications: notifications,
		dispatcher:    dispatcher,
		locker:        locker,
		log:           log,
		metrics:       m,
		now:           time.Now,
	}
}

func (s *expirySweep) Run(ctx context.Context) (int, error) {
	release, err := s.locker.Acquire(ctx, sweepLockName, sweepLockTTL)
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			return 0, ErrSweepInProgress
		}
		return 0, fmt.Errorf("acquire sweep lock: %w", err)
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			s.log.Warn("expiry sweep: release lock failed", zap.Error(err))
		}
	}()

	created, err := s.sweep(ctx)
	s.metrics.SweepRun(err == nil, created)
	if err != nil {
		return created, err
	}
	s.log.Info("expiry sweep done", zap.Int("created", created))
	return created, nil
}

func (s *expirySweep) sweep(ctx context.Context) (int, error) {
	contracts, err := s.contracts.ListWithExpiry(ctx)
	if err != nil {
		return 0, fmt.Errorf("list contracts: %w", err)
	}
	users, err := s.users.ListByRoles(ctx, model.RoleExecutive, model.RoleManager, model.RoleAdmin)
	if err != nil {
		return 0, fmt.Errorf("list users: %w", err)
	}

	now := s.now()
	created := 0
	for i := range contracts {
		c := &contracts[i]
		days := metadata.DaysUntilExpiry(c.ContractExpiryDate, now)
		if days == nil || !metadata.IsReminderThreshold(*days) {
			continue
		}

		sent, err := s.notifications.ExistsExpiryReminder(ctx, c.ID, *days)
		if err != nil {
			s.log.Warn("expiry sweep: idempotency check failed", zap.String("contract_id", c.ID), zap.Error(err))
			continue
		}
		if sent {
			continue
		}

		for _, u := range users {
			if !eligibleForReminder(u, c) {
				continue
			}
			if _, err := s.dispatcher.Create(ctx, reminderFor(u, c, *days)); err != nil {
				s.log.Warn("expiry sweep: create notification failed",
					zap.String("contract_id", c.ID),
					zap.String("user_id", u.ID),
					zap.Error(err),
				)
				continue
			}
			created++
		}
	}
	return created, nil
}

// eligibleForReminder: executives and admins always, managers only for their department.
func eligibleForReminder(u model.User, c *model.Contract) bool {
	switch u.Role {
	case model.RoleExecutive, model.RoleAdmin:
		return true
	case model.RoleManager:
		return u.Department != nil && c.Department != nil && *u.Department == *c.Department
	default:
		return false
	}
}

func reminderFor(u model.User, c *model.Contract, days int) NewNotification {
	unit := "days"
	if days == 1 {
		unit = "day"
	}
	return NewNotification{
		UserID:    u.ID,
		Title:     "Contract Expiring Soon",
		Message:   fmt.Sprintf("%s expires in %d %s.", c.ContractName, days, unit),
		Type:      model.NotificationContractExpiry,
		Priority:  optional(reminderPriority(days)),
		ActionURL: optional("/contracts/" + c.ID),
		Metadata: map[string]any{
			"contractId":   c.ID,
			"contractName": c.ContractName,
			"daysUntil":    days,
			"expiryDate":   metadata.FormatExpiry(*c.ContractExpiryDate),
		},
	}
}
