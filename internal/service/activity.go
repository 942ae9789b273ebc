package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"contractapi/internal/model"
	"contractapi/internal/repository"
)

// DefaultActivityRetain is how many activities Cleanup keeps.
const DefaultActivityRetain = 100

// NewActivity is the input to ActivityService.Log.
type NewActivity struct {
	Action       string
	Description  string
	UserID       string
	UserName     string
	ContractID   string
	ContractName string
	EventID      string
	EventTitle   string
	Department   string
	Type         string
}

// ActivityService appends and trims the recent activity feed.
type ActivityService interface {
	Log(ctx context.Context, a NewActivity) (*model.RecentActivity, error)
	Recent(ctx context.Context, limit int) ([]model.RecentActivity, error)
	// Cleanup deletes everything older than the newest keep entries, one row at a time.
	// A failed delete is logged and skipped. It returns the number of deleted rows.
	Cleanup(ctx context.Context, keep int) (int, error)
}

type activityService struct {
	repo repository.ActivityRepository
	log  *zap.Logger
	now  func() time.Time
}

func NewActivityService(repo repository.ActivityRepository, log *zap.Logger) ActivityService {
	return &activityService{repo: repo, log: log, now: time.Now}
}

func (s *activityService) Log(ctx context.Context, a NewActivity) (*model.RecentActivity, error) {
	typ := a.Type
	if typ == "" {
		typ = model.ActivityFile
	}
	return s.repo.Create(ctx, &model.RecentActivity{
		ID:           uuid.New().String(),
		Action:       a.Action,
		Description:  a.Description,
		UserID:       optional(a.UserID),
		UserName:     optional(a.UserName),
		ContractID:   optional(a.ContractID),
		ContractName: optional(a.ContractName),
		EventID:      optional(a.EventID),
		EventTitle:   optional(a.EventTitle),
		Department:   optional(a.Department),
		Type:         typ,
		Timestamp:    s.now().UTC(),
	})
}

func (s *activityService) Recent(ctx context.Context, limit int) ([]model.RecentActivity, error) {
	if limit <= 0 || limit > DefaultActivityRetain {
		limit = 10
	}
	return s.repo.Recent(ctx, limit)
}

func (s *activityService) Cleanup(ctx context.Context, keep int) (int, error) {
	if keep <= 0 {
		keep = DefaultActivityRetain
	}
	ids, err := s.repo.IDsBeyond(ctx, keep)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, id := range ids {
		if err := s.repo.Delete(ctx, id); err != nil {
			s.log.Warn("activity cleanup: delete failed", zap.String("id", id), zap.Error(err))
			continue
		}
		deleted++
	}
	if deleted > 0 {
		s.log.Info("activity cleanup done", zap.Int("deleted", deleted), zap.Int("kept", keep))
	}
	return deleted, nil
}

// optional maps "" to nil for nullable columns.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
