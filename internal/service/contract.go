package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"contractapi/internal/metadata"
	"contractapi/internal/metrics"
	"contractapi/internal/model"
	"contractapi/internal/repository"
)

// ContractResult is a contract after a mutation plus the side-effect outcomes.
type ContractResult struct {
	Contract    *model.Contract `json:"contract"`
	SideEffects []Outcome       `json:"sideEffects"`
}

// ContractListResult is the service-level DTO for paginated contracts.
type ContractListResult struct {
	Items []model.Contract `json:"data"`
	Total int              `json:"total"`
}

// Actor identifies who performed a change, for the activity feed.
type Actor struct {
	UserID   string
	UserName string
}

// ContractService mutates existing contracts.
type ContractService interface {
	// Assign sets the assigned managers. contractID is tried first; when it matches no
	// contract, fileID is used to find the contract created from that file.
	Assign(ctx context.Context, contractID string, managerIDs []string, fileID string, by Actor) (*ContractResult, error)
	UpdateStatus(ctx context.Context, contractID, status string, by Actor) (*ContractResult, error)
	Statuses(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id string) (*model.Contract, error)
	List(ctx context.Context, limit, offset int) (*ContractListResult, error)
}

type contractService struct {
	contracts     repository.ContractRepository
	files         repository.FileRepository
	users         repository.UserRepository
	notifications NotificationService
	activities    ActivityService
	effects       sideEffects
}

func NewContractService(
	contracts repository.ContractRepository,
	files repository.FileRepository,
	users repository.UserRepository,
	notifications NotificationService,
	activities ActivityService,
	log *zap.Logger,
	m *metrics.Metrics,
) ContractService {
	return &contractService{
		contracts:     contracts,
		files:         files,
		users:         users,
		notifications: notifications,
		activities:    activities,
		effects:       sideEffects{log: log, metrics: m},
	}
}

func (s *contractService) Assign(ctx context.Context, contractID string, managerIDs []string, fileID string, by Actor) (*ContractResult, error) {
	if contractID == "" && fileID == "" {
		return nil, ErrIDRequired
	}

	c, err := s.findForAssign(ctx, contractID, fileID)
	if err != nil {
		return nil, err
	}
	if !model.LooksLikeContract(c.ContractName) {
		return nil, fmt.Errorf("%w: %q", ErrNotAContract, c.ContractName)
	}

	res := &ContractResult{Contract: c}
	names, outcomes := resolveManagerNames(ctx, s.users, s.effects, "assign", managerIDs)
	res.SideEffects = append(res.SideEffects, outcomes...)

	if err := s.contracts.UpdateAssignedManagers(ctx, c.ID, names); err != nil {
		return nil, fmt.Errorf("update assigned managers: %w", err)
	}
	c.AssignedManagers = names

	// Not transactional with the write above.
	if err := s.files.MarkContract(ctx, c.FileID); err != nil {
		return nil, fmt.Errorf("mark file as contract: %w", err)
	}

	res.SideEffects = append(res.SideEffects, s.effects.run(ctx, "assign", "activity", func(ctx context.Context) error {
		_, err := s.activities.Log(ctx, NewActivity{
			Action:       "Contract Assigned",
			Description:  fmt.Sprintf("%s assigned to %s", c.ContractName, joinNames(names)),
			UserID:       by.UserID,
			UserName:     by.UserName,
			ContractID:   c.ID,
			ContractName: c.ContractName,
			Department:   deref(c.Department),
			Type:         model.ActivityContract,
		})
		return err
	}))

	for _, id := range managerIDs {
		res.SideEffects = append(res.SideEffects, s.effects.run(ctx, "assign", "notification", func(ctx context.Context) error {
			_, err := s.notifications.Notify(ctx, NewNotification{
				UserID:    id,
				Title:     "Contract Assigned",
				Message:   fmt.Sprintf("You have been assigned to %s.", c.ContractName),
				Type:      model.NotificationContractAssigned,
				ActionURL: optional("/contracts/" + c.ID),
				Metadata:  map[string]any{"contractId": c.ID},
			})
			return err
		}))
	}

	return res, nil
}

func (s *contractService) findForAssign(ctx context.Context, contractID, fileID string) (*model.Contract, error) {
	if contractID != "" {
		c, err := s.contracts.FindByID(ctx, contractID)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
	}
	if fileID == "" {
		return nil, ErrContractNotFound
	}
	c, err := s.contracts.FindByFileID(ctx, fileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *contractService) UpdateStatus(ctx context.Context, contractID, status string, by Actor) (*ContractResult, error) {
	if contractID == "" {
		return nil, ErrIDRequired
	}
	allowed, err := s.contracts.Statuses(ctx)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(allowed, status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	c, err := s.contracts.UpdateStatus(ctx, contractID, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}

	res := &ContractResult{Contract: c}
	res.SideEffects = append(res.SideEffects, s.effects.run(ctx, "status", "activity", func(ctx context.Context) error {
		_, err := s.activities.Log(ctx, NewActivity{
			Action:       "Contract Status Updated",
			Description:  fmt.Sprintf("%s status changed to %s", c.ContractName, status),
			UserID:       by.UserID,
			UserName:     by.UserName,
			ContractID:   c.ID,
			ContractName: c.ContractName,
			Department:   deref(c.Department),
			Type:         model.ActivityContract,
		})
		return err
	}))

	if status == model.ContractStatusRenewed && c.ContractExpiryDate != nil {
		res.SideEffects = append(res.SideEffects, s.effects.run(ctx, "status", "notification", func(ctx context.Context) error {
			return s.notifyRenewal(ctx, c)
		}))
	}
	return res, nil
}

// notifyRenewal tells the owner of the contract's file.
func (s *contractService) notifyRenewal(ctx context.Context, c *model.Contract) error {
	f, err := s.files.FindByID(ctx, c.FileID)
	if err != nil {
		return fmt.Errorf("find contract file: %w", err)
	}
	_, err = s.notifications.Notify(ctx, NewNotification{
		UserID:    f.Owner,
		Title:     "Contract Renewed",
		Message:   fmt.Sprintf("%s was renewed. Current expiry: %s.", c.ContractName, metadata.FormatExpiry(*c.ContractExpiryDate)[:10]),
		Type:      model.NotificationContractRenewed,
		ActionURL: optional("/contracts/" + c.ID),
		Metadata: map[string]any{
			"contractId": c.ID,
			"expiryDate": metadata.FormatExpiry(*c.ContractExpiryDate),
		},
	})
	return err
}

func (s *contractService) Statuses(ctx context.Context) ([]string, error) {
	return s.contracts.Statuses(ctx)
}

func (s *contractService) Get(ctx context.Context, id string) (*model.Contract, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	c, err := s.contracts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *contractService) List(ctx context.Context, limit, offset int) (*ContractListResult, error) {
	limit, offset = page(limit, offset)
	res, err := s.contracts.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ContractListResult{Items: res.Items, Total: res.Total}, nil
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return "nobody"
	case 1:
		return names[0]
	}
	out := names[0]
	for _, n := range names[1 : len(names)-1] {
		out += ", " + n
	}
	return out + " and " + names[len(names)-1]
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
