package service

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"contractapi/internal/messaging"
	"contractapi/internal/metrics"
	"contractapi/internal/model"
	"contractapi/internal/repository"
)

// DefaultInvitationTTL applies when no TTL is configured.
const DefaultInvitationTTL = 7 * 24 * time.Hour

var invitableRoles = []string{model.RoleExecutive, model.RoleManager, model.RoleAdmin, model.RoleUser}

// NewInvitation is the input to InvitationService.Create.
type NewInvitation struct {
	Email     string `json:"email"`
	OrgID     string `json:"orgId"`
	Role      string `json:"role"`
	Name      string `json:"name"`
	InvitedBy string `json:"invitedBy"`
}

// AcceptInvitation carries the identity of the user accepting an invitation.
type AcceptInvitation struct {
	UserID     string  `json:"userId"`
	FullName   string  `json:"fullName"`
	Department *string `json:"department,omitempty"`
}

// InvitationResult is an invitation plus the email outcome.
type InvitationResult struct {
	Invitation  *model.Invitation `json:"invitation"`
	SideEffects []Outcome         `json:"sideEffects"`
}

// InvitationService manages the pending -> accepted | revoked | expired lifecycle.
// Expiry is only evaluated on Accept.
type InvitationService interface {
	Create(ctx context.Context, in NewInvitation) (*InvitationResult, error)
	Resend(ctx context.Context, token string) (*model.Invitation, error)
	Revoke(ctx context.Context, token string) error
	Accept(ctx context.Context, token string, in AcceptInvitation) (*model.User, error)
}

type invitationService struct {
	invitations repository.InvitationRepository
	users       repository.UserRepository
	mailer      messaging.Mailer
	activities  ActivityService
	effects     sideEffects
	ttl         time.Duration
	now         func() time.Time
}

func NewInvitationService(
	invitations repository.InvitationRepository,
	users repository.UserRepository,
	mailer messaging.Mailer,
	activities ActivityService,
	ttl time.Duration,
	log *zap.Logger,
	m *metrics.Metrics,
) InvitationService {
	if ttl <= 0 {
		ttl = DefaultInvitationTTL
	}
	return &invitationService{
		invitations: invitations,
		users:       users,
		mailer:      mailer,
		activities:  activities,
		effects:     sideEffects{log: log, metrics: m},
		ttl:         ttl,
		now:         time.Now,
	}
}

func (s *invitationService) Create(ctx context.Context, in NewInvitation) (*InvitationResult, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEmail, err)
	}
	if !slices.Contains(invitableRoles, in.Role) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, in.Role)
	}

	token, err := newInvitationToken()
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	inv, err := s.invitations.Create(ctx, &model.Invitation{
		Token:     token,
		Email:     strings.ToLower(email),
		OrgID:     in.OrgID,
		Role:      in.Role,
		Name:      in.Name,
		ExpiresAt: now.Add(s.ttl),
		Status:    model.InvitationPending,
		CreatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create invitation: %w", err)
	}

	res := &InvitationResult{Invitation: inv}
	res.SideEffects = append(res.SideEffects, s.effects.run(ctx, "invite", "email", func(ctx context.Context) error {
		return s.mailer.SendInvitation(ctx, invitationEmail(inv, in.InvitedBy))
	}))
	return res, nil
}

// Resend pushes the expiry out by the TTL and sends the email again.
func (s *invitationService) Resend(ctx context.Context, token string) (*model.Invitation, error) {
	inv, err := s.pending(ctx, token)
	if err != nil {
		return nil, err
	}

	inv.ExpiresAt = s.now().UTC().Add(s.ttl)
	if err := s.invitations.Extend(ctx, token, inv.ExpiresAt); err != nil {
		return nil, fmt.Errorf("extend invitation: %w", err)
	}
	if err := s.mailer.SendInvitation(ctx, invitationEmail(inv, "")); err != nil {
		return nil, fmt.Errorf("send invitation email: %w", err)
	}
	return inv, nil
}

func (s *invitationService) Revoke(ctx context.Context, token string) error {
	if _, err := s.pending(ctx, token); err != nil {
		return err
	}
	return s.invitations.UpdateStatus(ctx, token, model.InvitationRevoked, true)
}

func (s *invitationService) Accept(ctx context.Context, token string, in AcceptInvitation) (*model.User, error) {
	inv, err := s.pending(ctx, token)
	if err != nil {
		return nil, err
	}

	if s.now().After(inv.ExpiresAt) {
		if err := s.invitations.UpdateStatus(ctx, token, model.InvitationExpired, false); err != nil {
			return nil, fmt.Errorf("mark invitation expired: %w", err)
		}
		return nil, ErrInvitationExpired
	}

	userID := in.UserID
	if userID == "" {
		userID = uuid.New().String()
	}
	name := in.FullName
	if name == "" {
		name = inv.Name
	}
	u, err := s.users.Create(ctx, &model.User{
		ID:         userID,
		FullName:   name,
		Email:      inv.Email,
		Role:       inv.Role,
		Department: in.Department,
		AccountID:  inv.OrgID,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	if err := s.invitations.UpdateStatus(ctx, token, model.InvitationAccepted, false); err != nil {
		return nil, fmt.Errorf("mark invitation accepted: %w", err)
	}

	_ = s.effects.run(ctx, "accept_invitation", "activity", func(ctx context.Context) error {
		_, err := s.activities.Log(ctx, NewActivity{
			Action:      "User Joined",
			Description: fmt.Sprintf("%s joined as %s", u.FullName, u.Role),
			UserID:      u.ID,
			UserName:    u.FullName,
			Department:  deref(u.Department),
			Type:        model.ActivityUser,
		})
		return err
	})
	return u, nil
}

// pending loads an invitation that can still change state.
func (s *invitationService) pending(ctx context.Context, token string) (*model.Invitation, error) {
	if token == "" {
		return nil, ErrIDRequired
	}
	inv, err := s.invitations.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}
	if inv.Revoked || inv.Status != model.InvitationPending {
		return nil, fmt.Errorf("%w: %s", ErrInvitationClosed, inv.Status)
	}
	return inv, nil
}

func invitationEmail(inv *model.Invitation, invitedBy string) messaging.InvitationEmail {
	return messaging.InvitationEmail{
		To:        inv.Email,
		Name:      inv.Name,
		Role:      inv.Role,
		Token:     inv.Token,
		InvitedBy: invitedBy,
	}
}

func newInvitationToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
