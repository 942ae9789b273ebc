package postgres

import (
	"context"
	"database/sql"
	"time"

	"contractapi/internal/model"
	"contractapi/internal/repository"
)

const invitationColumns = `token, email, org_id, role, name, expires_at, status, revoked, created_at`

// InvitationPostgres is a PostgreSQL implementation of repository.InvitationRepository.
type InvitationPostgres struct {
	db *sql.DB
}

// NewInvitationPostgres creates a new InvitationPostgres repository.
func NewInvitationPostgres(db *sql.DB) *InvitationPostgres {
	return &InvitationPostgres{db: db}
}

var _ repository.InvitationRepository = (*InvitationPostgres)(nil)

func scanInvitation(s rowScanner) (*model.Invitation, error) {
	var inv model.Invitation
	if err := s.Scan(
		&inv.Token,
		&inv.Email,
		&inv.OrgID,
		&inv.Role,
		&inv.Name,
		&inv.ExpiresAt,
		&inv.Status,
		&inv.Revoked,
		&inv.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvitationPostgres) Create(ctx context.Context, inv *model.Invitation) (*model.Invitation, error) {
	const q = `
		INSERT INTO invitations (token, email, org_id, role, name, expires_at, status, revoked, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + invitationColumns
	row := r.db.QueryRowContext(ctx, q,
		inv.Token,
		inv.Email,
		inv.OrgID,
		inv.Role,
		inv.Name,
		inv.ExpiresAt,
		inv.Status,
		inv.Revoked,
		inv.CreatedAt,
	)
	return scanInvitation(row)
}

func (r *InvitationPostgres) FindByToken(ctx context.Context, token string) (*model.Invitation, error) {
	q := `SELECT ` + invitationColumns + ` FROM invitations WHERE token = $1`
	return scanInvitation(r.db.QueryRowContext(ctx, q, token))
}

func (r *InvitationPostgres) UpdateStatus(ctx context.Context, token, status string, revoked bool) error {
	return execOne(ctx, r.db, `UPDATE invitations SET status = $2, revoked = $3 WHERE token = $1`, token, status, revoked)
}

func (r *InvitationPostgres) Extend(ctx context.Context, token string, expiresAt time.Time) error {
	return execOne(ctx, r.db, `UPDATE invitations SET expires_at = $2 WHERE token = $1`, token, expiresAt)
}
