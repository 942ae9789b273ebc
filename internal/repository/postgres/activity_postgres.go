package postgres

import (
	"context"
	"database/sql"

	"contractapi/internal/model"
	"contractapi/internal/repository"
)

const activityColumns = `id, action, description, user_id, user_name, contract_id, contract_name,
	event_id, event_title, department, type, timestamp`

// ActivityPostgres is a PostgreSQL implementation of repository.ActivityRepository.
type ActivityPostgres struct {
	db *sql.DB
}

// NewActivityPostgres creates a new ActivityPostgres repository.
func NewActivityPostgres(db *sql.DB) *ActivityPostgres {
	return &ActivityPostgres{db: db}
}

var _ repository.ActivityRepository = (*ActivityPostgres)(nil)

func scanActivity(s rowScanner) (*model.RecentActivity, error) {
	var a model.RecentActivity
	if err := s.Scan(
		&a.ID,
		&a.Action,
		&a.Description,
		&a.UserID,
		&a.UserName,
		&a.ContractID,
		&a.ContractName,
		&a.EventID,
		&a.EventTitle,
		&a.Department,
		&a.Type,
		&a.Timestamp,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create appends an activity entry.
func (r *ActivityPostgres) Create(ctx context.Context, a *model.RecentActivity) (*model.RecentActivity, error) {
	const q = `
		INSERT INTO recent_activities (id, action, description, user_id, user_name, contract_id, contract_name,
			event_id, event_title, department, type, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + activityColumns
	row := r.db.QueryRowContext(ctx, q,
		a.ID,
		a.Action,
		a.Description,
		a.UserID,
		a.UserName,
		a.ContractID,
		a.ContractName,
		a.EventID,
		a.EventTitle,
		a.Department,
		a.Type,
		a.Timestamp,
	)
	return scanActivity(row)
}

// Recent returns up to limit activities, newest first.
func (r *ActivityPostgres) Recent(ctx context.Context, limit int) ([]model.RecentActivity, error) {
	q := `SELECT ` + activityColumns + ` FROM recent_activities ORDER BY timestamp DESC, id DESC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.RecentActivity, 0)
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// IDsBeyond lists the ids that fall outside the newest keep activities.
func (r *ActivityPostgres) IDsBeyond(ctx context.Context, keep int) ([]string, error) {
	const q = `SELECT id FROM recent_activities ORDER BY timestamp DESC, id DESC OFFSET $1`
	rows, err := r.db.QueryContext(ctx, q, keep)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Delete removes one activity entry.
func (r *ActivityPostgres) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM recent_activities WHERE id = $1`, id)
	return err
}
