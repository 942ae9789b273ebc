package postgres

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"contractapi/internal/model"
	"contractapi/internal/repository"
)

const userColumns = `id, full_name, email, role, department, account_id`

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

func scanUser(s rowScanner) (*model.User, error) {
	var u model.User
	if err := s.Scan(&u.ID, &u.FullName, &u.Email, &u.Role, &u.Department, &u.AccountID); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserPostgres) Create(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		INSERT INTO users (id, full_name, email, role, department, account_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns
	return scanUser(r.db.QueryRowContext(ctx, q, u.ID, u.FullName, u.Email, u.Role, u.Department, u.AccountID))
}

func (r *UserPostgres) FindByID(ctx context.Context, id string) (*model.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, id))
}

// ListByRoles returns users holding any of the given roles.
func (r *UserPostgres) ListByRoles(ctx context.Context, roles ...string) ([]model.User, error) {
	if len(roles) == 0 {
		return []model.User{}, nil
	}
	placeholders := make([]string, len(roles))
	args := make([]any, len(roles))
	for i, role := range roles {
		placeholders[i] = "$" + strconv.Itoa(i+1)
		args[i] = role
	}
	q := `SELECT ` + userColumns + ` FROM users WHERE role IN (` + strings.Join(placeholders, ", ") + `) ORDER BY full_name`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}
