package postgres

import (
	"context"
	"database/sql"

	"contractapi/internal/model"
	"contractapi/internal/repository"
)

const contractColumns = `id, contract_name, contract_expiry_date, status, amount, days_until_expiry, compliance,
	assigned_managers, department, contract_type, vendor, contract_number, priority, description,
	file_id, file_ref, created_at, updated_at`

// ContractPostgres is a PostgreSQL implementation of repository.ContractRepository.
type ContractPostgres struct {
	db *sql.DB
}

// NewContractPostgres creates a new ContractPostgres repository.
func NewContractPostgres(db *sql.DB) *ContractPostgres {
	return &ContractPostgres{db: db}
}

var _ repository.ContractRepository = (*ContractPostgres)(nil)

func scanContract(s rowScanner) (*model.Contract, error) {
	var c model.Contract
	var managers stringList
	if err := s.Scan(
		&c.ID,
		&c.ContractName,
		&c.ContractExpiryDate,
		&c.Status,
		&c.Amount,
		&c.DaysUntilExpiry,
		&c.Compliance,
		&managers,
		&c.Department,
		&c.ContractType,
		&c.Vendor,
		&c.ContractNumber,
		&c.Priority,
		&c.Description,
		&c.FileID,
		&c.FileRef,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	c.AssignedManagers = managers
	return &c, nil
}

func (r *ContractPostgres) queryContracts(ctx context.Context, q string, args ...any) ([]model.Contract, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Contract, 0)
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new contract row and returns the stored record.
func (r *ContractPostgres) Create(ctx context.Context, c *model.Contract) (*model.Contract, error) {
	const q = `
		INSERT INTO contracts (id, contract_name, contract_expiry_date, status, amount, days_until_expiry,
			compliance, assigned_managers, department, contract_type, vendor, contract_number, priority,
			description, file_id, file_ref, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $17)
		RETURNING ` + contractColumns
	row := r.db.QueryRowContext(ctx, q,
		c.ID,
		c.ContractName,
		c.ContractExpiryDate,
		c.Status,
		c.Amount,
		c.DaysUntilExpiry,
		c.Compliance,
		stringList(c.AssignedManagers),
		c.Department,
		c.ContractType,
		c.Vendor,
		c.ContractNumber,
		c.Priority,
		c.Description,
		c.FileID,
		c.FileRef,
		c.CreatedAt,
	)
	return scanContract(row)
}

// FindByID fetches a single contract by its ID.
func (r *ContractPostgres) FindByID(ctx context.Context, id string) (*model.Contract, error) {
	q := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1`
	return scanContract(r.db.QueryRowContext(ctx, q, id))
}

// FindByFileID fetches the contract created from the given file.
func (r *ContractPostgres) FindByFileID(ctx context.Context, fileID string) (*model.Contract, error) {
	q := `SELECT ` + contractColumns + ` FROM contracts WHERE file_id = $1 ORDER BY created_at DESC LIMIT 1`
	return scanContract(r.db.QueryRowContext(ctx, q, fileID))
}

// List returns contracts using LIMIT/OFFSET pagination and a total count.
func (r *ContractPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Contract], error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contracts`).Scan(&total); err != nil {
		return nil, err
	}

	q := `SELECT ` + contractColumns + ` FROM contracts ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	items, err := r.queryContracts(ctx, q, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Contract]{Items: items, Total: total}, nil
}

// ListWithExpiry returns all contracts with a non-null expiry date.
func (r *ContractPostgres) ListWithExpiry(ctx context.Context) ([]model.Contract, error) {
	q := `SELECT ` + contractColumns + ` FROM contracts WHERE contract_expiry_date IS NOT NULL ORDER BY contract_expiry_date`
	return r.queryContracts(ctx, q)
}

// UpdateAssignedManagers replaces the assigned manager names.
func (r *ContractPostgres) UpdateAssignedManagers(ctx context.Context, id string, managers []string) error {
	const q = `UPDATE contracts SET assigned_managers = $2, updated_at = now() WHERE id = $1`
	return execOne(ctx, r.db, q, id, stringList(managers))
}

// UpdateStatus sets the status and returns the updated contract.
func (r *ContractPostgres) UpdateStatus(ctx context.Context, id, status string) (*model.Contract, error) {
	q := `UPDATE contracts SET status = $2, updated_at = now() WHERE id = $1 RETURNING ` + contractColumns
	return scanContract(r.db.QueryRowContext(ctx, q, id, status))
}

// Statuses returns the allowed contract statuses in display order.
func (r *ContractPostgres) Statuses(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM contract_statuses ORDER BY position, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
