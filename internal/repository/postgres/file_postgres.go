package postgres

import (
	"context"
	"database/sql"

	"contractapi/internal/model"
	"contractapi/internal/repository"
)

const fileColumns = `id, name, type, extension, url, size, owner, account_id, users, bucket_file_id,
	contract_id, contract_expiry_date, status, contract_name, contract_type, amount, department, vendor,
	is_contract, created_at, updated_at`

// FilePostgres is a PostgreSQL implementation of repository.FileRepository.
type FilePostgres struct {
	db *sql.DB
}

// NewFilePostgres creates a new FilePostgres repository.
func NewFilePostgres(db *sql.DB) *FilePostgres {
	return &FilePostgres{db: db}
}

var _ repository.FileRepository = (*FilePostgres)(nil)

func scanFile(s rowScanner) (*model.File, error) {
	var f model.File
	var users stringList
	if err := s.Scan(
		&f.ID,
		&f.Name,
		&f.Type,
		&f.Extension,
		&f.URL,
		&f.Size,
		&f.Owner,
		&f.AccountID,
		&users,
		&f.BucketFileID,
		&f.ContractID,
		&f.ContractExpiryDate,
		&f.Status,
		&f.ContractName,
		&f.ContractType,
		&f.Amount,
		&f.Department,
		&f.Vendor,
		&f.IsContract,
		&f.CreatedAt,
		&f.UpdatedAt,
	); err != nil {
		return nil, err
	}
	f.Users = users
	return &f, nil
}

// Create inserts a new file row and returns the stored record.
func (r *FilePostgres) Create(ctx context.Context, f *model.File) (*model.File, error) {
	const q = `
		INSERT INTO files (id, name, type, extension, url, size, owner, account_id, users, bucket_file_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING ` + fileColumns
	row := r.db.QueryRowContext(ctx, q,
		f.ID,
		f.Name,
		f.Type,
		f.Extension,
		f.URL,
		f.Size,
		f.Owner,
		f.AccountID,
		stringList(f.Users),
		f.BucketFileID,
		f.CreatedAt,
	)
	return scanFile(row)
}

// FindByID fetches a single file by its ID.
func (r *FilePostgres) FindByID(ctx context.Context, id string) (*model.File, error) {
	q := `SELECT ` + fileColumns + ` FROM files WHERE id = $1`
	return scanFile(r.db.QueryRowContext(ctx, q, id))
}

// ListByOwner returns files visible to owner, newest first, with a total count.
func (r *FilePostgres) ListByOwner(ctx context.Context, owner string, pq repository.PageQuery) (*repository.PageResult[model.File], error) {
	const where = ` WHERE ($1 = '' OR owner = $1 OR users ? $1)`

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM files`+where, owner).Scan(&total); err != nil {
		return nil, err
	}

	q := `SELECT ` + fileColumns + ` FROM files` + where + `
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, q, owner, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.File, 0)
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.File]{Items: items, Total: total}, nil
}

// SetContractFields writes the denormalized contract columns and flags the file as a contract.
func (r *FilePostgres) SetContractFields(ctx context.Context, id string, c model.FileContractFields) error {
	const q = `
		UPDATE files
		SET contract_id = $2, contract_expiry_date = $3, status = $4, contract_name = $5,
		    contract_type = $6, amount = $7, department = $8, vendor = $9, is_contract = TRUE,
		    updated_at = now()
		WHERE id = $1
	`
	return execOne(ctx, r.db, q, id,
		c.ContractID,
		c.ContractExpiryDate,
		c.Status,
		c.ContractName,
		c.ContractType,
		c.Amount,
		c.Department,
		c.Vendor,
	)
}

// MarkContract sets is_contract = true.
func (r *FilePostgres) MarkContract(ctx context.Context, id string) error {
	const q = `UPDATE files SET is_contract = TRUE, updated_at = now() WHERE id = $1`
	return execOne(ctx, r.db, q, id)
}

// Delete removes a file by ID. It does not return an error if the row does not exist.
func (r *FilePostgres) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM files WHERE id = $1`, id)
	return err
}
