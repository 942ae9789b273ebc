package postgres

import (
	"context"
	"database/sql"

	"contractapi/internal/model"
	"contractapi/internal/repository"
)

const reportColumns = `id, title, description, type, created_by, bucket_file_id, created_at`

// ReportPostgres is a PostgreSQL implementation of repository.ReportRepository.
type ReportPostgres struct {
	db *sql.DB
}

// NewReportPostgres creates a new ReportPostgres repository.
func NewReportPostgres(db *sql.DB) *ReportPostgres {
	return &ReportPostgres{db: db}
}

var _ repository.ReportRepository = (*ReportPostgres)(nil)

func scanReport(s rowScanner) (*model.Report, error) {
	var rp model.Report
	if err := s.Scan(&rp.ID, &rp.Title, &rp.Description, &rp.Type, &rp.CreatedBy, &rp.BucketFileID, &rp.CreatedAt); err != nil {
		return nil, err
	}
	return &rp, nil
}

func (r *ReportPostgres) Create(ctx context.Context, rp *model.Report) (*model.Report, error) {
	const q = `
		INSERT INTO reports (id, title, description, type, created_by, bucket_file_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + reportColumns
	return scanReport(r.db.QueryRowContext(ctx, q,
		rp.ID, rp.Title, rp.Description, rp.Type, rp.CreatedBy, rp.BucketFileID, rp.CreatedAt,
	))
}

func (r *ReportPostgres) FindByID(ctx context.Context, id string) (*model.Report, error) {
	q := `SELECT ` + reportColumns + ` FROM reports WHERE id = $1`
	return scanReport(r.db.QueryRowContext(ctx, q, id))
}

func (r *ReportPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Report], error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reports`).Scan(&total); err != nil {
		return nil, err
	}

	q := `SELECT ` + reportColumns + ` FROM reports ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, q, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Report, 0)
	for rows.Next() {
		rp, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *rp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Report]{Items: items, Total: total}, nil
}

// Delete removes a report by ID. It does not return an error if the row does not exist.
func (r *ReportPostgres) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM reports WHERE id = $1`, id)
	return err
}
