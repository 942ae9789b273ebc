package postgres

import (
	"context"
	"database/sql"
)

// execOne runs an UPDATE/DELETE and reports sql.ErrNoRows when nothing matched.
func execOne(ctx context.Context, db *sql.DB, q string, args ...any) error {
	res, err := db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
