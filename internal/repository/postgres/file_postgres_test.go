package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contractapi/internal/model"
	"contractapi/internal/repository"
)

var fileRowColumns = []string{
	"id", "name", "type", "extension", "url", "size", "owner", "account_id", "users", "bucket_file_id",
	"contract_id", "contract_expiry_date", "status", "contract_name", "contract_type", "amount", "department",
	"vendor", "is_contract", "created_at", "updated_at",
}

func fileRow(id string, now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(fileRowColumns).AddRow(
		id, "Acme-Contract.pdf", "document", "pdf", "http://blob/files/x.pdf", 42, "U1", "A1", `["U1"]`, "files/x.pdf",
		nil, nil, nil, nil, nil, nil, nil, nil, false, now, now,
	)
}

func TestFilePostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewFilePostgres(db)
	now := time.Now().UTC()
	f := &model.File{
		ID:           "file-1",
		Name:         "Acme-Contract.pdf",
		Type:         "document",
		Extension:    "pdf",
		URL:          "http://blob/files/x.pdf",
		Size:         42,
		Owner:        "U1",
		AccountID:    "A1",
		Users:        []string{"U1"},
		BucketFileID: "files/x.pdf",
		CreatedAt:    now,
	}

	mock.ExpectQuery("INSERT INTO files").
		WithArgs(f.ID, f.Name, f.Type, f.Extension, f.URL, f.Size, f.Owner, f.AccountID, `["U1"]`, f.BucketFileID, now).
		WillReturnRows(fileRow("file-1", now))

	got, err := repo.Create(context.Background(), f)

	require.NoError(t, err)
	assert.Equal(t, "file-1", got.ID)
	assert.Equal(t, []string{"U1"}, got.Users)
	assert.Nil(t, got.ContractID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilePostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewFilePostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM files WHERE id = ").
			WithArgs("file-1").
			WillReturnRows(fileRow("file-1", time.Now()))

		f, err := repo.FindByID(ctx, "file-1")

		assert.NoError(t, err)
		assert.Equal(t, "file-1", f.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM files WHERE id = ").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		f, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, f)
	})
}

func TestFilePostgres_ListByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewFilePostgres(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM files").
		WithArgs("U1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT (.+) FROM files (.+) ORDER BY").
		WithArgs("U1", 10, 0).
		WillReturnRows(fileRow("file-1", time.Now()))

	res, err := repo.ListByOwner(context.Background(), "U1", repository.PageQuery{Limit: 10, Offset: 0})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Len(t, res.Items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilePostgres_SetContractFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewFilePostgres(db)
	ctx := context.Background()
	fields := model.FileContractFields{ContractID: "c-1", Status: "active", ContractName: "Acme Contract", ContractType: "Other"}

	t.Run("updated", func(t *testing.T) {
		mock.ExpectExec("UPDATE files").
			WithArgs("file-1", "c-1", nil, "active", "Acme Contract", "Other", nil, nil, nil).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.SetContractFields(ctx, "file-1", fields))
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectExec("UPDATE files").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.SetContractFields(ctx, "gone", fields), sql.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilePostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewFilePostgres(db)

	mock.ExpectExec("DELETE FROM files WHERE id = ").
		WithArgs("file-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), "file-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
