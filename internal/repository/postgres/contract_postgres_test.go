package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var contractRowColumns = []string{
	"id", "contract_name", "contract_expiry_date", "status", "amount", "days_until_expiry", "compliance",
	"assigned_managers", "department", "contract_type", "vendor", "contract_number", "priority", "description",
	"file_id", "file_ref", "created_at", "updated_at",
}

func contractRows() *sqlmock.Rows {
	return sqlmock.NewRows(contractRowColumns)
}

func addContract(rows *sqlmock.Rows, id string, expiry any) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(
		id, "Acme Contract", expiry, "active", 1200.5, 15, "up-to-date",
		[]byte(`["Jane Doe"]`), "Legal", "Service_Agreement", nil, nil, "Medium", nil,
		"file-1", "file-1", now, now,
	)
}

func TestContractPostgres_FindByFileID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContractPostgres(db)

	mock.ExpectQuery("SELECT (.+) FROM contracts WHERE file_id = ").
		WithArgs("file-1").
		WillReturnRows(addContract(contractRows(), "c-1", time.Now()))

	c, err := repo.FindByFileID(context.Background(), "file-1")

	require.NoError(t, err)
	assert.Equal(t, "c-1", c.ID)
	assert.Equal(t, []string{"Jane Doe"}, c.AssignedManagers)
	require.NotNil(t, c.Department)
	assert.Equal(t, "Legal", *c.Department)
	require.NotNil(t, c.Amount)
	assert.Equal(t, 1200.5, *c.Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContractPostgres_ListWithExpiry(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContractPostgres(db)
	rows := contractRows()
	addContract(rows, "c-1", time.Now())
	addContract(rows, "c-2", time.Now().Add(48*time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM contracts WHERE contract_expiry_date IS NOT NULL").
		WillReturnRows(rows)

	items, err := repo.ListWithExpiry(context.Background())

	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContractPostgres_UpdateAssignedManagers(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContractPostgres(db)

	mock.ExpectExec("UPDATE contracts SET assigned_managers").
		WithArgs("c-1", `["Jane Doe","m-2"]`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdateAssignedManagers(context.Background(), "c-1", []string{"Jane Doe", "m-2"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContractPostgres_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContractPostgres(db)
	ctx := context.Background()

	t.Run("updated", func(t *testing.T) {
		mock.ExpectQuery("UPDATE contracts SET status").
			WithArgs("c-1", "renewed").
			WillReturnRows(addContract(contractRows(), "c-1", nil))

		c, err := repo.UpdateStatus(ctx, "c-1", "renewed")
		require.NoError(t, err)
		assert.Nil(t, c.ContractExpiryDate)
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectQuery("UPDATE contracts SET status").
			WithArgs("nope", "renewed").
			WillReturnRows(contractRows())

		_, err := repo.UpdateStatus(ctx, "nope", "renewed")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestContractPostgres_Statuses(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContractPostgres(db)

	mock.ExpectQuery("SELECT name FROM contract_statuses").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("pending-review").AddRow("active").AddRow("renewed"))

	got, err := repo.Statuses(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"pending-review", "active", "renewed"}, got)
}
