package migration

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sentinelQuery = `SELECT to_regclass($1) IS NOT NULL`

func TestEnsureMigrated(t *testing.T) {
	ctx := context.Background()

	t.Run("schema exists", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(sentinelQuery)).
			WithArgs("public.contracts").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		assert.NoError(t, EnsureMigrated(ctx, db, zap.NewNop(), "localhost"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("runs every step", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(sentinelQuery)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		for _, s := range steps {
			mock.ExpectExec(regexp.QuoteMeta(s.SQL)).WillReturnResult(sqlmock.NewResult(0, 0))
		}

		assert.NoError(t, EnsureMigrated(ctx, db, zap.NewNop(), "localhost"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("step failure stops", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(sentinelQuery)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec(regexp.QuoteMeta(steps[0].SQL)).WillReturnError(errors.New("permission denied"))

		err = EnsureMigrated(ctx, db, zap.NewNop(), "localhost")

		assert.EqualError(t, err, "migration step create_table_users failed: permission denied")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sentinel query fails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(sentinelQuery)).WillReturnError(errors.New("conn refused"))

		err = EnsureMigrated(ctx, db, zap.NewNop(), "localhost")

		assert.ErrorContains(t, err, "failed to check sentinel table")
	})
}

func TestStepsSeedNotificationTypes(t *testing.T) {
	var seed string
	for _, s := range steps {
		if s.Name == "seed_notification_types" {
			seed = s.SQL
		}
	}
	for _, typ := range []string{"contract-expiry", "contract-renewed", "contract-assigned"} {
		assert.Contains(t, seed, typ)
	}
}
