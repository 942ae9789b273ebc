package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is checked first; when it exists the schema is assumed current.
const sentinelTable = "public.contracts"

var steps = []migrationStep{
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id         TEXT PRIMARY KEY,
  full_name  TEXT NOT NULL,
  email      TEXT NOT NULL UNIQUE,
  role       TEXT NOT NULL,
  department TEXT,
  account_id TEXT NOT NULL DEFAULT ''
);`,
	},
	{
		Name: "create_index_users_role",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_users_role ON users (role);`,
	},
	{
		Name: "create_table_files",
		SQL: `CREATE TABLE IF NOT EXISTS files (
  id                   TEXT        PRIMARY KEY,
  name                 TEXT        NOT NULL,
  type                 TEXT        NOT NULL,
  extension            TEXT        NOT NULL DEFAULT '',
  url                  TEXT        NOT NULL,
  size                 BIGINT      NOT NULL CHECK (size >= 0),
  owner                TEXT        NOT NULL,
  account_id           TEXT        NOT NULL DEFAULT '',
  users                JSONB       NOT NULL DEFAULT '[]',
  bucket_file_id       TEXT        NOT NULL UNIQUE,
  contract_id          TEXT,
  contract_expiry_date TIMESTAMPTZ,
  status               TEXT,
  contract_name        TEXT,
  contract_type        TEXT,
  amount               DOUBLE PRECISION,
  department           TEXT,
  vendor               TEXT,
  is_contract          BOOLEAN     NOT NULL DEFAULT FALSE,
  created_at           TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at           TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_files_owner",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_files_owner ON files (owner);`,
	},
	{
		Name: "create_table_contract_statuses",
		SQL: `CREATE TABLE IF NOT EXISTS contract_statuses (
  name     TEXT    PRIMARY KEY,
  position INTEGER NOT NULL
);`,
	},
	{
		Name: "seed_contract_statuses",
		SQL: `INSERT INTO contract_statuses (name, position) VALUES
  ('pending-review', 1), ('action-required', 2), ('active', 3), ('inactive', 4), ('renewed', 5)
ON CONFLICT (name) DO NOTHING;`,
	},
	{
		Name: "create_table_contracts",
		SQL: `CREATE TABLE IF NOT EXISTS contracts (
  id                   TEXT        PRIMARY KEY,
  contract_name        TEXT        NOT NULL,
  contract_expiry_date TIMESTAMPTZ,
  status               TEXT        NOT NULL REFERENCES contract_statuses (name),
  amount               DOUBLE PRECISION,
  days_until_expiry    INTEGER,
  compliance           TEXT        NOT NULL,
  assigned_managers    JSONB       NOT NULL DEFAULT '[]',
  department           TEXT,
  contract_type        TEXT        NOT NULL,
  vendor               TEXT,
  contract_number      TEXT,
  priority             TEXT        NOT NULL,
  description          TEXT,
  file_id              TEXT        NOT NULL REFERENCES files (id) ON DELETE CASCADE,
  file_ref             TEXT        NOT NULL,
  created_at           TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at           TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_contracts_file_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_contracts_file_id ON contracts (file_id);`,
	},
	{
		Name: "create_index_contracts_expiry",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_contracts_expiry ON contracts (contract_expiry_date) WHERE contract_expiry_date IS NOT NULL;`,
	},
	{
		Name: "create_table_notification_types",
		SQL: `CREATE TABLE IF NOT EXISTS notification_types (
  name        TEXT    PRIMARY KEY,
  description TEXT    NOT NULL DEFAULT '',
  enabled     BOOLEAN NOT NULL DEFAULT TRUE
);`,
	},
	{
		Name: "seed_notification_types",
		SQL: `INSERT INTO notification_types (name, description) VALUES
  ('contract-expiry', 'A contract is approaching its expiry date'),
  ('contract-renewed', 'A contract was renewed'),
  ('contract-assigned', 'You were assigned to a contract')
ON CONFLICT (name) DO NOTHING;`,
	},
	{
		Name: "create_table_notifications",
		SQL: `CREATE TABLE IF NOT EXISTS notifications (
  id         TEXT        PRIMARY KEY,
  user_id    TEXT        NOT NULL,
  title      TEXT        NOT NULL,
  message    TEXT        NOT NULL DEFAULT '',
  type       TEXT        NOT NULL,
  read       BOOLEAN     NOT NULL DEFAULT FALSE,
  priority   TEXT,
  action_url TEXT,
  metadata   JSONB,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_notifications_user",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications (user_id, created_at DESC);`,
	},
	{
		Name: "create_index_notifications_expiry_key",
		SQL: `CREATE INDEX IF NOT EXISTS idx_notifications_expiry_key
  ON notifications (type, (metadata->>'contractId'), (metadata->>'daysUntil'));`,
	},
	{
		Name: "create_table_notification_settings",
		SQL: `CREATE TABLE IF NOT EXISTS notification_settings (
  user_id            TEXT        PRIMARY KEY,
  email_enabled      BOOLEAN     NOT NULL DEFAULT TRUE,
  push_enabled       BOOLEAN     NOT NULL DEFAULT FALSE,
  phone_number       TEXT,
  notification_types JSONB       NOT NULL DEFAULT '[]',
  frequency          TEXT        NOT NULL DEFAULT 'instant',
  updated_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_recent_activities",
		SQL: `CREATE TABLE IF NOT EXISTS recent_activities (
  id            TEXT        PRIMARY KEY,
  action        TEXT        NOT NULL,
  description   TEXT        NOT NULL DEFAULT '',
  user_id       TEXT,
  user_name     TEXT,
  contract_id   TEXT,
  contract_name TEXT,
  event_id      TEXT,
  event_title   TEXT,
  department    TEXT,
  type          TEXT        NOT NULL,
  timestamp     TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_recent_activities_timestamp",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_recent_activities_timestamp ON recent_activities (timestamp DESC, id DESC);`,
	},
	{
		Name: "create_table_invitations",
		SQL: `CREATE TABLE IF NOT EXISTS invitations (
  token      TEXT        PRIMARY KEY,
  email      TEXT        NOT NULL,
  org_id     TEXT        NOT NULL DEFAULT '',
  role       TEXT        NOT NULL,
  name       TEXT        NOT NULL DEFAULT '',
  expires_at TIMESTAMPTZ NOT NULL,
  status     TEXT        NOT NULL DEFAULT 'pending',
  revoked    BOOLEAN     NOT NULL DEFAULT FALSE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_reports",
		SQL: `CREATE TABLE IF NOT EXISTS reports (
  id             TEXT        PRIMARY KEY,
  title          TEXT        NOT NULL,
  description    TEXT,
  type           TEXT        NOT NULL DEFAULT 'general',
  created_by     TEXT        NOT NULL,
  bucket_file_id TEXT,
  created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
}

// EnsureMigrated creates the schema unless the sentinel table already exists.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger, dbHost string) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	log.Info("db_migration_check", zap.String("status", "starting"))

	var exists bool
	if err := db.QueryRowContext(ctx, "SELECT to_regclass($1) IS NOT NULL", sentinelTable).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.Error(err),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.String("reason", "schema already exists"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("status", "in_progress"), zap.Int("steps", len(steps)))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Debug("db_migration_step",
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success",
		zap.String("status", "success"),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return nil
}
