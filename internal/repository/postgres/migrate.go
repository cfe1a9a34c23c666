package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied idempotently at startup. The unique index on lower(email)
// is what makes registration's duplicate check atomic.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id              TEXT PRIMARY KEY,
		email           TEXT NOT NULL,
		name            TEXT NOT NULL,
		role            TEXT NOT NULL,
		password_hash   TEXT NOT NULL DEFAULT '',
		phone           TEXT NOT NULL DEFAULT '',
		work_group      TEXT NOT NULL DEFAULT '',
		profile_picture TEXT NOT NULL DEFAULT '',
		created_at      TIMESTAMPTZ NOT NULL,
		updated_at      TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_unique ON users (lower(email))`,
	`CREATE TABLE IF NOT EXISTS issues (
		id                 TEXT PRIMARY KEY,
		title              TEXT NOT NULL,
		description        TEXT NOT NULL,
		category           TEXT NOT NULL,
		status             TEXT NOT NULL,
		priority           TEXT NOT NULL,
		location           TEXT NOT NULL,
		photos             TEXT NOT NULL,
		reported_by        TEXT NOT NULL,
		assigned_to        TEXT NOT NULL DEFAULT '',
		work_group         TEXT NOT NULL DEFAULT '',
		estimated_cost     DOUBLE PRECISION NOT NULL DEFAULT 0,
		donation_goal      DOUBLE PRECISION NOT NULL DEFAULT 0,
		donations_received DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at         TIMESTAMPTZ NOT NULL,
		updated_at         TIMESTAMPTZ NOT NULL,
		resolved_at        TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS work_groups (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		description    TEXT NOT NULL,
		leader_id      TEXT NOT NULL,
		members        TEXT NOT NULL,
		area           TEXT NOT NULL DEFAULT '',
		specialization TEXT NOT NULL,
		contact_info   TEXT NOT NULL,
		category       TEXT NOT NULL DEFAULT '',
		is_active      BOOLEAN NOT NULL DEFAULT TRUE,
		created_at     TIMESTAMPTZ NOT NULL,
		updated_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id            TEXT PRIMARY KEY,
		title         TEXT NOT NULL,
		description   TEXT NOT NULL,
		work_group_id TEXT NOT NULL,
		assigned_to   TEXT NOT NULL DEFAULT '',
		status        TEXT NOT NULL,
		priority      TEXT NOT NULL,
		due_date      TEXT NOT NULL DEFAULT '',
		issue_id      TEXT NOT NULL DEFAULT '',
		created_by    TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL,
		completed_at  TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS activity_logs (
		id          TEXT PRIMARY KEY,
		type        TEXT NOT NULL,
		description TEXT NOT NULL,
		user_id     TEXT NOT NULL,
		related_id  TEXT NOT NULL DEFAULT '',
		before_data TEXT NOT NULL DEFAULT '',
		after_data  TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS tasks_work_group_idx ON tasks (work_group_id)`,
	`CREATE INDEX IF NOT EXISTS activity_logs_created_idx ON activity_logs (created_at DESC)`,
}

// EnsureSchema creates the tables if they do not exist yet
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
