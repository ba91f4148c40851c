package db

import (
	"context"
	"database/sql"
	"log/slog"
)

// schemaStatements run in dependency order: tables without foreign keys
// first, then managers, then everything referencing managers/students.
var schemaStatements = []struct {
	name string
	stmt string
}{
	{"teams", `CREATE TABLE IF NOT EXISTS teams (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		department TEXT NOT NULL,
		logo_key TEXT,
		logo_url TEXT,
		color TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
	{"sports", `CREATE TABLE IF NOT EXISTS sports (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
	{"managers", `CREATE TABLE IF NOT EXISTS managers (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		department TEXT NOT NULL,
		sport TEXT NOT NULL,
		contact TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		student_count INTEGER NOT NULL CHECK (student_count > 0),
		team_id INTEGER REFERENCES teams(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
	{"students", `CREATE TABLE IF NOT EXISTS students (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		prn_uid TEXT NOT NULL UNIQUE,
		contact TEXT NOT NULL,
		email TEXT,
		address TEXT,
		birth_date DATE NOT NULL,
		age INTEGER NOT NULL,
		manager_id INTEGER NOT NULL REFERENCES managers(id) ON DELETE CASCADE,
		link_token TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
	{"students_manager_id_idx", `CREATE INDEX IF NOT EXISTS students_manager_id_idx ON students(manager_id)`},
	{"coaches", `CREATE TABLE IF NOT EXISTS coaches (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		contact TEXT NOT NULL,
		email TEXT,
		specialization TEXT,
		manager_id INTEGER NOT NULL REFERENCES managers(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
	{"coaches_manager_id_idx", `CREATE INDEX IF NOT EXISTS coaches_manager_id_idx ON coaches(manager_id)`},
	{"student_selections", `CREATE TABLE IF NOT EXISTS student_selections (
		id SERIAL PRIMARY KEY,
		student_id INTEGER NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		manager_id INTEGER NOT NULL REFERENCES managers(id) ON DELETE CASCADE,
		is_selected BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (student_id, manager_id)
	)`},
	{"event_images", `CREATE TABLE IF NOT EXISTS event_images (
		id SERIAL PRIMARY KEY,
		title TEXT,
		description TEXT,
		image_key TEXT NOT NULL,
		image_url TEXT NOT NULL,
		display_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
	{"notices", `CREATE TABLE IF NOT EXISTS notices (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		document_key TEXT,
		document_url TEXT,
		schedule_image_key TEXT,
		schedule_image_url TEXT,
		notice_date DATE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
	{"student_links", `CREATE TABLE IF NOT EXISTS student_links (
		id SERIAL PRIMARY KEY,
		manager_id INTEGER NOT NULL REFERENCES managers(id) ON DELETE CASCADE,
		token TEXT NOT NULL UNIQUE,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
}

// Bootstrap creates the schema if it does not exist. A failed statement is
// logged and skipped rather than aborting startup; a missing table surfaces
// later as a query error on first use.
func Bootstrap(ctx context.Context, db *sql.DB, logger *slog.Logger) {
	for _, s := range schemaStatements {
		if _, err := db.ExecContext(ctx, s.stmt); err != nil {
			logger.Error("schema bootstrap statement failed",
				slog.String("object", s.name),
				slog.Any("error", err))
		}
	}
}
