package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents one schema migration. The schema ships with the
// binary, so migrations are embedded statements rather than files on disk.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_users",
		SQL: `
			CREATE TABLE IF NOT EXISTS users (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				username TEXT NOT NULL UNIQUE,
				password TEXT NOT NULL,
				fullname TEXT NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
	},
	{
		Version: 2,
		Name:    "create_opr_dump",
		SQL: `
			CREATE TABLE IF NOT EXISTS opr_dump (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				reporttime TEXT,
				mobileid TEXT NOT NULL,
				opr_nrp TEXT,
				opr_username TEXT,
				opr_shift TEXT,
				act_loaderid TEXT,
				pos_name TEXT,
				act_hauldistance TEXT,
				record_type TEXT NOT NULL DEFAULT 'trip',
				is_deleted INTEGER NOT NULL DEFAULT 0,
				is_manual INTEGER NOT NULL DEFAULT 0,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_opr_dump_unit_time
				ON opr_dump (mobileid, reporttime)`,
	},
	{
		Version: 3,
		Name:    "create_login_history",
		SQL: `
			CREATE TABLE IF NOT EXISTS login_history (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				opr_nrp TEXT,
				opr_username TEXT,
				status TEXT,
				tanggal TEXT,
				opr_shift TEXT,
				jam TEXT,
				mobileid TEXT NOT NULL,
				lgn_hourmeter REAL,
				pos_name TEXT,
				reporttime TEXT,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_login_history_unit
				ON login_history (mobileid, reporttime)`,
	},
	{
		Version: 4,
		Name:    "create_hm_validation",
		SQL: `
			CREATE TABLE IF NOT EXISTS hm_validation (
				id INTEGER PRIMARY KEY,
				next_id INTEGER,
				prev_id INTEGER,
				mig_type TEXT,
				mobileid TEXT,
				opr_nrp TEXT,
				opr_username TEXT,
				opr_shift TEXT,
				lgn_pattern TEXT,
				prev_hm REAL,
				hm REAL,
				next_hm REAL,
				reporttime TEXT,
				next_reporttime TEXT,
				pos_name TEXT,
				is_logout TEXT,
				is_salah_shift TEXT,
				is_ftw TEXT,
				is_loncat TEXT,
				is_sama TEXT
			)`,
	},
	{
		Version: 5,
		Name:    "create_wizard_state",
		SQL: `
			CREATE TABLE IF NOT EXISTS wizard_state (
				user_id INTEGER NOT NULL,
				step INTEGER NOT NULL,
				data TEXT NOT NULL,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				PRIMARY KEY (user_id, step)
			)`,
	},
}

// Migrate applies all pending migrations in version order.
func Migrate(db *sql.DB) error {
	if err := initMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if err := applyMigration(db, m); err != nil {
			return err
		}
	}
	return nil
}

func initMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func appliedVersions(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

func applyMigration(db *sql.DB, m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(m.SQL); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to execute migration %d: %w", m.Version, err)
	}
	if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
	}

	log.Printf("Applied migration %d: %s", m.Version, m.Name)
	return nil
}
