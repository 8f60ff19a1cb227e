package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strconv"
	"strings"
)

// Migration is one embedded schema file and whether the database has it.
type Migration struct {
	File    string
	Version int
	Applied bool
}

// Status lists every embedded migration in version order, marking the ones
// already recorded in schema_migrations.
func Status(ctx context.Context, db *sql.DB) ([]Migration, error) {
	if err := ensureMigrationsTable(ctx, db); err != nil {
		return nil, fmt.Errorf("ensure migrations table: %w", err)
	}
	applied, err := appliedFiles(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("read applied migrations: %w", err)
	}
	files, err := embeddedFiles()
	if err != nil {
		return nil, fmt.Errorf("list migration files: %w", err)
	}

	out := make([]Migration, 0, len(files))
	for _, f := range files {
		version, err := versionOf(f)
		if err != nil {
			return nil, err
		}
		out = append(out, Migration{File: f, Version: version, Applied: applied[f]})
	}
	return out, nil
}

// Run applies every pending migration, each in its own transaction.
func Run(ctx context.Context, db *sql.DB) error {
	all, err := Status(ctx, db)
	if err != nil {
		return err
	}

	pending := 0
	for _, m := range all {
		if m.Applied {
			continue
		}
		if err := apply(ctx, db, m.File); err != nil {
			return fmt.Errorf("apply migration %s: %w", m.File, err)
		}
		pending++
		slog.Info("schema migration applied", "version", m.Version, "file", m.File)
	}
	slog.Debug("schema up to date", "migrations", len(all), "applied_now", pending)
	return nil
}

func versionOf(file string) (int, error) {
	prefix, _, ok := strings.Cut(file, "_")
	if !ok {
		return 0, fmt.Errorf("migration %s: expected NNN_name.sql", file)
	}
	v, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, fmt.Errorf("migration %s: version prefix: %w", file, err)
	}
	return v, nil
}

func ensureMigrationsTable(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			filename TEXT PRIMARY KEY,
			applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

func appliedFiles(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT filename FROM schema_migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var filename string
		if err := rows.Scan(&filename); err != nil {
			return nil, err
		}
		applied[filename] = true
	}
	return applied, rows.Err()
}

func embeddedFiles() ([]string, error) {
	matches, err := fs.Glob(FS, "*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

func apply(ctx context.Context, db *sql.DB, file string) error {
	content, err := fs.ReadFile(FS, file)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, string(content)); err != nil {
		return fmt.Errorf("execute sql: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (filename) VALUES (?)", file); err != nil {
		return fmt.Errorf("record migration: %w", err)
	}
	return tx.Commit()
}
