package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"tamalife/internal/pet"
)

const schema = `
CREATE TABLE IF NOT EXISTS saves (
	profile    TEXT PRIMARY KEY,
	document   TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS retired (
	id         TEXT PRIMARY KEY,
	profile    TEXT NOT NULL,
	name       TEXT NOT NULL,
	level      INTEGER NOT NULL,
	evolution  TEXT NOT NULL,
	document   TEXT NOT NULL,
	retired_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_retired_profile ON retired(profile, retired_at);
`

// SQLiteBackend keeps one save row per profile in a SQLite database.
type SQLiteBackend struct {
	db      *sql.DB
	profile string
}

// OpenSQLite opens (and creates if missing) the database at path.
func OpenSQLite(ctx context.Context, path, profile string) (*SQLiteBackend, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One connection keeps writes serialized
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return &SQLiteBackend{db: db, profile: profile}, nil
}

func (b *SQLiteBackend) Read(ctx context.Context) ([]byte, error) {
	var doc string
	err := b.db.QueryRowContext(ctx, `SELECT document FROM saves WHERE profile = ?`, b.profile).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query save: %w", err)
	}
	return []byte(doc), nil
}

func (b *SQLiteBackend) Write(ctx context.Context, doc []byte) error {
	_, err := b.db.ExecContext(ctx, `
		INSERT INTO saves (profile, document, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(profile) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`,
		b.profile, string(doc), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("upsert save: %w", err)
	}
	return nil
}

func (b *SQLiteBackend) Archive(ctx context.Context, r Retired, doc []byte) error {
	_, err := b.db.ExecContext(ctx, `
		INSERT INTO retired (id, profile, name, level, evolution, document, retired_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, b.profile, r.Name, r.Level, string(r.Evolution), string(doc), r.RetiredAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("insert retired: %w", err)
	}
	return nil
}

func (b *SQLiteBackend) History(ctx context.Context) ([]Retired, error) {
	rows, err := b.db.QueryContext(ctx, `
		SELECT id, name, level, evolution, retired_at FROM retired
		WHERE profile = ? ORDER BY retired_at DESC`, b.profile)
	if err != nil {
		return nil, fmt.Errorf("query retired: %w", err)
	}
	defer rows.Close()

	var out []Retired
	for rows.Next() {
		var r Retired
		var evolution, at string
		if err := rows.Scan(&r.ID, &r.Name, &r.Level, &evolution, &at); err != nil {
			return nil, fmt.Errorf("scan retired: %w", err)
		}
		r.Evolution = pet.Evolution(evolution)
		if r.RetiredAt, err = time.Parse(time.RFC3339Nano, at); err != nil {
			return nil, fmt.Errorf("parse retired_at: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}
