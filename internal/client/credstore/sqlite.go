package credstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pressly/goose/v3"
	"github.com/vrocha/admincli/internal/client/credstore/migrations"
	"github.com/vrocha/admincli/internal/logging"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists credentials in a local SQLite database. Read/write
// failures are logged and swallowed per the Store contract.
type SQLiteStore struct {
	db  *sql.DB
	log logging.Logger
}

// gooseUpContext is a seam for testing migration failures.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string) error {
	return goose.UpContext(ctx, db, dir)
}

// OpenSQLite opens (creating if necessary) the credential database at dsn
// and applies the embedded migrations.
func OpenSQLite(ctx context.Context, dsn string, log logging.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db, log: log}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Get(ctx context.Context, key string) string {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return ""
	}
	if err != nil {
		s.log.Warn(ctx, "credential read failed, treating as absent", "key", key, "error", err)
		return ""
	}
	return value
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		s.log.Warn(ctx, "credential write failed", "key", key, "error", err)
	}
}

func (s *SQLiteStore) Remove(ctx context.Context, key string) {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, key)
	if err != nil {
		s.log.Warn(ctx, "credential delete failed", "key", key, "error", err)
	}
}

func (s *SQLiteStore) Clear(ctx context.Context) {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials`)
	if err != nil {
		s.log.Warn(ctx, "credential clear failed", "error", err)
	}
}
