package store

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

var _ Store = (*SQLiteStore)(nil)

// SQLiteStore is the default durable backend: a single kv table in a SQLite
// database file, one row per key.
type SQLiteStore struct {
	dbConn *sqlx.DB // dbConn is the active database connection pool.
}

// NewSQLiteStore establishes a connection to a SQLite database file and
// applies all pending migrations. It configures the connection for data
// integrity by enabling WAL mode and foreign keys, and caps the pool at a
// single connection since the store assumes one execution context.
//
// The `name` parameter should be the file path for the SQLite database.
func NewSQLiteStore(name string) (*SQLiteStore, error) {
	db, err := sqlx.Connect("sqlite", fmt.Sprintf("%s?_journal=WAL&_timeout=5000&_fk=true", name))
	if err != nil {
		return nil, fmt.Errorf("connecting to db : %w", err)
	}

	db.SetMaxOpenConns(1)

	_, err = db.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(goose.DialectSQLite3)); err != nil {
		return nil, fmt.Errorf("setting dialect for migrations : %w", err)
	}

	if err := goose.Up(db.DB, "migrations"); err != nil {
		return nil, fmt.Errorf("applying migration : %w", err)
	}

	return &SQLiteStore{dbConn: db}, nil
}

// Close terminates the database connection.
func (s *SQLiteStore) Close() error {
	err := s.dbConn.Close()
	if err != nil {
		return fmt.Errorf("closing sqlite store : %w", err)
	}
	return nil
}

// Read implements the Store interface.
func (s *SQLiteStore) Read(key string) (string, bool, error) {
	var value string
	query := `SELECT value FROM kv WHERE key = ?`

	err := s.dbConn.Get(&value, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading key %s: %w", key, err)
	}

	return value, true, nil
}

// Write implements the Store interface.
func (s *SQLiteStore) Write(key, value string) error {
	query := `INSERT INTO kv (key, value) VALUES (?, ?)
	          ON CONFLICT (key) DO UPDATE SET value = excluded.value`

	_, err := s.dbConn.Exec(query, key, value)
	if err != nil {
		return fmt.Errorf("writing key %s: %w", key, err)
	}

	return nil
}

// Remove implements the Store interface.
func (s *SQLiteStore) Remove(key string) error {
	query := `DELETE FROM kv WHERE key = ?`

	_, err := s.dbConn.Exec(query, key)
	if err != nil {
		return fmt.Errorf("removing key %s: %w", key, err)
	}

	return nil
}
