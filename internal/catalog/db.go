package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by Open when the catalog file does not exist.
var ErrNotFound = errors.New("catalog not found: run 'pick seed' first")

// DB wraps the catalog database connection
type DB struct {
	conn *sql.DB
	path string
}

// Open opens an existing catalog and checks its schema version
func Open(path string) (*DB, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, ErrNotFound
	}

	conn, err := openConn(path)
	if err != nil {
		return nil, err
	}

	db := &DB{conn: conn, path: path}
	version, err := db.schemaVersion()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("read schema version: %w", err)
	}
	if version > SchemaVersion {
		conn.Close()
		return nil, fmt.Errorf("catalog schema v%d is newer than supported v%d", version, SchemaVersion)
	}

	return db, nil
}

// Initialize creates the catalog file and schema if needed
func Initialize(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create catalog dir: %w", err)
	}

	conn, err := openConn(path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	if _, err := conn.Exec(
		`INSERT OR REPLACE INTO schema_info (key, value) VALUES ('version', ?)`,
		strconv.Itoa(SchemaVersion),
	); err != nil {
		conn.Close()
		return nil, fmt.Errorf("record schema version: %w", err)
	}

	return &DB{conn: conn, path: path}, nil
}

func openConn(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}

	// Enable WAL mode so the demo can read while a seed writes
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := conn.Exec("PRAGMA busy_timeout=500"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	return conn, nil
}

// Close closes the database
func (db *DB) Close() error {
	return db.conn.Close()
}

// Path returns the catalog file path
func (db *DB) Path() string {
	return db.path
}

func (db *DB) schemaVersion() (int, error) {
	var value string
	err := db.conn.QueryRow(`SELECT value FROM schema_info WHERE key = 'version'`).Scan(&value)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(value)
}
