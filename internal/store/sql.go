package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// SQL is the database-backed Store. Postgres is the deployment target
// (schema managed by cmd/migrate); SQLite covers local single-binary use and
// bootstraps its own schema on open. Queries are written with ? placeholders
// and rebound per driver.
type SQL struct {
	db *sqlx.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    role TEXT NOT NULL,
    is_active BOOLEAN NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS clicks (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    affiliate_id TEXT NOT NULL,
    ts BIGINT NOT NULL,
    user_agent TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_clicks_affiliate ON clicks(affiliate_id);

CREATE TABLE IF NOT EXISTS conversions (
    id TEXT PRIMARY KEY,
    affiliate_id TEXT NOT NULL,
    ts BIGINT NOT NULL,
    product_value REAL NOT NULL,
    commission REAL NOT NULL,
    buyer_name TEXT NOT NULL DEFAULT '',
    buyer_phone TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_conversions_affiliate ON conversions(affiliate_id);

CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS referrer_markers (
    visitor_id TEXT PRIMARY KEY,
    affiliate_id TEXT NOT NULL,
    ts BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    price REAL NOT NULL,
    description TEXT NOT NULL DEFAULT ''
);
`

// Open connects to the database described by dsn. postgres:// DSNs use the
// pgx driver; anything else is treated as a SQLite file path (an optional
// sqlite:// prefix is stripped).
func Open(dsn string) (*SQL, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		db, err := sqlx.Connect("pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		return &SQL{db: db}, nil
	}

	path := strings.TrimPrefix(dsn, "sqlite://")
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &SQL{db: db}, nil
}

func (s *SQL) Close() error {
	return s.db.Close()
}

func (s *SQL) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQL) rebind(query string) string {
	return s.db.Rebind(query)
}
