// Package dbx provides tiny DB abstractions shared by repositories:
// a minimal interface (DBTX) implemented by both *sql.DB and *sql.Tx, and
// DSN-based opening of the supported SQL backends.
package dbx

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// DBTX is the subset of database/sql used by our repos.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Dialect names the SQL flavour behind a connection.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// DriverName returns the database/sql driver registered for the dialect.
func (d Dialect) DriverName() string {
	if d == DialectSQLite {
		return "sqlite"
	}
	return "pgx"
}

// ParseDSN detects the dialect of dsn and returns the connection string the
// driver expects.
//
//	postgres://… | postgresql://…   -> pgx, unchanged
//	sqlite://path                    -> sqlite, "path"
//	file:… | :memory:                -> sqlite, unchanged
func ParseDSN(dsn string) (Dialect, string, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return DialectSQLite, strings.TrimPrefix(dsn, "sqlite://"), nil
	case strings.HasPrefix(dsn, "file:"), dsn == ":memory:":
		return DialectSQLite, dsn, nil
	default:
		return "", "", fmt.Errorf("unsupported database dsn %q", dsn)
	}
}

// Open opens (without pinging) the database described by dsn.
func Open(dsn string) (*sql.DB, Dialect, error) {
	dialect, conn, err := ParseDSN(dsn)
	if err != nil {
		return nil, "", err
	}

	if conn == ":memory:" {
		conn = "file::memory:"
	}
	if dialect == DialectSQLite && !strings.Contains(conn, "_time_format=") {
		// store timestamps in a lexically ordered layout so range filters work
		sep := "?"
		if strings.Contains(conn, "?") {
			sep = "&"
		}
		conn += sep + "_time_format=sqlite"
	}

	db, err := sql.Open(dialect.DriverName(), conn)
	if err != nil {
		return nil, "", fmt.Errorf("db open error: %w", err)
	}

	if dialect == DialectSQLite {
		// a single writer keeps SQLite from returning SQLITE_BUSY
		db.SetMaxOpenConns(1)
	}

	return db, dialect, nil
}
