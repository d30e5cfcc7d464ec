package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Dialect identifies the SQL flavour of the connected store
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

var (
	db      *sql.DB
	dialect Dialect
)

// DetectDialect picks the driver for a DATABASE_URL. Postgres URLs and
// key/value DSNs go to pgx, anything else is treated as a sqlite file path.
func DetectDialect(dataSourceName string) (Dialect, string, string) {
	lower := strings.ToLower(dataSourceName)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") ||
		strings.Contains(lower, "host=") {
		return DialectPostgres, "pgx", dataSourceName
	}

	dsn := dataSourceName
	if !strings.Contains(dsn, "?") {
		dsn += "?_busy_timeout=5000&_journal_mode=WAL"
	}
	return DialectSQLite, "sqlite3", dsn
}

// Rebind rewrites ? placeholders to $n for postgres
func (d Dialect) Rebind(query string) string {
	if d != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Open opens and pings a connection for the given DATABASE_URL
func Open(dataSourceName string) (*sql.DB, Dialect, error) {
	d, driverName, dsn := DetectDialect(dataSourceName)

	conn, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Test the connection
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, "", fmt.Errorf("failed to ping database: %w", err)
	}

	if d == DialectPostgres {
		conn.SetMaxOpenConns(10)
		conn.SetConnMaxIdleTime(5 * time.Minute)
	}

	return conn, d, nil
}

// InitializeDatabase opens the database connection and runs migrations
func InitializeDatabase(dataSourceName string) error {
	conn, d, err := Open(dataSourceName)
	if err != nil {
		return err
	}
	db, dialect = conn, d

	// Run migrations
	if err := RunMigrations(db, dialect); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	fmt.Printf("✅ Database initialized successfully (%s)\n", dialect)
	return nil
}

// GetDB returns the database connection
func GetDB() *sql.DB {
	return db
}

// GetDialect returns the dialect of the open connection
func GetDialect() Dialect {
	return dialect
}

// CloseDB closes the database connection
func CloseDB() error {
	if db != nil {
		return db.Close()
	}
	return nil
}
