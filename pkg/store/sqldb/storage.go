package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const HistoricalRecordsSchema = `
	CREATE TABLE IF NOT EXISTS historical_records (
		id TEXT NOT NULL,
		tenant TEXT NOT NULL,
		product_name TEXT NOT NULL,
		description TEXT,
		unit_price DOUBLE PRECISION,
		price DOUBLE PRECISION,
		quantity DOUBLE PRECISION,
		unit TEXT,
		currency TEXT,
		supplier_id TEXT,
		specifications TEXT,
		recorded_at BIGINT NULL,
		PRIMARY KEY (tenant, id)
	);
`

const HistoricalRecordsProductIndex = `
	CREATE INDEX IF NOT EXISTS idx_historical_records_product
	ON historical_records (tenant, product_name);
`

var bootQueries = []string{
	HistoricalRecordsSchema,
	HistoricalRecordsProductIndex,
}

type Settings struct {
	Driver string
	DSN    string
}

// DB wraps *sql.DB with the dialect it was opened with.
type DB struct {
	*sql.DB
	driver string
}

func NewDB(settings Settings) (*DB, error) {
	driver := settings.Driver
	if driver == "" {
		driver = DriverSQLite
	}
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported driver %q", settings.Driver)
	}

	conn, err := sql.Open(driver, settings.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		// a second connection to ":memory:" would see an empty database
		conn.SetMaxOpenConns(1)
	}

	for _, query := range bootQueries {
		if _, err := conn.ExecContext(context.Background(), query); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("boot query: %w", err)
		}
	}

	return &DB{DB: conn, driver: driver}, nil
}

// Wrap adapts an already opened connection, skipping boot queries.
func Wrap(conn *sql.DB, driver string) *DB {
	return &DB{DB: conn, driver: driver}
}

func (db *DB) Driver() string {
	return db.driver
}

// Rebind rewrites ? placeholders into the numbered form postgres expects.
func (db *DB) Rebind(query string) string {
	if db.driver != DriverPostgres {
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
