package sqldb

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDB_BootsSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := NewDB(Settings{Driver: DriverSQLite, DSN: dbPath})
	require.NoError(t, err)
	require.NotNil(t, db)

	defer func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close database connection: %v", err)
		}
	}()

	_, err = db.Exec(
		`INSERT INTO historical_records (id, tenant, product_name, unit_price) VALUES (?, ?, ?, ?)`,
		"rec-001", "acme", "Steel bolt", 1.25,
	)
	require.NoError(t, err)

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM historical_records WHERE id = ?", "rec-001").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, DriverSQLite, db.Driver())
}

func TestNewDB_UnsupportedDriver(t *testing.T) {
	db, err := NewDB(Settings{Driver: "oracle", DSN: "x"})
	assert.Error(t, err)
	assert.Nil(t, db)
}

func TestRebind(t *testing.T) {
	query := "SELECT * FROM t WHERE a = ? AND b = ?"

	tests := []struct {
		name     string
		driver   string
		expected string
	}{
		{"sqlite keeps placeholders", DriverSQLite, query},
		{"postgres numbers placeholders", DriverPostgres, "SELECT * FROM t WHERE a = $1 AND b = $2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := Wrap(nil, tt.driver)
			assert.Equal(t, tt.expected, db.Rebind(query))
		})
	}
}

func TestInTransaction(t *testing.T) {
	db, err := NewDB(Settings{Driver: DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		err := InTransaction(ctx, db.DB, func(ctx context.Context) error {
			tx := GetTransaction(ctx)
			require.NotNil(t, tx)
			_, err := tx.ExecContext(ctx,
				`INSERT INTO historical_records (id, tenant, product_name) VALUES (?, ?, ?)`,
				"rec-1", "acme", "Cable")
			return err
		})
		require.NoError(t, err)

		var count int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM historical_records").Scan(&count))
		assert.Equal(t, 1, count)
	})

	t.Run("rollback on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := InTransaction(ctx, db.DB, func(ctx context.Context) error {
			_, err := GetTransaction(ctx).ExecContext(ctx,
				`INSERT INTO historical_records (id, tenant, product_name) VALUES (?, ?, ?)`,
				"rec-2", "acme", "Cable")
			require.NoError(t, err)
			return boom
		})
		assert.ErrorIs(t, err, boom)

		var count int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM historical_records").Scan(&count))
		assert.Equal(t, 1, count)
	})

	t.Run("no transaction in plain context", func(t *testing.T) {
		assert.Nil(t, GetTransaction(ctx))
	})
}
