package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/store"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/store/sqldb"
)

type fixture struct {
	db    *sqldb.DB
	store Store
}

func setupFixture(t *testing.T) *fixture {
	db, err := sqldb.NewDB(sqldb.Settings{Driver: sqldb.DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)

	s, err := NewStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{db: db, store: s}
}

func at(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestNewStore(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := setupFixture(t)
		assert.NotNil(t, f.store)
	})

	t.Run("nil db", func(t *testing.T) {
		s, err := NewStore(nil)
		assert.Error(t, err)
		assert.Nil(t, s)
	})
}

func TestHistoryStore_AddAndGetRecords(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	records := []store.HistoryRecord{
		{
			ID:             "q-2",
			ProductName:    "Steel bolt M8",
			Description:    "zinc plated",
			UnitPrice:      1.30,
			Quantity:       500,
			Unit:           "pcs",
			Currency:       "USD",
			SupplierID:     "sup-1",
			Specifications: map[string]string{"grade": "8.8"},
			RecordedAt:     at(2024, time.March, 1),
		},
		{
			ID:          "q-1",
			ProductName: "Steel bolt M8",
			UnitPrice:   1.20,
			Quantity:    200,
			Unit:        "pcs",
			Currency:    "EUR",
			RecordedAt:  at(2024, time.January, 1),
		},
	}
	require.NoError(t, f.store.Add(ctx, "acme", records))
	require.NoError(t, f.store.Add(ctx, "other", []store.HistoryRecord{{ID: "x", ProductName: "Cable"}}))

	t.Run("ordered by date and scoped to tenant", func(t *testing.T) {
		got, err := f.store.GetRecords(ctx, "acme", store.HistoryFilter{})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "q-1", got[0].ID)
		assert.Equal(t, "q-2", got[1].ID)
		assert.Equal(t, map[string]string{"grade": "8.8"}, got[1].Specifications)
		assert.Equal(t, "zinc plated", got[1].Description)
		require.NotNil(t, got[1].RecordedAt)
		assert.True(t, got[1].RecordedAt.Equal(*at(2024, time.March, 1)))
	})

	t.Run("filters", func(t *testing.T) {
		got, err := f.store.GetRecords(ctx, "acme", store.HistoryFilter{Currency: "USD"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "q-2", got[0].ID)

		got, err = f.store.GetRecords(ctx, "acme", store.HistoryFilter{Since: at(2024, time.February, 1)})
		require.NoError(t, err)
		require.Len(t, got, 1)

		got, err = f.store.GetRecords(ctx, "acme", store.HistoryFilter{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("upsert by id", func(t *testing.T) {
		require.NoError(t, f.store.Add(ctx, "acme", []store.HistoryRecord{
			{ID: "q-1", ProductName: "Steel bolt M8", UnitPrice: 1.10, RecordedAt: at(2024, time.January, 1)},
		}))
		got, err := f.store.GetRecords(ctx, "acme", store.HistoryFilter{})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.InDelta(t, 1.10, got[0].UnitPrice, 1e-9)
	})

	t.Run("generates ids", func(t *testing.T) {
		require.NoError(t, f.store.Add(ctx, "gen", []store.HistoryRecord{{ProductName: "Paint"}}))
		got, err := f.store.GetRecords(ctx, "gen", store.HistoryFilter{})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.NotEmpty(t, got[0].ID)
		assert.Nil(t, got[0].RecordedAt)
	})

	t.Run("tenant required", func(t *testing.T) {
		err := f.store.Add(ctx, "", []store.HistoryRecord{{ProductName: "Paint"}})
		assert.Error(t, err)
	})
}

func TestHistoryStore_GetStats(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	t.Run("empty tenant", func(t *testing.T) {
		stats, err := f.store.GetStats(ctx, "acme")
		require.NoError(t, err)
		assert.Equal(t, int64(0), stats.RecordsCount)
		assert.Nil(t, stats.FirstRecordTime)
		assert.Nil(t, stats.LastRecordTime)
	})

	t.Run("with records", func(t *testing.T) {
		require.NoError(t, f.store.Add(ctx, "acme", []store.HistoryRecord{
			{ID: "a", ProductName: "Cable", RecordedAt: at(2024, time.May, 1)},
			{ID: "b", ProductName: "Cable", RecordedAt: at(2024, time.June, 1)},
		}))
		stats, err := f.store.GetStats(ctx, "acme")
		require.NoError(t, err)
		assert.Equal(t, int64(2), stats.RecordsCount)
		require.NotNil(t, stats.FirstRecordTime)
		require.NotNil(t, stats.LastRecordTime)
		assert.True(t, stats.FirstRecordTime.Equal(*at(2024, time.May, 1)))
		assert.True(t, stats.LastRecordTime.Equal(*at(2024, time.June, 1)))
	})
}

func TestHistoryStore_QueryErrors(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	s, err := NewStore(sqldb.Wrap(mockDB, sqldb.DriverPostgres))
	require.NoError(t, err)

	t.Run("get records", func(t *testing.T) {
		mock.ExpectQuery(`FROM historical_records WHERE tenant = \$1`).
			WithArgs("acme").
			WillReturnError(errors.New("connection reset"))

		records, err := s.GetRecords(context.Background(), "acme", store.HistoryFilter{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "query history")
		assert.Nil(t, records)
	})

	t.Run("get stats", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\), MIN\(recorded_at\), MAX\(recorded_at\)`).
			WithArgs("acme").
			WillReturnRows(sqlmock.NewRows([]string{"count", "min", "max"}).AddRow(int64(3), int64(1704067200000), nil))

		stats, err := s.GetStats(context.Background(), "acme")
		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.RecordsCount)
		require.NotNil(t, stats.FirstRecordTime)
		assert.Equal(t, 2024, stats.FirstRecordTime.Year())
		assert.Nil(t, stats.LastRecordTime)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
