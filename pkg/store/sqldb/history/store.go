package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/store"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/store/sqldb"
)

// Store keeps the historical quotes and purchases of every tenant.
// Add upserts by (tenant, id); records without an ID get a fresh UUID.
type Store interface {
	Add(ctx context.Context, tenant string, records []store.HistoryRecord) error
	GetRecords(ctx context.Context, tenant string, filter store.HistoryFilter) ([]store.HistoryRecord, error)
	GetStats(ctx context.Context, tenant string) (*store.HistoryStats, error)
}

type historyStore struct {
	db *sqldb.DB
}

func NewStore(db *sqldb.DB) (Store, error) {
	if db == nil || db.DB == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &historyStore{db: db}, nil
}

func (h *historyStore) Add(ctx context.Context, tenant string, records []store.HistoryRecord) error {
	if len(records) == 0 {
		return nil
	}
	if tenant == "" {
		return fmt.Errorf("tenant is required")
	}

	query := h.db.Rebind(`
		INSERT INTO historical_records (
			id, tenant, product_name, description, unit_price, price,
			quantity, unit, currency, supplier_id, specifications, recorded_at
		) VALUES (
			?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?
		)
		ON CONFLICT (tenant, id) DO UPDATE SET
			product_name = excluded.product_name,
			description = excluded.description,
			unit_price = excluded.unit_price,
			price = excluded.price,
			quantity = excluded.quantity,
			unit = excluded.unit,
			currency = excluded.currency,
			supplier_id = excluded.supplier_id,
			specifications = excluded.specifications,
			recorded_at = excluded.recorded_at`)

	var stmt *sql.Stmt
	var err error
	if tx := sqldb.GetTransaction(ctx); tx != nil {
		stmt, err = tx.PrepareContext(ctx, query)
	} else {
		stmt, err = h.db.PrepareContext(ctx, query)
	}
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		id := record.ID
		if id == "" {
			id = uuid.NewString()
		}

		specs, err := json.Marshal(record.Specifications)
		if err != nil {
			return fmt.Errorf("marshal specifications: %w", err)
		}

		var recordedAt sql.NullInt64
		if record.RecordedAt != nil {
			recordedAt = sql.NullInt64{Int64: record.RecordedAt.UnixMilli(), Valid: true}
		}

		_, err = stmt.ExecContext(ctx,
			id,
			tenant,
			record.ProductName,
			record.Description,
			record.UnitPrice,
			record.Price,
			record.Quantity,
			record.Unit,
			record.Currency,
			record.SupplierID,
			string(specs),
			recordedAt,
		)
		if err != nil {
			return fmt.Errorf("insert record: %w", err)
		}
	}

	return nil
}

func (h *historyStore) GetRecords(ctx context.Context, tenant string, filter store.HistoryFilter) ([]store.HistoryRecord, error) {
	query := `
		SELECT id, tenant, product_name, description, unit_price, price, quantity,
			unit, currency, supplier_id, specifications, recorded_at
		FROM historical_records
		WHERE tenant = ?`
	args := []any{tenant}
	if filter.Since != nil {
		query += " AND recorded_at >= ?"
		args = append(args, filter.Since.UnixMilli())
	}
	if filter.Currency != "" {
		query += " AND currency = ?"
		args = append(args, filter.Currency)
	}
	query += " ORDER BY recorded_at ASC, id ASC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := h.db.QueryContext(ctx, h.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to close history rows")
		}
	}()

	return scanHistoryRows(rows)
}

func (h *historyStore) GetStats(ctx context.Context, tenant string) (*store.HistoryStats, error) {
	query := h.db.Rebind(`
		SELECT COUNT(*), MIN(recorded_at), MAX(recorded_at)
		FROM historical_records
		WHERE tenant = ?`)

	var total int64
	var first, last sql.NullInt64
	if err := h.db.QueryRowContext(ctx, query, tenant).Scan(&total, &first, &last); err != nil {
		return nil, fmt.Errorf("get history stats: %w", err)
	}

	return &store.HistoryStats{
		RecordsCount:    total,
		FirstRecordTime: fromMillis(first),
		LastRecordTime:  fromMillis(last),
	}, nil
}

func scanHistoryRows(rows *sql.Rows) ([]store.HistoryRecord, error) {
	records := make([]store.HistoryRecord, 0)
	for rows.Next() {
		var (
			id, tenant, productName                     string
			description, unit, currency, supplier, spec sql.NullString
			unitPrice, price, qty                       sql.NullFloat64
			recordedAt                                  sql.NullInt64
		)
		if err := rows.Scan(&id, &tenant, &productName, &description, &unitPrice, &price, &qty,
			&unit, &currency, &supplier, &spec, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}

		specs := map[string]string{}
		if spec.Valid && spec.String != "" && spec.String != "null" {
			if err := json.Unmarshal([]byte(spec.String), &specs); err != nil {
				return nil, fmt.Errorf("unmarshal specifications of %s: %w", id, err)
			}
		}

		records = append(records, store.HistoryRecord{
			ID:             id,
			Tenant:         tenant,
			ProductName:    productName,
			Description:    description.String,
			UnitPrice:      unitPrice.Float64,
			Price:          price.Float64,
			Quantity:       qty.Float64,
			Unit:           unit.String,
			Currency:       currency.String,
			SupplierID:     supplier.String,
			Specifications: specs,
			RecordedAt:     fromMillis(recordedAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history rows: %w", err)
	}
	return records, nil
}

func fromMillis(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.UnixMilli(v.Int64).UTC()
	return &t
}
