package history

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
)

type jsonRecord struct {
	ID             string            `json:"id"`
	ProductName    string            `json:"product_name"`
	Description    string            `json:"description"`
	UnitPrice      float64           `json:"unit_price"`
	Price          float64           `json:"price"`
	Quantity       float64           `json:"quantity"`
	Unit           string            `json:"unit"`
	Currency       string            `json:"currency"`
	SupplierID     string            `json:"supplier_id"`
	Date           string            `json:"date"`
	Specifications map[string]string `json:"specifications"`
}

// ImportJSON reads an array of records.
func ImportJSON(_ context.Context, r io.Reader) ([]domain.HistoricalRecord, error) {
	var raw []jsonRecord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	records := make([]domain.HistoricalRecord, 0, len(raw))
	for i, rec := range raw {
		if rec.ProductName == "" {
			return nil, fmt.Errorf("record %d: empty product name", i)
		}
		record := domain.HistoricalRecord{
			ID:             rec.ID,
			ProductName:    rec.ProductName,
			Description:    rec.Description,
			UnitPrice:      rec.UnitPrice,
			Price:          rec.Price,
			Quantity:       rec.Quantity,
			Unit:           rec.Unit,
			Currency:       rec.Currency,
			SupplierID:     rec.SupplierID,
			Specifications: maps.Clone(rec.Specifications),
		}
		if rec.Date != "" {
			date, err := parseDate(rec.Date)
			if err != nil {
				return nil, fmt.Errorf("record %d: %w", i, err)
			}
			record.Date = date
		}
		records = append(records, record)
	}
	return records, nil
}
