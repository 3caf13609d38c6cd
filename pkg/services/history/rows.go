package history

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
)

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatXLSX = "xlsx"

	specColumnPrefix = "spec."
)

var columnAliases = map[string][]string{
	"id":           {"id", "record_id", "quote_id"},
	"product_name": {"product_name", "product", "name", "item", "item_name"},
	"description":  {"description", "details"},
	"unit_price":   {"unit_price", "unitprice", "unit_cost"},
	"price":        {"price", "cost"},
	"quantity":     {"quantity", "qty"},
	"unit":         {"unit", "uom"},
	"currency":     {"currency"},
	"supplier_id":  {"supplier_id", "supplier"},
	"date":         {"date", "purchase_date", "quote_date", "recorded_at"},
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"01/02/2006",
	"01-02-06",
}

type columns struct {
	index map[string]int
	specs map[string]int
}

func mapColumns(header []string) (columns, error) {
	cols := columns{index: map[string]int{}, specs: map[string]int{}}
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), " ", "_")
	}

	for field, aliases := range columnAliases {
		cols.index[field] = -1
		for _, alias := range aliases {
			if i := indexOf(normalized, alias); i >= 0 {
				cols.index[field] = i
				break
			}
		}
	}
	for i, h := range normalized {
		if name, ok := strings.CutPrefix(h, specColumnPrefix); ok && name != "" {
			cols.specs[name] = i
		}
	}

	if cols.index["product_name"] < 0 {
		return columns{}, fmt.Errorf("missing product name column in header %v", header)
	}
	if cols.index["unit_price"] < 0 && cols.index["price"] < 0 {
		return columns{}, fmt.Errorf("missing price column in header %v", header)
	}
	return cols, nil
}

// parseRows maps a header row and data rows to records. Blank rows are skipped.
func parseRows(rows [][]string) ([]domain.HistoricalRecord, error) {
	records := make([]domain.HistoricalRecord, 0)
	if len(rows) == 0 {
		return records, nil
	}

	cols, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	for n, row := range rows[1:] {
		line := n + 2
		cell := func(field string) string {
			i := cols.index[field]
			if i < 0 || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		if isBlank(row) {
			continue
		}

		record := domain.HistoricalRecord{
			ID:          cell("id"),
			ProductName: cell("product_name"),
			Description: cell("description"),
			Unit:        cell("unit"),
			Currency:    cell("currency"),
			SupplierID:  cell("supplier_id"),
		}
		if record.ProductName == "" {
			return nil, fmt.Errorf("row %d: empty product name", line)
		}

		for field, target := range map[string]*float64{
			"unit_price": &record.UnitPrice,
			"price":      &record.Price,
			"quantity":   &record.Quantity,
		} {
			v, err := parseNumber(cell(field))
			if err != nil {
				return nil, fmt.Errorf("row %d: %s: %w", line, field, err)
			}
			*target = v
		}

		if raw := cell("date"); raw != "" {
			date, err := parseDate(raw)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", line, err)
			}
			record.Date = date
		}

		for name, i := range cols.specs {
			if i < len(row) && strings.TrimSpace(row[i]) != "" {
				if record.Specifications == nil {
					record.Specifications = map[string]string{}
				}
				record.Specifications[name] = strings.TrimSpace(row[i])
			}
		}

		records = append(records, record)
	}
	return records, nil
}

func parseNumber(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	raw = strings.ReplaceAll(raw, ",", "")
	return strconv.ParseFloat(raw, 64)
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

func indexOf(values []string, target string) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return -1
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
