package store

import "time"

type HistoryStats struct {
	RecordsCount    int64
	FirstRecordTime *time.Time
	LastRecordTime  *time.Time
}

type HistoryRecord struct {
	ID             string
	Tenant         string
	ProductName    string
	Description    string
	UnitPrice      float64
	Price          float64
	Quantity       float64
	Unit           string
	Currency       string
	SupplierID     string
	Specifications map[string]string
	RecordedAt     *time.Time
}

type HistoryFilter struct {
	Since    *time.Time
	Currency string
	Limit    int
}
