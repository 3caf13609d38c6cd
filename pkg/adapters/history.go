package adapters

import (
	"maps"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/api"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/store"
)

func MapStoreHistoryRecordToDomain(record store.HistoryRecord) domain.HistoricalRecord {
	res := domain.HistoricalRecord{
		ID:             record.ID,
		ProductName:    record.ProductName,
		Description:    record.Description,
		UnitPrice:      record.UnitPrice,
		Price:          record.Price,
		Quantity:       record.Quantity,
		Unit:           record.Unit,
		Currency:       record.Currency,
		SupplierID:     record.SupplierID,
		Specifications: maps.Clone(record.Specifications),
	}
	if record.RecordedAt != nil {
		res.Date = *record.RecordedAt
	}
	return res
}

func MapStoreHistoryRecordsToDomain(records []store.HistoryRecord) []domain.HistoricalRecord {
	res := make([]domain.HistoricalRecord, 0, len(records))
	for _, r := range records {
		res = append(res, MapStoreHistoryRecordToDomain(r))
	}
	return res
}

func MapDomainHistoricalRecordToStore(tenant string, record domain.HistoricalRecord) store.HistoryRecord {
	res := store.HistoryRecord{
		ID:             record.ID,
		Tenant:         tenant,
		ProductName:    record.ProductName,
		Description:    record.Description,
		UnitPrice:      record.UnitPrice,
		Price:          record.Price,
		Quantity:       record.Quantity,
		Unit:           record.Unit,
		Currency:       record.Currency,
		SupplierID:     record.SupplierID,
		Specifications: maps.Clone(record.Specifications),
	}
	if record.HasDate() {
		date := record.Date
		res.RecordedAt = &date
	}
	return res
}

func MapDomainHistoricalRecordsToStore(tenant string, records []domain.HistoricalRecord) []store.HistoryRecord {
	res := make([]store.HistoryRecord, 0, len(records))
	for _, r := range records {
		res = append(res, MapDomainHistoricalRecordToStore(tenant, r))
	}
	return res
}

func MapHistoricalRecordApiToDomain(record api.HistoricalRecord) domain.HistoricalRecord {
	res := domain.HistoricalRecord{
		ID:             record.ID,
		ProductName:    record.ProductName,
		Description:    record.Description,
		UnitPrice:      record.UnitPrice,
		Price:          record.Price,
		Quantity:       record.Quantity,
		Unit:           record.Unit,
		Currency:       record.Currency,
		SupplierID:     record.SupplierID,
		Specifications: maps.Clone(record.Specifications),
	}
	if record.Date != nil {
		res.Date = *record.Date
	}
	return res
}

func MapHistoryStatsStoreToApi(stats *store.HistoryStats) api.HistoryStats {
	if stats == nil {
		return api.HistoryStats{}
	}
	return api.HistoryStats{
		RecordsCount:    stats.RecordsCount,
		FirstRecordTime: stats.FirstRecordTime,
		LastRecordTime:  stats.LastRecordTime,
	}
}

// MapHistoricalRecordToRequestedItem reads an imported row as an item to estimate.
func MapHistoricalRecordToRequestedItem(record domain.HistoricalRecord) domain.RequestedItem {
	return domain.RequestedItem{
		ProductName:    record.ProductName,
		Description:    record.Description,
		Quantity:       record.Quantity,
		Unit:           record.Unit,
		Specifications: maps.Clone(record.Specifications),
	}
}
