// Package estimation derives current-cost estimates for requested items from
// comparable historical records and classifies them against budgets.
package estimation

import (
	"fmt"
	"math"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/services/matching"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/services/pricestats"
)

const noDataMessage = "No comparable historical records found"

type Estimator struct {
	settings Settings
}

func NewEstimator(settings Settings) *Estimator {
	defaults := DefaultSettings()
	if settings.DefaultCurrency == "" {
		settings.DefaultCurrency = defaults.DefaultCurrency
	}
	if settings.VolatilityCV <= 0 {
		settings.VolatilityCV = defaults.VolatilityCV
	}
	if settings.BulkQuantity <= 0 {
		settings.BulkQuantity = defaults.BulkQuantity
	}
	if settings.LowConfidence <= 0 {
		settings.LowConfidence = defaults.LowConfidence
	}
	return &Estimator{settings: settings}
}

func (e *Estimator) Settings() Settings {
	return e.settings
}

// EstimateItemCost estimates the cost of item from the comparable records of pool.
// Without a comparable priced record the estimate has a nil cost and zero confidence.
func (e *Estimator) EstimateItemCost(item domain.RequestedItem, pool []domain.HistoricalRecord, _ domain.Options) domain.ItemEstimate {
	matches := pricedMatches(matching.FindSimilar(item, pool))
	if len(matches) == 0 {
		return noDataEstimate(item)
	}

	prices := make([]float64, 0, len(matches))
	quantities := make([]float64, 0, len(matches))
	records := make([]domain.HistoricalRecord, 0, len(matches))
	for _, m := range matches {
		prices = append(prices, m.Record.EffectivePrice())
		if m.Record.Quantity > 0 {
			quantities = append(quantities, m.Record.Quantity)
		}
		records = append(records, m.Record)
	}

	// never empty: matches were filtered to priced records
	stats, _ := pricestats.Describe(prices)
	trend := CostTrend(records)

	quantity := math.Max(item.Quantity, 0)
	factor := QuantityFactor(quantity, pricestats.Mean(quantities))
	cost := pricestats.Sanitize(stats.Median * quantity * factor * trendMultiplier(trend))

	confidence := Confidence(matches, stats)
	band := rangeBand(confidence)

	return domain.ItemEstimate{
		Item:          item,
		EstimatedCost: &cost,
		UnitCost:      cost / quantityOrOne(quantity),
		Confidence:    confidence,
		Range: domain.PriceRange{
			Low:     math.Max(0, cost*(1-band)),
			High:    cost * (1 + band),
			Average: cost,
		},
		Trend:           trend,
		BasedOn:         len(matches),
		Recommendations: e.recommendations(item, stats, trend, confidence),
		Message:         fmt.Sprintf("Estimated from %d comparable records", len(matches)),
	}
}

// QuantityFactor discounts quantities well above the historical average and
// charges a premium for quantities well below it.
func QuantityFactor(quantity, historicalAverage float64) float64 {
	if historicalAverage <= 0 {
		return 1.0
	}
	ratio := quantity / historicalAverage
	switch {
	case ratio > 2:
		return 0.9
	case ratio > 1.5:
		return 0.95
	case ratio < 0.5:
		return 1.10
	default:
		return 1.0
	}
}

func pricedMatches(matches []domain.SimilarityResult) []domain.SimilarityResult {
	priced := make([]domain.SimilarityResult, 0, len(matches))
	for _, m := range matches {
		if m.Record.EffectivePrice() > 0 {
			priced = append(priced, m)
		}
	}
	return priced
}

func noDataEstimate(item domain.RequestedItem) domain.ItemEstimate {
	return domain.ItemEstimate{
		Item:            item,
		EstimatedCost:   nil,
		Confidence:      0,
		Trend:           insufficientTrend(),
		Recommendations: []string{"Request supplier quotes to establish a price baseline"},
		Message:         noDataMessage,
	}
}

func quantityOrOne(quantity float64) float64 {
	if quantity == 0 {
		return 1
	}
	return quantity
}
