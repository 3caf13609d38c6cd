package domain

import "time"

// RequestedItem is a line item a caller wants priced.
type RequestedItem struct {
	ProductName    string
	Description    string
	Quantity       float64
	Unit           string
	Specifications map[string]string
}

// HistoricalRecord is a past quote or purchase of a product.
type HistoricalRecord struct {
	ID             string
	ProductName    string
	Description    string
	UnitPrice      float64
	Price          float64
	Quantity       float64
	Unit           string
	Currency       string
	SupplierID     string
	Date           time.Time
	Specifications map[string]string
}

// EffectivePrice returns the per-unit price, preferring UnitPrice when set.
func (r HistoricalRecord) EffectivePrice() float64 {
	if r.UnitPrice > 0 {
		return r.UnitPrice
	}
	return r.Price
}

func (r HistoricalRecord) HasDate() bool {
	return !r.Date.IsZero()
}

// SimilarityResult pairs a historical record with its similarity score (0-100).
type SimilarityResult struct {
	Record     HistoricalRecord
	Similarity float64
}

// PriceStatistics summarizes a sample of prices.
type PriceStatistics struct {
	Min     float64
	Max     float64
	Average float64
	Median  float64
	StdDev  float64
}

// CoefficientOfVariation returns StdDev/Average, or 0 for a zero average.
func (s PriceStatistics) CoefficientOfVariation() float64 {
	if s.Average == 0 {
		return 0
	}
	return s.StdDev / s.Average
}

type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

// Trend describes the direction and relative rate of price movement.
type Trend struct {
	Direction TrendDirection
	Rate      float64
	Message   string
}

// PriceRange is an ordered, non-negative band around an estimate.
type PriceRange struct {
	Low     float64
	High    float64
	Average float64
}

// ItemEstimate is the cost estimate of a single requested item.
// EstimatedCost is nil when no comparable history exists.
type ItemEstimate struct {
	Item            RequestedItem
	EstimatedCost   *float64
	UnitCost        float64
	Confidence      float64
	Range           PriceRange
	Trend           Trend
	BasedOn         int
	Recommendations []string
	Message         string
}

// Cost returns the estimated cost, treating a missing estimate as zero.
func (e ItemEstimate) Cost() float64 {
	if e.EstimatedCost == nil {
		return 0
	}
	return *e.EstimatedCost
}

// RFQEstimate aggregates the item estimates of a request for quotation.
type RFQEstimate struct {
	TotalEstimate float64
	TotalRange    PriceRange
	Confidence    float64
	Currency      string
	Items         []ItemEstimate
}

type BudgetStatus string

const (
	BudgetUnknown    BudgetStatus = "unknown"
	BudgetWithin     BudgetStatus = "within_budget"
	BudgetOverLow    BudgetStatus = "over_budget_low"
	BudgetOverMedium BudgetStatus = "over_budget_medium"
	BudgetOverHigh   BudgetStatus = "over_budget_high"
)

// BudgetComparison classifies an estimate against a stated budget.
type BudgetComparison struct {
	Status      BudgetStatus
	Difference  float64
	PercentDiff float64
	Message     string
}

// Options tune a single estimate or prediction call.
type Options struct {
	Currency      string
	Horizon       int // in days
	InflationRate float64
	DemandFactor  float64
	Quantity      *float64
	// AsOf is the reference time for recency and next-update dates.
	AsOf time.Time
}
