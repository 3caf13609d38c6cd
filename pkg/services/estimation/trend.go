package estimation

import (
	"fmt"
	"math"
	"sort"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/services/pricestats"
)

const (
	minTrendPoints = 3
	trendThreshold = 0.05
	maxTrendRate   = 0.2
)

// CostTrend fits price against chronological index over the dated records.
// A slope beyond 5% of the average price in either direction is a trend; the rate
// is the relative slope capped at 20%.
func CostTrend(records []domain.HistoricalRecord) domain.Trend {
	dated := make([]domain.HistoricalRecord, 0, len(records))
	for _, r := range records {
		if r.HasDate() {
			dated = append(dated, r)
		}
	}
	if len(dated) < minTrendPoints {
		return insufficientTrend()
	}

	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].Date.Before(dated[j].Date)
	})

	prices := make([]float64, len(dated))
	for i, r := range dated {
		prices[i] = r.EffectivePrice()
	}

	avg := pricestats.Mean(prices)
	if avg == 0 {
		return domain.Trend{Direction: domain.TrendStable, Message: "Prices are stable"}
	}

	fit := pricestats.LinearRegression(pricestats.IndexSeries(len(prices)), prices)
	relative := pricestats.Sanitize(fit.Slope / avg)
	rate := math.Min(math.Abs(relative), maxTrendRate)

	switch {
	case relative > trendThreshold:
		return domain.Trend{
			Direction: domain.TrendIncreasing,
			Rate:      rate,
			Message:   fmt.Sprintf("Prices increasing by about %.1f%% per purchase", rate*100),
		}
	case relative < -trendThreshold:
		return domain.Trend{
			Direction: domain.TrendDecreasing,
			Rate:      rate,
			Message:   fmt.Sprintf("Prices decreasing by about %.1f%% per purchase", rate*100),
		}
	default:
		return domain.Trend{Direction: domain.TrendStable, Rate: rate, Message: "Prices are stable"}
	}
}

func insufficientTrend() domain.Trend {
	return domain.Trend{Direction: domain.TrendStable, Rate: 0, Message: "Insufficient data"}
}

func trendMultiplier(trend domain.Trend) float64 {
	switch trend.Direction {
	case domain.TrendIncreasing:
		return 1 + trend.Rate
	case domain.TrendDecreasing:
		return 1 - trend.Rate
	default:
		return 1
	}
}
