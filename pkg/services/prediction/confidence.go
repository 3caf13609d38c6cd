package prediction

import (
	"math"
	"time"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/services/pricestats"
)

const fitWeight = 15

// PredictionConfidence scores volume, consistency, recency of the newest record
// and regression fit. Records must be sorted by date.
func PredictionConfidence(
	records []domain.HistoricalRecord,
	stats domain.PriceStatistics,
	rSquared float64,
	asOf time.Time,
) float64 {
	if len(records) == 0 {
		return 0
	}

	cv := math.Inf(1)
	if stats.Average > 0 {
		cv = stats.CoefficientOfVariation()
	}

	last := records[len(records)-1].Date
	score := pricestats.VolumeScore(len(records)) +
		pricestats.ConsistencyScore(cv) +
		RecencyScore(asOf.Sub(last)) +
		pricestats.Clamp(rSquared, 0, 1)*fitWeight

	return math.Round(pricestats.Clamp(score, 0, 100))
}

// RecencyScore rewards fresh data and penalizes data older than a quarter.
func RecencyScore(age time.Duration) float64 {
	days := age.Hours() / hoursPerDay
	switch {
	case days <= 7:
		return 15
	case days <= 30:
		return 10
	case days <= 90:
		return 5
	default:
		return -10
	}
}
