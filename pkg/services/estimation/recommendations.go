package estimation

import (
	"fmt"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
)

func (e *Estimator) recommendations(
	item domain.RequestedItem,
	stats domain.PriceStatistics,
	trend domain.Trend,
	confidence float64,
) []string {
	recommendations := make([]string, 0)

	if cv := stats.CoefficientOfVariation(); cv > e.settings.VolatilityCV {
		recommendations = append(recommendations, fmt.Sprintf(
			"High price volatility (%.0f%% variation); collect fresh supplier quotes before committing", cv*100))
	}

	switch trend.Direction {
	case domain.TrendIncreasing:
		recommendations = append(recommendations, fmt.Sprintf(
			"Prices are rising about %.1f%%; consider purchasing soon or locking in current prices", trend.Rate*100))
	case domain.TrendDecreasing:
		recommendations = append(recommendations, fmt.Sprintf(
			"Prices are falling about %.1f%%; consider waiting or negotiating a lower price", trend.Rate*100))
	}

	if item.Quantity > e.settings.BulkQuantity {
		recommendations = append(recommendations,
			"Large order quantity; negotiate a volume discount with suppliers")
	}

	if confidence < e.settings.LowConfidence {
		recommendations = append(recommendations,
			"Limited comparable history; treat this estimate as indicative")
	}

	return recommendations
}
