package estimation

import (
	"math"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/services/pricestats"
)

const similarityWeight = 30

// Confidence combines match volume, price consistency and average similarity
// into a 0-100 score.
func Confidence(matches []domain.SimilarityResult, stats domain.PriceStatistics) float64 {
	if len(matches) == 0 {
		return 0
	}

	var sum float64
	for _, m := range matches {
		sum += m.Similarity
	}
	avgSimilarity := sum / float64(len(matches))

	cv := math.Inf(1)
	if stats.Average > 0 {
		cv = stats.CoefficientOfVariation()
	}

	score := pricestats.VolumeScore(len(matches)) +
		pricestats.ConsistencyScore(cv) +
		avgSimilarity/100*similarityWeight

	return math.Round(pricestats.Clamp(score, 0, 100))
}

// rangeBand widens the estimate range as confidence drops.
func rangeBand(confidence float64) float64 {
	switch {
	case confidence < 50:
		return 0.30
	case confidence < 75:
		return 0.20
	default:
		return 0.15
	}
}
