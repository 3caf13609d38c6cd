package prediction

import (
	"fmt"
	"time"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/services/pricestats"
)

const (
	minSeasonalPoints   = 12
	minSeasonalMonths   = 6
	seasonalVariationCV = 0.15
)

// DetectSeasonality compares the mean price of each calendar month.
func DetectSeasonality(records []domain.HistoricalRecord) domain.Seasonality {
	dated := 0
	sums := make(map[time.Month]float64)
	counts := make(map[time.Month]int)
	for _, r := range records {
		if !r.HasDate() {
			continue
		}
		dated++
		sums[r.Date.Month()] += r.EffectivePrice()
		counts[r.Date.Month()]++
	}

	if dated < minSeasonalPoints || len(counts) < minSeasonalMonths {
		return domain.Seasonality{
			Pattern: domain.SeasonalityInsufficient,
			Message: "Insufficient data to detect seasonality",
		}
	}

	means := make([]float64, 0, len(counts))
	var peak, low time.Month
	var peakMean, lowMean float64
	for month := time.January; month <= time.December; month++ {
		if counts[month] == 0 {
			continue
		}
		mean := sums[month] / float64(counts[month])
		means = append(means, mean)
		if peak == 0 || mean > peakMean {
			peak, peakMean = month, mean
		}
		if low == 0 || mean < lowMean {
			low, lowMean = month, mean
		}
	}

	variation := pricestats.CoefficientOfVariation(means)
	if variation <= seasonalVariationCV {
		return domain.Seasonality{
			Pattern:   domain.SeasonalityStable,
			Variation: variation,
			Message:   "No significant seasonal pattern",
		}
	}

	return domain.Seasonality{
		Pattern:   domain.SeasonalityDetected,
		Detected:  true,
		PeakMonth: peak.String(),
		LowMonth:  low.String(),
		Variation: variation,
		Message:   fmt.Sprintf("Prices peak in %s and are lowest in %s", peak, low),
	}
}
