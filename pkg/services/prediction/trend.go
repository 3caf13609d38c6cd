package prediction

import (
	"fmt"
	"math"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/services/pricestats"
)

const (
	hoursPerDay    = 24
	rateWindowDays = 30
	flatSlope      = 1e-9
)

// series is a price history laid out on day offsets from its first observation.
// Records must be sorted by date.
type series struct {
	offsets []float64
	prices  []float64
}

func newSeries(records []domain.HistoricalRecord) series {
	s := series{
		offsets: make([]float64, len(records)),
		prices:  make([]float64, len(records)),
	}
	if len(records) == 0 {
		return s
	}
	first := records[0].Date
	for i, r := range records {
		s.offsets[i] = r.Date.Sub(first).Hours() / hoursPerDay
		s.prices[i] = r.EffectivePrice()
	}
	return s
}

func (s series) lastOffset() float64 {
	if len(s.offsets) == 0 {
		return 0
	}
	return s.offsets[len(s.offsets)-1]
}

// RegressionTrend fits price against days since the first record. Records must be
// sorted by date. The rate is the relative change over 30 days.
func RegressionTrend(records []domain.HistoricalRecord) domain.RegressionTrend {
	return regressionTrend(newSeries(records))
}

func regressionTrend(s series) domain.RegressionTrend {
	fit := pricestats.LinearRegression(s.offsets, s.prices)
	avg := pricestats.Mean(s.prices)

	trend := domain.RegressionTrend{
		Slope:     fit.Slope,
		Intercept: fit.Intercept,
		RSquared:  fit.RSquared,
	}

	var rate float64
	if avg != 0 {
		rate = pricestats.Sanitize(math.Abs(fit.Slope * rateWindowDays / avg))
	}

	switch {
	case len(s.prices) < 2:
		trend.Trend = domain.Trend{Direction: domain.TrendStable, Message: "Insufficient data"}
	case fit.Slope > flatSlope:
		trend.Trend = domain.Trend{
			Direction: domain.TrendIncreasing,
			Rate:      rate,
			Message:   fmt.Sprintf("Prices rising about %.1f%% per month", rate*100),
		}
	case fit.Slope < -flatSlope:
		trend.Trend = domain.Trend{
			Direction: domain.TrendDecreasing,
			Rate:      rate,
			Message:   fmt.Sprintf("Prices falling about %.1f%% per month", rate*100),
		}
	default:
		trend.Trend = domain.Trend{Direction: domain.TrendStable, Message: "Prices are stable"}
	}
	return trend
}
