package prediction

import (
	"math"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/services/pricestats"
)

const (
	regressionWeight    = 0.4
	movingAverageWeight = 0.3
	smoothingWeight     = 0.3

	movingAverageWindow = 5
	smoothingAlpha      = 0.3
)

// ensemble blends the regression projection at horizon days past the last record
// with a short moving average and exponential smoothing.
func ensemble(s series, trend domain.RegressionTrend, horizon int) domain.EnsembleBreakdown {
	fit := pricestats.Regression{Slope: trend.Slope, Intercept: trend.Intercept}
	regression := math.Max(0, pricestats.Sanitize(fit.Predict(s.lastOffset()+float64(horizon))))
	sma := MovingAverage(s.prices, movingAverageWindow)
	es := ExponentialSmoothing(s.prices, smoothingAlpha)

	return domain.EnsembleBreakdown{
		Regression:           regression,
		MovingAverage:        sma,
		ExponentialSmoothing: es,
		Combined:             regressionWeight*regression + movingAverageWeight*sma + smoothingWeight*es,
	}
}

// MovingAverage is the mean of the last window values, or of all values when fewer.
func MovingAverage(values []float64, window int) float64 {
	if len(values) == 0 || window <= 0 {
		return 0
	}
	if len(values) > window {
		values = values[len(values)-window:]
	}
	return pricestats.Mean(values)
}

// ExponentialSmoothing returns the final level of simple exponential smoothing
// seeded with the first value.
func ExponentialSmoothing(values []float64, alpha float64) float64 {
	if len(values) == 0 {
		return 0
	}
	level := values[0]
	for _, v := range values[1:] {
		level = alpha*v + (1-alpha)*level
	}
	return level
}
