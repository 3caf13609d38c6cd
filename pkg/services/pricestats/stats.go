// Package pricestats holds the descriptive statistics and least squares helpers
// shared by the estimator and the predictor.
package pricestats

import (
	"errors"
	"math"
	"sort"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
)

var ErrEmptySample = errors.New("empty price sample")

// Describe computes min, max, mean, median and population standard deviation.
func Describe(sample []float64) (domain.PriceStatistics, error) {
	if len(sample) == 0 {
		return domain.PriceStatistics{}, ErrEmptySample
	}

	minV, maxV := sample[0], sample[0]
	for _, v := range sample[1:] {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}

	return domain.PriceStatistics{
		Min:     minV,
		Max:     maxV,
		Average: Mean(sample),
		Median:  Median(sample),
		StdDev:  StdDev(sample),
	}, nil
}

func Mean(sample []float64) float64 {
	if len(sample) == 0 {
		return 0
	}
	var sum float64
	for _, v := range sample {
		sum += v
	}
	return sum / float64(len(sample))
}

// Median averages the two middle values of an even-sized sample.
// The input slice is not reordered.
func Median(sample []float64) float64 {
	n := len(sample)
	if n == 0 {
		return 0
	}
	sorted := append([]float64(nil), sample...)
	sort.Float64s(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// StdDev is the population standard deviation.
func StdDev(sample []float64) float64 {
	if len(sample) == 0 {
		return 0
	}
	mean := Mean(sample)
	var variance float64
	for _, v := range sample {
		d := v - mean
		variance += d * d
	}
	return math.Sqrt(variance / float64(len(sample)))
}

// CoefficientOfVariation returns stddev/mean, 0 when the mean is 0.
func CoefficientOfVariation(sample []float64) float64 {
	mean := Mean(sample)
	if mean == 0 {
		return 0
	}
	return Sanitize(StdDev(sample) / mean)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sanitize maps NaN and infinities to 0.
func Sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
