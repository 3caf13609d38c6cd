package pricestats

import "math"

const degenerateDenominator = 1e-10

// Regression is the result of an ordinary least squares fit y = Slope*x + Intercept.
type Regression struct {
	Slope     float64
	Intercept float64
	RSquared  float64
}

// Predict evaluates the fitted line at x.
func (r Regression) Predict(x float64) float64 {
	return r.Slope*x + r.Intercept
}

// LinearRegression fits ys against xs. Samples of different length are truncated
// to the shorter one. A degenerate x spread yields a flat line through the mean.
func LinearRegression(xs, ys []float64) Regression {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n == 0 {
		return Regression{}
	}

	var sumX, sumY, sumXY, sumX2 float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumX2 += xs[i] * xs[i]
	}

	fn := float64(n)
	denom := fn*sumX2 - sumX*sumX
	if math.Abs(denom) < degenerateDenominator {
		return Regression{Intercept: sumY / fn}
	}

	slope := (fn*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / fn

	meanY := sumY / fn
	var ssTot, ssRes float64
	for i := 0; i < n; i++ {
		pred := slope*xs[i] + intercept
		ssRes += (ys[i] - pred) * (ys[i] - pred)
		ssTot += (ys[i] - meanY) * (ys[i] - meanY)
	}

	var rSquared float64
	if ssTot > 0 {
		rSquared = Clamp(1-ssRes/ssTot, 0, 1)
	}

	return Regression{
		Slope:     Sanitize(slope),
		Intercept: Sanitize(intercept),
		RSquared:  Sanitize(rSquared),
	}
}

// IndexSeries returns 0..n-1 as float64, the x axis of an index-based fit.
func IndexSeries(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}
