package pricestats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearRegression(t *testing.T) {
	tests := []struct {
		name      string
		xs, ys    []float64
		slope     float64
		intercept float64
		rSquared  float64
	}{
		{
			name:      "perfect line",
			xs:        []float64{0, 1, 2},
			ys:        []float64{100, 110, 120},
			slope:     10,
			intercept: 100,
			rSquared:  1,
		},
		{
			name:      "flat series",
			xs:        []float64{0, 1, 2, 3},
			ys:        []float64{5, 5, 5, 5},
			slope:     0,
			intercept: 5,
			rSquared:  0,
		},
		{
			name:      "degenerate x",
			xs:        []float64{2, 2, 2},
			ys:        []float64{1, 2, 3},
			slope:     0,
			intercept: 2,
			rSquared:  0,
		},
		{
			name: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := LinearRegression(tt.xs, tt.ys)
			assert.InDelta(t, tt.slope, r.Slope, 1e-9)
			assert.InDelta(t, tt.intercept, r.Intercept, 1e-9)
			assert.InDelta(t, tt.rSquared, r.RSquared, 1e-9)
		})
	}
}

func TestLinearRegression_NoisyFit(t *testing.T) {
	r := LinearRegression([]float64{0, 1, 2, 3}, []float64{1, 3, 2, 4})
	assert.InDelta(t, 0.8, r.Slope, 1e-9)
	assert.InDelta(t, 1.3, r.Intercept, 1e-9)
	assert.InDelta(t, 0.64, r.RSquared, 1e-9)
	assert.InDelta(t, 3.7, r.Predict(3), 1e-9)
}

func TestIndexSeries(t *testing.T) {
	assert.Equal(t, []float64{0, 1, 2}, IndexSeries(3))
	assert.Empty(t, IndexSeries(0))
}
