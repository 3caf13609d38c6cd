package prediction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
)

func monthly(years int, price func(time.Month) float64) []domain.HistoricalRecord {
	var records []domain.HistoricalRecord
	for i := 0; i < years*12; i++ {
		date := start.AddDate(0, i, 0)
		records = append(records, domain.HistoricalRecord{
			ProductName: "Air conditioner",
			UnitPrice:   price(date.Month()),
			Date:        date,
		})
	}
	return records
}

func TestDetectSeasonality(t *testing.T) {
	t.Run("summer peak", func(t *testing.T) {
		records := monthly(2, func(m time.Month) float64 {
			if m == time.July {
				return 200
			}
			return 100
		})
		s := DetectSeasonality(records)
		assert.Equal(t, domain.SeasonalityDetected, s.Pattern)
		assert.True(t, s.Detected)
		assert.Equal(t, "July", s.PeakMonth)
		assert.Equal(t, "January", s.LowMonth)
		assert.Greater(t, s.Variation, 0.15)
	})

	t.Run("flat prices", func(t *testing.T) {
		s := DetectSeasonality(monthly(1, func(time.Month) float64 { return 100 }))
		assert.Equal(t, domain.SeasonalityStable, s.Pattern)
		assert.False(t, s.Detected)
		assert.Empty(t, s.PeakMonth)
	})

	t.Run("too few points", func(t *testing.T) {
		records := monthly(1, func(time.Month) float64 { return 100 })[:11]
		assert.Equal(t, domain.SeasonalityInsufficient, DetectSeasonality(records).Pattern)
	})

	t.Run("too few months", func(t *testing.T) {
		var records []domain.HistoricalRecord
		for i := 0; i < 15; i++ {
			records = append(records, domain.HistoricalRecord{
				UnitPrice: float64(100 + i),
				Date:      start.AddDate(0, i%3, i),
			})
		}
		assert.Equal(t, domain.SeasonalityInsufficient, DetectSeasonality(records).Pattern)
	})
}

func TestApplyFactors(t *testing.T) {
	price, factors := ApplyFactors(100, domain.Options{InflationRate: 0.05, DemandFactor: 0.1}, 500)

	assert.InDelta(t, 112.5, price, 1e-9)
	require.Len(t, factors, 3)
	assert.Equal(t, domain.FactorInflation, factors[0].Type)
	assert.InDelta(t, 5, factors[0].Impact, 1e-9)
	assert.Equal(t, domain.FactorDemand, factors[1].Type)
	assert.InDelta(t, 10, factors[1].Impact, 1e-9)
	assert.Equal(t, domain.FactorVolumeDiscount, factors[2].Type)
	assert.InDelta(t, 0.025, factors[2].Rate, 1e-9)
	assert.InDelta(t, -2.5, factors[2].Impact, 1e-9)

	t.Run("no factors", func(t *testing.T) {
		price, factors := ApplyFactors(100, domain.Options{}, 10)
		assert.Equal(t, 100.0, price)
		assert.Empty(t, factors)
	})

	t.Run("never negative", func(t *testing.T) {
		price, _ := ApplyFactors(100, domain.Options{DemandFactor: -2}, 0)
		assert.Equal(t, 0.0, price)
	})
}

func TestVolumeDiscount(t *testing.T) {
	assert.Equal(t, 0.0, VolumeDiscount(100))
	assert.InDelta(t, 0.05, VolumeDiscount(1000), 1e-9)
	assert.InDelta(t, 0.15, VolumeDiscount(3000), 1e-9)
	assert.InDelta(t, 0.15, VolumeDiscount(50000), 1e-9)
}

func TestMovingAverageAndSmoothing(t *testing.T) {
	assert.InDelta(t, 5, MovingAverage([]float64{1, 2, 3, 4, 5, 6, 7}, 5), 1e-9)
	assert.InDelta(t, 1.5, MovingAverage([]float64{1, 2}, 5), 1e-9)
	assert.Equal(t, 0.0, MovingAverage(nil, 5))

	assert.Equal(t, 10.0, ExponentialSmoothing([]float64{10}, 0.3))
	assert.InDelta(t, 108.1, ExponentialSmoothing([]float64{100, 110, 120}, 0.3), 1e-9)
	assert.Equal(t, 0.0, ExponentialSmoothing(nil, 0.3))
}

func TestRecencyScore(t *testing.T) {
	day := 24 * time.Hour
	assert.Equal(t, 15.0, RecencyScore(3*day))
	assert.Equal(t, 10.0, RecencyScore(20*day))
	assert.Equal(t, 5.0, RecencyScore(60*day))
	assert.Equal(t, -10.0, RecencyScore(200*day))
}

func TestPredictionConfidence_Clamped(t *testing.T) {
	stats := domain.PriceStatistics{Average: 100, StdDev: 90}
	records := cementHistory(10, 200)
	score := PredictionConfidence(records, stats, 0, start.AddDate(5, 0, 0))
	// 5 volume + 5 consistency - 10 recency
	assert.Equal(t, 0.0, score)
	assert.Equal(t, 0.0, PredictionConfidence(nil, stats, 1, start))
}

func TestRegressionTrend(t *testing.T) {
	t.Run("falling", func(t *testing.T) {
		trend := RegressionTrend(cementHistory(120, 110, 100))
		assert.Equal(t, domain.TrendDecreasing, trend.Direction)
		assert.InDelta(t, -1.0/3, trend.Slope, 1e-9)
		assert.InDelta(t, 10.0/110, trend.Rate, 1e-9)
		assert.InDelta(t, 1, trend.RSquared, 1e-9)
	})

	t.Run("flat", func(t *testing.T) {
		trend := RegressionTrend(cementHistory(50, 50, 50))
		assert.Equal(t, domain.TrendStable, trend.Direction)
		assert.Equal(t, 0.0, trend.Rate)
	})

	t.Run("single record", func(t *testing.T) {
		trend := RegressionTrend(cementHistory(50))
		assert.Equal(t, "Insufficient data", trend.Message)
	})
}
