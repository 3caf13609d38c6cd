// Package prediction projects future unit prices from dated purchase history.
package prediction

import (
	"fmt"
	"math"
	"time"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/services/matching"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/services/pricestats"
)

const (
	DefaultHorizonDays = 30

	minPredictionPoints = 2
	predictionBand      = 0.10
	nextUpdateDays      = 7
)

type Predictor struct {
	horizon int
	now     func() time.Time
}

// NewPredictor returns a Predictor projecting horizon days ahead when the caller
// does not set one. A non-positive horizon falls back to 30 days.
func NewPredictor(horizon int) *Predictor {
	if horizon <= 0 {
		horizon = DefaultHorizonDays
	}
	return &Predictor{horizon: horizon, now: time.Now}
}

// PredictItemPrice forecasts the unit price of item from records in pool whose
// product names contain one another. With fewer than two dated priced records
// the prediction has a nil price and zero confidence.
func (p *Predictor) PredictItemPrice(item domain.RequestedItem, pool []domain.HistoricalRecord, opts domain.Options) domain.PricePrediction {
	horizon := opts.Horizon
	if horizon <= 0 {
		horizon = p.horizon
	}
	asOf := opts.AsOf
	if asOf.IsZero() {
		asOf = p.now()
	}

	records := matching.FindComparable(item, pool)
	prediction := domain.PricePrediction{
		Item:       item,
		BasedOn:    len(records),
		Horizon:    horizon,
		NextUpdate: asOf.AddDate(0, 0, nextUpdateDays),
		Factors:    []domain.PriceFactor{},
	}

	if len(records) < minPredictionPoints {
		prediction.Trend = domain.RegressionTrend{
			Trend: domain.Trend{Direction: domain.TrendStable, Message: "Insufficient data"},
		}
		prediction.Seasonality = DetectSeasonality(records)
		prediction.Message = fmt.Sprintf("Insufficient historical data: %d comparable records, need at least %d",
			len(records), minPredictionPoints)
		return prediction
	}

	s := newSeries(records)
	// never empty: at least two records
	stats, _ := pricestats.Describe(s.prices)
	trend := regressionTrend(s)
	blend := ensemble(s, trend, horizon)

	quantity := item.Quantity
	if opts.Quantity != nil {
		quantity = *opts.Quantity
	}
	price, factors := ApplyFactors(blend.Combined, opts, quantity)

	prediction.PredictedPrice = &price
	prediction.PriceRange = domain.PriceRange{
		Low:     math.Max(0, price*(1-predictionBand)),
		High:    price * (1 + predictionBand),
		Average: price,
	}
	prediction.Confidence = PredictionConfidence(records, stats, trend.RSquared, asOf)
	prediction.Trend = trend
	prediction.Seasonality = DetectSeasonality(records)
	prediction.Factors = factors
	prediction.Ensemble = blend
	prediction.Message = fmt.Sprintf("Predicted %d days ahead from %d records", horizon, len(records))
	return prediction
}
