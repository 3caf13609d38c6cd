package domain

import "time"

// RegressionTrend is a Trend backed by an ordinary least squares fit over day offsets.
type RegressionTrend struct {
	Trend
	Slope     float64
	Intercept float64
	RSquared  float64
}

type SeasonalityPattern string

const (
	SeasonalityDetected     SeasonalityPattern = "seasonal"
	SeasonalityStable       SeasonalityPattern = "stable"
	SeasonalityInsufficient SeasonalityPattern = "insufficient_data"
)

// Seasonality reports month-of-year price variation.
type Seasonality struct {
	Pattern   SeasonalityPattern
	Detected  bool
	PeakMonth string
	LowMonth  string
	Variation float64
	Message   string
}

type FactorType string

const (
	FactorInflation      FactorType = "inflation"
	FactorDemand         FactorType = "demand"
	FactorVolumeDiscount FactorType = "volume_discount"
)

// PriceFactor is one labeled adjustment applied on top of the ensemble price.
type PriceFactor struct {
	Name   string
	Type   FactorType
	Rate   float64
	Impact float64
}

// EnsembleBreakdown keeps the individual model outputs behind a prediction.
type EnsembleBreakdown struct {
	Regression           float64
	MovingAverage        float64
	ExponentialSmoothing float64
	Combined             float64
}

// PricePrediction is a forward-looking unit price for a requested item.
// PredictedPrice is nil when there is not enough history.
type PricePrediction struct {
	Item           RequestedItem
	PredictedPrice *float64
	PriceRange     PriceRange
	Confidence     float64
	Trend          RegressionTrend
	Seasonality    Seasonality
	Factors        []PriceFactor
	Ensemble       EnsembleBreakdown
	BasedOn        int
	Horizon        int
	NextUpdate     time.Time
	Message        string
}
