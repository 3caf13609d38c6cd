package api

import "time"

type RequestedItem struct {
	ProductName    string            `json:"product_name"`
	Description    string            `json:"description,omitempty"`
	Quantity       float64           `json:"quantity"`
	Unit           string            `json:"unit,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

type HistoricalRecord struct {
	ID             string            `json:"id,omitempty"`
	ProductName    string            `json:"product_name"`
	Description    string            `json:"description,omitempty"`
	UnitPrice      float64           `json:"unit_price,omitempty"`
	Price          float64           `json:"price,omitempty"`
	Quantity       float64           `json:"quantity,omitempty"`
	Unit           string            `json:"unit,omitempty"`
	Currency       string            `json:"currency,omitempty"`
	SupplierID     string            `json:"supplier_id,omitempty"`
	Date           *time.Time        `json:"date,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

type Options struct {
	Currency      string     `json:"currency,omitempty"`
	Horizon       int        `json:"horizon,omitempty"`
	InflationRate float64    `json:"inflation_rate,omitempty"`
	DemandFactor  float64    `json:"demand_factor,omitempty"`
	Quantity      *float64   `json:"quantity,omitempty"`
	AsOf          *time.Time `json:"as_of,omitempty"`
}

type ItemEstimateRequest struct {
	Item    RequestedItem `json:"item"`
	Options Options       `json:"options"`
}

type RFQEstimateRequest struct {
	Items   []RequestedItem `json:"items"`
	Options Options         `json:"options"`
	Budget  *float64        `json:"budget,omitempty"`
}

type PredictionRequest struct {
	Item    RequestedItem `json:"item"`
	Options Options       `json:"options"`
}

type BudgetRequest struct {
	TotalEstimate float64 `json:"total_estimate"`
	Budget        float64 `json:"budget"`
}

type HistoryIngestRequest struct {
	Records []HistoricalRecord `json:"records"`
}

type Trend struct {
	Direction string   `json:"direction"`
	Rate      float64  `json:"rate"`
	Message   string   `json:"message"`
	Slope     *float64 `json:"slope,omitempty"`
	Intercept *float64 `json:"intercept,omitempty"`
	RSquared  *float64 `json:"r_squared,omitempty"`
}

type PriceRange struct {
	Low     float64 `json:"low"`
	High    float64 `json:"high"`
	Average float64 `json:"average"`
}

type ItemEstimate struct {
	Item            RequestedItem `json:"item"`
	EstimatedCost   *float64      `json:"estimated_cost"`
	UnitCost        float64       `json:"unit_cost"`
	Confidence      float64       `json:"confidence"`
	Range           PriceRange    `json:"range"`
	Trend           Trend         `json:"trend"`
	BasedOn         int           `json:"based_on"`
	Recommendations []string      `json:"recommendations"`
	Message         string        `json:"message,omitempty"`
}

type BudgetComparison struct {
	Status      string  `json:"status"`
	Difference  float64 `json:"difference"`
	PercentDiff float64 `json:"percent_diff"`
	Message     string  `json:"message"`
}

type RFQEstimate struct {
	TotalEstimate float64           `json:"total_estimate"`
	TotalRange    PriceRange        `json:"total_range"`
	Confidence    float64           `json:"confidence"`
	Currency      string            `json:"currency"`
	Items         []ItemEstimate    `json:"items"`
	Budget        *BudgetComparison `json:"budget,omitempty"`
}

type Seasonality struct {
	Pattern   string  `json:"pattern"`
	Detected  bool    `json:"detected"`
	PeakMonth string  `json:"peak_month,omitempty"`
	LowMonth  string  `json:"low_month,omitempty"`
	Variation float64 `json:"variation"`
	Message   string  `json:"message"`
}

type PriceFactor struct {
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Rate   float64 `json:"rate"`
	Impact float64 `json:"impact"`
}

type Ensemble struct {
	Regression           float64 `json:"regression"`
	MovingAverage        float64 `json:"moving_average"`
	ExponentialSmoothing float64 `json:"exponential_smoothing"`
	Combined             float64 `json:"combined"`
}

type PricePrediction struct {
	Item           RequestedItem `json:"item"`
	PredictedPrice *float64      `json:"predicted_price"`
	PriceRange     PriceRange    `json:"price_range"`
	Confidence     float64       `json:"confidence"`
	Trend          Trend         `json:"trend"`
	Seasonality    Seasonality   `json:"seasonality"`
	Factors        []PriceFactor `json:"factors"`
	Ensemble       Ensemble      `json:"ensemble"`
	BasedOn        int           `json:"based_on"`
	Horizon        int           `json:"horizon"`
	NextUpdate     time.Time     `json:"next_update"`
	Message        string        `json:"message,omitempty"`
}

type HistoryStats struct {
	RecordsCount    int64      `json:"records_count"`
	FirstRecordTime *time.Time `json:"first_record_time,omitempty"`
	LastRecordTime  *time.Time `json:"last_record_time,omitempty"`
}

type IngestResult struct {
	Imported int `json:"imported"`
}

type Error struct {
	Error string `json:"error"`
}
