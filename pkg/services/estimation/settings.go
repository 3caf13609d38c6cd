package estimation

// Settings contains configurable behavior of the cost estimator
type Settings struct {
	// DefaultCurrency labels results when the caller gives none (default: "USD")
	DefaultCurrency string
	// VolatilityCV is the coefficient of variation above which a volatility warning is emitted (default: 0.3)
	VolatilityCV float64
	// BulkQuantity is the quantity above which a volume discount hint is emitted (default: 100)
	BulkQuantity float64
	// LowConfidence is the confidence below which a limited-data hint is emitted (default: 50)
	LowConfidence float64
	// MaxConcurrency bounds parallel item estimation in an RFQ; 0 means GOMAXPROCS (default: 0)
	MaxConcurrency int
}

// DefaultSettings returns the default configuration for cost estimation
func DefaultSettings() Settings {
	return Settings{
		DefaultCurrency: "USD",
		VolatilityCV:    0.3,
		BulkQuantity:    100,
		LowConfidence:   50,
		MaxConcurrency:  0,
	}
}
