package prediction

import (
	"fmt"
	"math"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
)

const (
	volumeDiscountThreshold = 100
	volumeDiscountPerUnit   = 0.05 / 1000
	maxVolumeDiscount       = 0.15
)

// ApplyFactors layers inflation, demand and volume discount onto price. Each rate
// applies to the unadjusted price and the adjusted price never goes below zero.
func ApplyFactors(price float64, opts domain.Options, quantity float64) (float64, []domain.PriceFactor) {
	factors := make([]domain.PriceFactor, 0, 3)
	adjusted := price

	if opts.InflationRate != 0 {
		impact := price * opts.InflationRate
		adjusted += impact
		factors = append(factors, domain.PriceFactor{
			Name:   fmt.Sprintf("Inflation %.1f%%", opts.InflationRate*100),
			Type:   domain.FactorInflation,
			Rate:   opts.InflationRate,
			Impact: impact,
		})
	}

	if opts.DemandFactor != 0 {
		impact := price * opts.DemandFactor
		adjusted += impact
		factors = append(factors, domain.PriceFactor{
			Name:   fmt.Sprintf("Demand %+.1f%%", opts.DemandFactor*100),
			Type:   domain.FactorDemand,
			Rate:   opts.DemandFactor,
			Impact: impact,
		})
	}

	if discount := VolumeDiscount(quantity); discount > 0 {
		impact := -price * discount
		adjusted += impact
		factors = append(factors, domain.PriceFactor{
			Name:   fmt.Sprintf("Volume discount %.1f%%", discount*100),
			Type:   domain.FactorVolumeDiscount,
			Rate:   discount,
			Impact: impact,
		})
	}

	return math.Max(0, adjusted), factors
}

// VolumeDiscount is 5% per thousand units above 100 units, capped at 15%.
func VolumeDiscount(quantity float64) float64 {
	if quantity <= volumeDiscountThreshold {
		return 0
	}
	return math.Min(quantity*volumeDiscountPerUnit, maxVolumeDiscount)
}
