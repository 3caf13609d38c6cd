package adapters

import (
	"maps"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/api"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
)

func MapRequestedItemApiToDomain(item api.RequestedItem) domain.RequestedItem {
	return domain.RequestedItem{
		ProductName:    item.ProductName,
		Description:    item.Description,
		Quantity:       item.Quantity,
		Unit:           item.Unit,
		Specifications: maps.Clone(item.Specifications),
	}
}

func MapRequestedItemsApiToDomain(items []api.RequestedItem) []domain.RequestedItem {
	res := make([]domain.RequestedItem, 0, len(items))
	for _, item := range items {
		res = append(res, MapRequestedItemApiToDomain(item))
	}
	return res
}

func MapRequestedItemDomainToApi(item domain.RequestedItem) api.RequestedItem {
	return api.RequestedItem{
		ProductName:    item.ProductName,
		Description:    item.Description,
		Quantity:       item.Quantity,
		Unit:           item.Unit,
		Specifications: maps.Clone(item.Specifications),
	}
}

func MapOptionsApiToDomain(opts api.Options) domain.Options {
	res := domain.Options{
		Currency:      opts.Currency,
		Horizon:       opts.Horizon,
		InflationRate: opts.InflationRate,
		DemandFactor:  opts.DemandFactor,
	}
	if opts.Quantity != nil {
		q := *opts.Quantity
		res.Quantity = &q
	}
	if opts.AsOf != nil {
		res.AsOf = *opts.AsOf
	}
	return res
}

func MapPriceRangeDomainToApi(r domain.PriceRange) api.PriceRange {
	return api.PriceRange{
		Low:     roundMoney(r.Low),
		High:    roundMoney(r.High),
		Average: roundMoney(r.Average),
	}
}

func MapTrendDomainToApi(t domain.Trend) api.Trend {
	return api.Trend{
		Direction: string(t.Direction),
		Rate:      roundRate(t.Rate),
		Message:   t.Message,
	}
}

func MapRegressionTrendDomainToApi(t domain.RegressionTrend) api.Trend {
	res := MapTrendDomainToApi(t.Trend)
	slope, intercept, rSquared := roundRate(t.Slope), roundMoney(t.Intercept), roundRate(t.RSquared)
	res.Slope = &slope
	res.Intercept = &intercept
	res.RSquared = &rSquared
	return res
}

func MapItemEstimateDomainToApi(e domain.ItemEstimate) api.ItemEstimate {
	recommendations := make([]string, len(e.Recommendations))
	copy(recommendations, e.Recommendations)

	return api.ItemEstimate{
		Item:            MapRequestedItemDomainToApi(e.Item),
		EstimatedCost:   roundMoneyPtr(e.EstimatedCost),
		UnitCost:        roundMoney(e.UnitCost),
		Confidence:      e.Confidence,
		Range:           MapPriceRangeDomainToApi(e.Range),
		Trend:           MapTrendDomainToApi(e.Trend),
		BasedOn:         e.BasedOn,
		Recommendations: recommendations,
		Message:         e.Message,
	}
}

// MapRFQEstimateDomainToApi rounds every item and recomputes the total from the
// rounded item costs so the response always adds up.
func MapRFQEstimateDomainToApi(e domain.RFQEstimate) api.RFQEstimate {
	res := api.RFQEstimate{
		Confidence: roundRate(e.Confidence),
		Currency:   e.Currency,
		Items:      make([]api.ItemEstimate, 0, len(e.Items)),
	}

	costs := make([]float64, 0, len(e.Items))
	lows := make([]float64, 0, len(e.Items))
	highs := make([]float64, 0, len(e.Items))
	for _, item := range e.Items {
		mapped := MapItemEstimateDomainToApi(item)
		res.Items = append(res.Items, mapped)
		if mapped.EstimatedCost != nil {
			costs = append(costs, *mapped.EstimatedCost)
		}
		lows = append(lows, mapped.Range.Low)
		highs = append(highs, mapped.Range.High)
	}

	res.TotalEstimate = sumMoney(costs...)
	res.TotalRange = api.PriceRange{
		Low:     sumMoney(lows...),
		High:    sumMoney(highs...),
		Average: res.TotalEstimate,
	}
	return res
}

func MapBudgetComparisonDomainToApi(b domain.BudgetComparison) api.BudgetComparison {
	return api.BudgetComparison{
		Status:      string(b.Status),
		Difference:  roundMoney(b.Difference),
		PercentDiff: roundMoney(b.PercentDiff),
		Message:     b.Message,
	}
}

func MapPricePredictionDomainToApi(p domain.PricePrediction) api.PricePrediction {
	factors := make([]api.PriceFactor, 0, len(p.Factors))
	for _, f := range p.Factors {
		factors = append(factors, api.PriceFactor{
			Name:   f.Name,
			Type:   string(f.Type),
			Rate:   roundRate(f.Rate),
			Impact: roundMoney(f.Impact),
		})
	}

	return api.PricePrediction{
		Item:           MapRequestedItemDomainToApi(p.Item),
		PredictedPrice: roundMoneyPtr(p.PredictedPrice),
		PriceRange:     MapPriceRangeDomainToApi(p.PriceRange),
		Confidence:     p.Confidence,
		Trend:          MapRegressionTrendDomainToApi(p.Trend),
		Seasonality: api.Seasonality{
			Pattern:   string(p.Seasonality.Pattern),
			Detected:  p.Seasonality.Detected,
			PeakMonth: p.Seasonality.PeakMonth,
			LowMonth:  p.Seasonality.LowMonth,
			Variation: roundRate(p.Seasonality.Variation),
			Message:   p.Seasonality.Message,
		},
		Factors: factors,
		Ensemble: api.Ensemble{
			Regression:           roundMoney(p.Ensemble.Regression),
			MovingAverage:        roundMoney(p.Ensemble.MovingAverage),
			ExponentialSmoothing: roundMoney(p.Ensemble.ExponentialSmoothing),
			Combined:             roundMoney(p.Ensemble.Combined),
		},
		BasedOn:    p.BasedOn,
		Horizon:    p.Horizon,
		NextUpdate: p.NextUpdate,
		Message:    p.Message,
	}
}
