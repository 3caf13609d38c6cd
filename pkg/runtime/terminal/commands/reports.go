package commands

import (
	"fmt"
	"strings"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
)

const notAvailable = "n/a"

// RFQReport lays out an RFQ estimate with one row per item. budget is optional.
func RFQReport(estimate domain.RFQEstimate, budget *domain.BudgetComparison, period domain.TimePeriod) *domain.Report {
	summary := map[string]interface{}{
		"Items":      len(estimate.Items),
		"Confidence": fmt.Sprintf("%.0f%%", estimate.Confidence),
		"Range":      fmt.Sprintf("%.2f - %.2f", estimate.TotalRange.Low, estimate.TotalRange.High),
	}
	if budget != nil {
		summary["Budget status"] = string(budget.Status)
		summary["Budget note"] = budget.Message
	}

	items := make([]domain.ReportDetail, 0, len(estimate.Items))
	var advice []domain.ReportDetail
	for _, est := range estimate.Items {
		items = append(items, domain.ReportDetail{
			Name:        est.Item.ProductName,
			Value:       formatCost(est.EstimatedCost),
			Unit:        est.Item.Unit,
			Description: itemDescription(est),
		})
		for _, rec := range est.Recommendations {
			advice = append(advice, domain.ReportDetail{
				Name:        est.Item.ProductName,
				Value:       "-",
				Description: rec,
			})
		}
	}

	sections := []domain.ReportSection{{
		Title:   "Estimate",
		Summary: summary,
		Details: items,
	}}
	if len(advice) > 0 {
		sections = append(sections, domain.ReportSection{
			Title:   "Recommendations",
			Details: advice,
		})
	}

	return &domain.Report{
		Title:       "RFQ cost estimate",
		Period:      period,
		Sections:    sections,
		TotalAmount: estimate.TotalEstimate,
		Currency:    estimate.Currency,
	}
}

// PredictionReport lays out a price prediction with its model breakdown and factors.
func PredictionReport(p domain.PricePrediction, opts domain.Options) *domain.Report {
	report := &domain.Report{
		Title:    fmt.Sprintf("Price prediction for %s", p.Item.ProductName),
		Currency: opts.Currency,
	}
	if !opts.AsOf.IsZero() {
		report.Period = domain.NewTimePeriod(opts.AsOf, opts.AsOf.AddDate(0, 0, p.Horizon))
	}
	if p.PredictedPrice == nil {
		report.Sections = []domain.ReportSection{{
			Title: "Forecast",
			Summary: map[string]interface{}{
				"Based on": p.BasedOn,
				"Status":   p.Message,
			},
		}}
		return report
	}
	report.TotalAmount = *p.PredictedPrice

	forecast := domain.ReportSection{
		Title: "Forecast",
		Summary: map[string]interface{}{
			"Based on":    p.BasedOn,
			"Confidence":  fmt.Sprintf("%.0f%%", p.Confidence),
			"Range":       fmt.Sprintf("%.2f - %.2f", p.PriceRange.Low, p.PriceRange.High),
			"Trend":       p.Trend.Message,
			"Seasonality": p.Seasonality.Message,
			"Next update": p.NextUpdate.Format("2006-01-02"),
		},
		Details: []domain.ReportDetail{
			{Name: "Regression", Value: fmt.Sprintf("%.2f", p.Ensemble.Regression), Description: "least squares over purchase dates"},
			{Name: "Moving average", Value: fmt.Sprintf("%.2f", p.Ensemble.MovingAverage), Description: "mean of the latest prices"},
			{Name: "Exponential smoothing", Value: fmt.Sprintf("%.2f", p.Ensemble.ExponentialSmoothing), Description: "recent prices weighted higher"},
			{Name: "Combined", Value: fmt.Sprintf("%.2f", p.Ensemble.Combined), Description: "weighted blend before factors"},
		},
	}
	report.Sections = append(report.Sections, forecast)

	if len(p.Factors) > 0 {
		factors := domain.ReportSection{Title: "Factors"}
		for _, f := range p.Factors {
			factors.Details = append(factors.Details, domain.ReportDetail{
				Name:        f.Name,
				Value:       fmt.Sprintf("%+.2f", f.Impact),
				Description: fmt.Sprintf("%s at %.2f%%", f.Type, f.Rate*100),
			})
		}
		report.Sections = append(report.Sections, factors)
	}

	return report
}

func formatCost(cost *float64) string {
	if cost == nil {
		return notAvailable
	}
	return fmt.Sprintf("%.2f", *cost)
}

func itemDescription(est domain.ItemEstimate) string {
	if est.EstimatedCost == nil {
		return est.Message
	}
	parts := []string{
		fmt.Sprintf("qty %g", est.Item.Quantity),
		fmt.Sprintf("confidence %.0f%%", est.Confidence),
		fmt.Sprintf("%d comparable", est.BasedOn),
	}
	if est.Trend.Direction != domain.TrendStable {
		parts = append(parts, string(est.Trend.Direction))
	}
	return strings.Join(parts, ", ")
}
