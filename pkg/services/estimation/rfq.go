package estimation

import (
	"context"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
)

// EstimateRFQCost estimates every item of a request for quotation in parallel and
// aggregates totals. Item order is preserved and missing estimates count as zero.
func (e *Estimator) EstimateRFQCost(
	ctx context.Context,
	items []domain.RequestedItem,
	pool []domain.HistoricalRecord,
	opts domain.Options,
) (domain.RFQEstimate, error) {
	logger := zerolog.Ctx(ctx)
	currency := opts.Currency
	if currency == "" {
		currency = e.settings.DefaultCurrency
	}

	estimates := make([]domain.ItemEstimate, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency())
	for i, item := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			estimates[i] = e.EstimateItemCost(item, pool, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.RFQEstimate{}, fmt.Errorf("estimate rfq items: %w", err)
	}

	result := aggregate(estimates, currency)
	logger.Debug().
		Int("items", len(items)).
		Int("history", len(pool)).
		Float64("total", result.TotalEstimate).
		Msg("estimated rfq")

	return result, nil
}

func (e *Estimator) concurrency() int {
	if e.settings.MaxConcurrency > 0 {
		return e.settings.MaxConcurrency
	}
	return runtime.GOMAXPROCS(0)
}

func aggregate(estimates []domain.ItemEstimate, currency string) domain.RFQEstimate {
	result := domain.RFQEstimate{
		Currency: currency,
		Items:    estimates,
	}
	if len(estimates) == 0 {
		return result
	}

	var confidence float64
	for _, est := range estimates {
		result.TotalEstimate += est.Cost()
		result.TotalRange.Low += est.Range.Low
		result.TotalRange.High += est.Range.High
		confidence += est.Confidence
	}
	result.TotalRange.Average = result.TotalEstimate
	result.Confidence = confidence / float64(len(estimates))
	return result
}
