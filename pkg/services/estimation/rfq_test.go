package estimation

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
)

func TestEstimateRFQCost(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	ctx := logger.WithContext(context.Background())
	estimator := NewEstimator(Settings{MaxConcurrency: 2})

	t.Run("empty request", func(t *testing.T) {
		result, err := estimator.EstimateRFQCost(ctx, nil, nil, domain.Options{})
		require.NoError(t, err)
		assert.Equal(t, 0.0, result.TotalEstimate)
		assert.NotNil(t, result.Items)
		assert.Empty(t, result.Items)
		assert.Equal(t, "USD", result.Currency)
	})

	t.Run("sums items and treats missing estimates as zero", func(t *testing.T) {
		items := []domain.RequestedItem{
			chair(10),
			{ProductName: "Forklift", Quantity: 1},
			chair(5),
		}
		result, err := estimator.EstimateRFQCost(ctx, items, chairHistory(100, 100, 100), domain.Options{Currency: "EGP"})
		require.NoError(t, err)
		require.Len(t, result.Items, 3)

		assert.Equal(t, "Office chair", result.Items[0].Item.ProductName)
		assert.Equal(t, "Forklift", result.Items[1].Item.ProductName)
		assert.Nil(t, result.Items[1].EstimatedCost)

		var sum float64
		for _, item := range result.Items {
			sum += item.Cost()
		}
		assert.InDelta(t, sum, result.TotalEstimate, 1e-9)
		assert.InDelta(t, result.TotalEstimate, result.TotalRange.Average, 1e-9)
		assert.LessOrEqual(t, result.TotalRange.Low, result.TotalEstimate)
		assert.GreaterOrEqual(t, result.TotalRange.High, result.TotalEstimate)

		expectedConfidence := (result.Items[0].Confidence + result.Items[1].Confidence + result.Items[2].Confidence) / 3
		assert.InDelta(t, expectedConfidence, result.Confidence, 1e-9)
		assert.Equal(t, "EGP", result.Currency)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := estimator.EstimateRFQCost(cancelled, []domain.RequestedItem{chair(1)}, chairHistory(100), domain.Options{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCompareWithBudget(t *testing.T) {
	tests := []struct {
		name       string
		total      float64
		budget     float64
		status     domain.BudgetStatus
		difference float64
		percent    float64
	}{
		{"within budget", 8000, 10000, domain.BudgetWithin, -2000, -20},
		{"exactly on budget", 10000, 10000, domain.BudgetWithin, 0, 0},
		{"slightly over", 10500, 10000, domain.BudgetOverLow, 500, 5},
		{"moderately over", 11500, 10000, domain.BudgetOverMedium, 1500, 15},
		{"far over", 15000, 10000, domain.BudgetOverHigh, 5000, 50},
		{"no budget", 15000, 0, domain.BudgetUnknown, 0, 0},
		{"negative budget", 15000, -1, domain.BudgetUnknown, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CompareWithBudget(domain.RFQEstimate{TotalEstimate: tt.total}, tt.budget)
			assert.Equal(t, tt.status, result.Status)
			assert.InDelta(t, tt.difference, result.Difference, 1e-9)
			assert.InDelta(t, tt.percent, result.PercentDiff, 1e-9)
			assert.NotEmpty(t, result.Message)
		})
	}
}
