package estimation

import (
	"fmt"
	"math"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
)

// CompareWithBudget classifies the total of estimate against budget.
func CompareWithBudget(estimate domain.RFQEstimate, budget float64) domain.BudgetComparison {
	return CompareTotalWithBudget(estimate.TotalEstimate, budget)
}

func CompareTotalWithBudget(total, budget float64) domain.BudgetComparison {
	if budget <= 0 {
		return domain.BudgetComparison{
			Status:  domain.BudgetUnknown,
			Message: "No budget specified",
		}
	}

	difference := total - budget
	percent := difference / budget * 100

	comparison := domain.BudgetComparison{
		Difference:  difference,
		PercentDiff: percent,
	}
	switch {
	case percent > 20:
		comparison.Status = domain.BudgetOverHigh
		comparison.Message = fmt.Sprintf("Estimate exceeds budget by %.1f%%; review scope or seek alternative suppliers", percent)
	case percent > 10:
		comparison.Status = domain.BudgetOverMedium
		comparison.Message = fmt.Sprintf("Estimate exceeds budget by %.1f%%; negotiate prices or adjust quantities", percent)
	case percent > 0:
		comparison.Status = domain.BudgetOverLow
		comparison.Message = fmt.Sprintf("Estimate slightly exceeds budget by %.1f%%", percent)
	default:
		comparison.Status = domain.BudgetWithin
		comparison.Message = fmt.Sprintf("Estimate is within budget with %.1f%% to spare", math.Abs(percent))
	}
	return comparison
}
