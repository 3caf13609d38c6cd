package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/adapters"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/services/estimation"
)

type EstimateCmd struct {
	historyPath string
	itemsPath   string
	budget      float64
	currency    string
	loader      HistoryLoader
	estimator   *estimation.Estimator
	reporter    ReportHandler
}

func NewEstimateCmd(loader HistoryLoader, estimator *estimation.Estimator, reporter ReportHandler) *cobra.Command {
	ec := &EstimateCmd{loader: loader, estimator: estimator, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the cost of a request for quotation from purchase history",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.historyPath, "history", "", "Purchase history file (csv, json, xlsx or s3://bucket/key)")
	cmd.Flags().StringVar(&ec.itemsPath, "items", "", "Requested items file in any history format")
	cmd.Flags().Float64Var(&ec.budget, "budget", 0, "Budget to compare the total estimate against")
	cmd.Flags().StringVar(&ec.currency, "currency", "", "Currency label of the estimate")

	_ = cmd.MarkFlagRequired("history")
	_ = cmd.MarkFlagRequired("items")

	return cmd
}

func (ec *EstimateCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	history, err := ec.loader.Load(ctx, ec.historyPath)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	rows, err := ec.loader.Load(ctx, ec.itemsPath)
	if err != nil {
		return fmt.Errorf("failed to load items: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("no items found in %s", ec.itemsPath)
	}

	items := make([]domain.RequestedItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, adapters.MapHistoricalRecordToRequestedItem(row))
	}

	estimate, err := ec.estimator.EstimateRFQCost(ctx, items, history, domain.Options{Currency: ec.currency})
	if err != nil {
		return fmt.Errorf("failed to estimate rfq cost: %w", err)
	}

	var budget *domain.BudgetComparison
	if cmd.Flags().Changed("budget") {
		comparison := estimation.CompareWithBudget(estimate, ec.budget)
		budget = &comparison
	}

	return ec.reporter.Handle(RFQReport(estimate, budget, domain.HistoryPeriod(history)))
}
