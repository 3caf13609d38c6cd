package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/services/prediction"
)

type PredictCmd struct {
	historyPath string
	product     string
	quantity    float64
	horizon     int
	inflation   float64
	demand      float64
	currency    string
	loader      HistoryLoader
	predictor   *prediction.Predictor
	reporter    ReportHandler
	now         func() time.Time
}

func NewPredictCmd(loader HistoryLoader, predictor *prediction.Predictor, reporter ReportHandler) *cobra.Command {
	pc := &PredictCmd{loader: loader, predictor: predictor, reporter: reporter, now: time.Now}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the future unit price of a product",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.historyPath, "history", "", "Purchase history file (csv, json, xlsx or s3://bucket/key)")
	cmd.Flags().StringVar(&pc.product, "product", "", "Product name to predict")
	cmd.Flags().Float64Var(&pc.quantity, "quantity", 1, "Quantity to be purchased")
	cmd.Flags().IntVar(&pc.horizon, "horizon", 0, "Days ahead to predict (default 30)")
	cmd.Flags().Float64Var(&pc.inflation, "inflation", 0, "Expected inflation rate, e.g. 0.03")
	cmd.Flags().Float64Var(&pc.demand, "demand", 0, "Expected demand adjustment, e.g. 0.05")
	cmd.Flags().StringVar(&pc.currency, "currency", "", "Currency label of the report")

	_ = cmd.MarkFlagRequired("history")
	_ = cmd.MarkFlagRequired("product")

	return cmd
}

func (pc *PredictCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	history, err := pc.loader.Load(ctx, pc.historyPath)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	opts := domain.Options{
		Currency:      pc.currency,
		Horizon:       pc.horizon,
		InflationRate: pc.inflation,
		DemandFactor:  pc.demand,
		AsOf:          pc.now(),
	}
	item := domain.RequestedItem{ProductName: pc.product, Quantity: pc.quantity}

	result := pc.predictor.PredictItemPrice(item, history, opts)
	return pc.reporter.Handle(PredictionReport(result, opts))
}
