package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/config"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/runtime/terminal"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/services/estimation"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/services/history"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/services/prediction"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(os.Getenv("COST_ATLAS_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(cfg.Log.ZerologLevel()).
		With().Timestamp().Logger()

	registry := history.NewDefaultRegistry()
	cli := terminal.NewCLI(terminal.Options{
		Registry:  registry,
		Loader:    history.NewLoader(registry, history.NewS3Client),
		Estimator: estimation.NewEstimator(cfg.Estimation.EstimatorSettings()),
		Predictor: prediction.NewPredictor(cfg.Estimation.HorizonDays),
		Output:    os.Stdout,
		Logger:    &logger,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
