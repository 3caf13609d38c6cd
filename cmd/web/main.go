package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/config"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/server"
	profiles "github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/services/config"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/services/estimation"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/services/prediction"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/store/sqldb"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/store/sqldb/history"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the cost estimation web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to a yaml, toml or json config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logger := zerolog.New(os.Stdout).
		Level(cfg.Log.ZerologLevel()).
		With().Timestamp().Logger()

	db, err := sqldb.NewDB(sqldb.Settings{Driver: cfg.Store.Driver, DSN: cfg.Store.DSN})
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close history store")
		}
	}()

	historyStore, err := history.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create history store: %w", err)
	}

	registry, err := tenantProfiles(cfg)
	if err != nil {
		return fmt.Errorf("failed to load tenant profiles: %w", err)
	}

	logger.Info().
		Str("driver", cfg.Store.Driver).
		Str("profiles", cfg.Profiles.Path).
		Msg("configuration loaded")

	api := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Server.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			History:   historyStore,
			Profiles:  registry,
			Estimator: estimation.NewEstimator(cfg.Estimation.EstimatorSettings()),
			Predictor: prediction.NewPredictor(cfg.Estimation.HorizonDays),
		},
	})

	return api.Start()
}

func tenantProfiles(cfg *config.Config) (profiles.Registry, error) {
	if cfg.Profiles.Path == "" {
		return profiles.NewStaticRegistry(domain.TenantProfile{
			Name:        "default",
			Currency:    cfg.Estimation.Currency,
			HorizonDays: cfg.Estimation.HorizonDays,
		}), nil
	}
	return profiles.NewRegistry(cfg.Profiles.Path)
}
