package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/adapters"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/store/sqldb"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/store/sqldb/history"
)

type ImportCmd struct {
	historyPath string
	tenant      string
	driver      string
	dsn         string
	loader      HistoryLoader
}

func NewImportCmd(loader HistoryLoader) *cobra.Command {
	ic := &ImportCmd{loader: loader}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a purchase history file into the history store",
		RunE:  ic.run,
	}

	cmd.Flags().StringVar(&ic.historyPath, "history", "", "Purchase history file (csv, json, xlsx or s3://bucket/key)")
	cmd.Flags().StringVar(&ic.tenant, "tenant", "", "Tenant owning the records")
	cmd.Flags().StringVar(&ic.driver, "driver", sqldb.DriverSQLite, "Store driver (sqlite or postgres)")
	cmd.Flags().StringVar(&ic.dsn, "db", "cost-atlas.db", "Store data source name")

	_ = cmd.MarkFlagRequired("history")
	_ = cmd.MarkFlagRequired("tenant")

	return cmd
}

func (ic *ImportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	records, err := ic.loader.Load(ctx, ic.historyPath)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	db, err := sqldb.NewDB(sqldb.Settings{Driver: ic.driver, DSN: ic.dsn})
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to close history store")
		}
	}()

	store, err := history.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create history store: %w", err)
	}

	err = sqldb.InTransaction(ctx, db.DB, func(txCtx context.Context) error {
		return store.Add(txCtx, ic.tenant, adapters.MapDomainHistoricalRecordsToStore(ic.tenant, records))
	})
	if err != nil {
		return fmt.Errorf("failed to import history: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d records for tenant %s\n", len(records), ic.tenant)
	return nil
}
