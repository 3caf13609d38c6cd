package terminal

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/runtime/terminal/commands"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/runtime/terminal/export"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/services/estimation"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/services/history"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/services/prediction"
)

const (
	OutputTable = "table"
	OutputText  = "text"
)

// CLI represents the command-line interface
type CLI struct {
	registry  history.Registry
	loader    commands.HistoryLoader
	estimator *estimation.Estimator
	predictor *prediction.Predictor
	output    io.Writer
	logger    zerolog.Logger
	format    string
	verbose   bool
	rootCmd   *cobra.Command
}

// Options contain configuration for the CLI. Nil services fall back to defaults.
type Options struct {
	Registry  history.Registry
	Loader    commands.HistoryLoader
	Estimator *estimation.Estimator
	Predictor *prediction.Predictor
	Output    io.Writer
	Logger    *zerolog.Logger
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Registry == nil {
		opts.Registry = history.NewDefaultRegistry()
	}
	if opts.Loader == nil {
		opts.Loader = history.NewLoader(opts.Registry, nil)
	}
	if opts.Estimator == nil {
		opts.Estimator = estimation.NewEstimator(estimation.DefaultSettings())
	}
	if opts.Predictor == nil {
		opts.Predictor = prediction.NewPredictor(prediction.DefaultHorizonDays)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	cli := &CLI{
		registry:  opts.Registry,
		loader:    opts.Loader,
		estimator: opts.Estimator,
		predictor: opts.Predictor,
		output:    opts.Output,
		logger:    logger,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.ExecuteContext(context.Background())
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

// Handle renders report with the reporter selected by --output.
func (cli *CLI) Handle(report *domain.Report) error {
	switch cli.format {
	case OutputText:
		return NewReporter(cli.output).Handle(report)
	case OutputTable, "":
		return export.NewReporter(cli.output).Handle(report)
	default:
		return fmt.Errorf("unknown output format %q, expected %s or %s", cli.format, OutputTable, OutputText)
	}
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cost-atlas",
		Short:         "Cost estimation and price prediction from purchase history",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := zerolog.InfoLevel
			if cli.verbose {
				level = zerolog.DebugLevel
			}
			logger := cli.logger.Level(level)
			cmd.SetContext(logger.WithContext(cmd.Context()))
		},
	}
	cmd.SetOut(cli.output)

	cmd.PersistentFlags().StringVarP(&cli.format, "output", "o", OutputTable, "Report format (table or text)")
	cmd.PersistentFlags().BoolVarP(&cli.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(commands.NewEstimateCmd(cli.loader, cli.estimator, cli))
	cmd.AddCommand(commands.NewPredictCmd(cli.loader, cli.predictor, cli))
	cmd.AddCommand(commands.NewImportCmd(cli.loader))
	cmd.AddCommand(commands.NewFormatsCmd(cli.registry))

	return cmd
}
