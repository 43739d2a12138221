// Command calc runs the real estate calculators from the command line.
// Inputs are YAML (or JSON) files; results print as tables or, with --json,
// as the same documents the HTTP API returns.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/sameer10342432/realestate-tools/internal/modules/comparison"
	"github.com/sameer10342432/realestate-tools/internal/modules/market"
	"github.com/sameer10342432/realestate-tools/internal/modules/projection"
	"github.com/sameer10342432/realestate-tools/internal/workers"
	"github.com/sameer10342432/realestate-tools/pkg/logger"
	"github.com/spf13/cobra"
)

// app carries the state shared by every subcommand
type app struct {
	jsonOutput bool
	verbose    bool
	workers    int
	log        zerolog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "calc",
		Short: "Real estate investment calculators",
		Long: `calc projects rental property investments and prices the costs around them.

Every subcommand reads its input from a YAML file (JSON works too) given with -f.
Rates are percentages: 6.5 means 6.5%.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.WarnLevel
			if a.verbose {
				level = zerolog.DebugLevel
			}
			a.log = logger.New(logger.Config{
				Level:  level.String(),
				Pretty: true,
				Output: cmd.ErrOrStderr(),
			})
			if a.workers < 1 {
				return fmt.Errorf("--workers must be at least 1, got %d", a.workers)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "print results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().IntVar(&a.workers, "workers", 4, "worker pool size for scenarios and comparisons")

	rootCmd.AddCommand(
		a.paymentCmd(),
		a.projectCmd(),
		a.compareCmd(),
		a.marketCmd(),
		a.renovateCmd(),
		a.moveCmd(),
		a.insureCmd(),
	)

	return rootCmd
}

func (a *app) engine() *projection.Engine {
	return projection.NewEngine(workers.NewWorkerPool(a.workers))
}

func (a *app) projectionService() *projection.Service {
	return projection.NewService(a.engine(), nil, a.log)
}

func (a *app) comparer() *comparison.Comparer {
	pool := workers.NewWorkerPool(a.workers)
	return comparison.NewComparer(projection.NewEngine(pool), pool, a.log)
}

func (a *app) analyzer() *market.Analyzer {
	return market.NewAnalyzer(a.log)
}
