package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/sameer10342432/realestate-tools/internal/modules/comparison"
	"github.com/sameer10342432/realestate-tools/internal/modules/insurance"
	"github.com/sameer10342432/realestate-tools/internal/modules/market"
	"github.com/sameer10342432/realestate-tools/internal/modules/moving"
	"github.com/sameer10342432/realestate-tools/internal/modules/projection"
	"github.com/sameer10342432/realestate-tools/internal/modules/renovation"
	"github.com/sameer10342432/realestate-tools/pkg/formulas"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// PaymentResult is the output of the payment subcommand
type PaymentResult struct {
	Principal      float64                       `json:"principal"`
	InterestRate   float64                       `json:"interest_rate"`
	TermYears      int                           `json:"term_years"`
	PeriodsPerYear int                           `json:"periods_per_year"`
	Payment        float64                       `json:"payment"`
	TotalInterest  float64                       `json:"total_interest"`
	Schedule       []formulas.AmortizationPeriod `json:"schedule,omitempty"`
}

func (a *app) paymentCmd() *cobra.Command {
	var (
		principal float64
		rate      float64
		term      int
		monthly   bool
		schedule  bool
	)

	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Compute the fixed payment of an amortizing loan",
		Example: `  calc payment --principal 200000 --rate 6.5 --term 30 --monthly
  calc payment --principal 50000 --rate 0 --term 10 --schedule`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if principal <= 0 {
				return fmt.Errorf("--principal must be positive")
			}
			if rate < 0 || rate > 100 {
				return fmt.Errorf("--rate must be between 0 and 100")
			}
			if term < 1 || term > 50 {
				return fmt.Errorf("--term must be between 1 and 50 years")
			}

			periods := formulas.PeriodsAnnual
			if monthly {
				periods = formulas.PeriodsMonthly
			}

			table := formulas.AmortizationSchedule(principal, rate, term, periods)
			result := PaymentResult{
				Principal:      principal,
				InterestRate:   rate,
				TermYears:      term,
				PeriodsPerYear: periods,
				Payment:        formulas.PeriodicPayment(principal, rate, term, periods),
				TotalInterest:  formulas.TotalInterest(table),
			}
			if schedule {
				result.Schedule = table
			}

			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			return printPayment(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().Float64Var(&principal, "principal", 0, "loan principal")
	cmd.Flags().Float64Var(&rate, "rate", 0, "annual interest rate in percent")
	cmd.Flags().IntVar(&term, "term", 30, "loan term in years")
	cmd.Flags().BoolVar(&monthly, "monthly", false, "amortize monthly instead of annually")
	cmd.Flags().BoolVar(&schedule, "schedule", false, "print the full amortization table")
	_ = cmd.MarkFlagRequired("principal")

	return cmd
}

func (a *app) projectCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a rental property over its holding period",
		Long: `Runs the conservative, moderate and optimistic scenarios for one set of
assumptions and prints the summary followed by the moderate year-by-year table.`,
		Example: "  calc project -f assumptions.yaml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var assumptions projection.Assumptions
			if err := decodeFile(file, &assumptions); err != nil {
				return err
			}

			summary, err := a.projectionService().Calculate(context.Background(), assumptions)
			if err != nil {
				return err
			}

			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), summary)
			}
			return printProjection(cmd.OutOrStdout(), summary)
		},
	}

	addFileFlag(cmd, &file, "assumptions")
	return cmd
}

func (a *app) compareCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare several properties side by side",
		Long: `Reads a list of labelled properties, each with its own assumptions, and
ranks them by cap rate, cash-on-cash, total and annualized return and monthly cash flow.`,
		Example: "  calc compare -f properties.yaml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var properties []comparison.Property
			if err := decodeFile(file, &properties); err != nil {
				return err
			}

			result, err := a.comparer().Compare(properties)
			if err != nil {
				return err
			}

			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			return printComparison(cmd.OutOrStdout(), result)
		},
	}

	addFileFlag(cmd, &file, "properties")
	return cmd
}

func (a *app) marketCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:     "market",
		Short:   "Analyze a regional price history and project prices forward",
		Example: "  calc market -f market.yaml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in market.Input
			if err := decodeFile(file, &in); err != nil {
				return err
			}

			analysis, err := a.analyzer().Analyze(in)
			if err != nil {
				return err
			}

			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), analysis)
			}
			return printMarket(cmd.OutOrStdout(), analysis)
		},
	}

	addFileFlag(cmd, &file, "market")
	return cmd
}

func (a *app) renovateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:     "renovate",
		Short:   "Estimate renovation costs room by room",
		Example: "  calc renovate -f renovation.yaml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in renovation.Input
			if err := decodeFile(file, &in); err != nil {
				return err
			}

			est, err := renovation.Estimate(in)
			if err != nil {
				return err
			}

			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), est)
			}
			return printRenovation(cmd.OutOrStdout(), est)
		},
	}

	addFileFlag(cmd, &file, "renovation")
	return cmd
}

func (a *app) moveCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:     "move",
		Short:   "Estimate the cost of a household move",
		Example: "  calc move -f moving.yaml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in moving.Input
			if err := decodeFile(file, &in); err != nil {
				return err
			}

			est, err := moving.Estimate(in)
			if err != nil {
				return err
			}

			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), est)
			}
			return printMoving(cmd.OutOrStdout(), est)
		},
	}

	addFileFlag(cmd, &file, "moving")
	return cmd
}

func (a *app) insureCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:     "insure",
		Short:   "Estimate a homeowners insurance premium",
		Example: "  calc insure -f insurance.yaml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in insurance.Input
			if err := decodeFile(file, &in); err != nil {
				return err
			}

			est, err := insurance.Estimate(in)
			if err != nil {
				return err
			}

			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), est)
			}
			return printInsurance(cmd.OutOrStdout(), est)
		},
	}

	addFileFlag(cmd, &file, "insurance")
	return cmd
}

func addFileFlag(cmd *cobra.Command, file *string, what string) {
	cmd.Flags().StringVarP(file, "file", "f", "", fmt.Sprintf("%s file (YAML or JSON)", what))
	_ = cmd.MarkFlagRequired("file")
}

// decodeFile reads a YAML document into out. JSON documents are valid YAML.
func decodeFile(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
