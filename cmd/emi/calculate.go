package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/loanlens/emi-calculator/internal/calculation"
	"github.com/loanlens/emi-calculator/internal/domain"
	"github.com/loanlens/emi-calculator/internal/output"
	"github.com/loanlens/emi-calculator/pkg/dateutil"
)

type calculateOptions struct {
	principal string
	rate      string
	term      int
	unit      string
	start     string
	format    string
	outputDir string
	labels    string
	noPolicy  bool
}

func newCalculateCmd(root *rootOptions) *cobra.Command {
	opts := &calculateOptions{}
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Print the amortization schedule for a loan",
		Example: `  emi calculate --principal 25 --unit lakh --rate 8.5 --term 240
  emi calculate --principal 500000 --rate 10 --term 12 --start 2026-11 --format csv --output reports`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalculate(cmd, root, opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.principal, "principal", "p", "", "loan amount in --unit")
	f.StringVarP(&opts.rate, "rate", "r", "", "annual interest rate in percent")
	f.IntVarP(&opts.term, "term", "n", 0, "tenure in months")
	f.StringVarP(&opts.unit, "unit", "u", "", "amount unit: raw, thousand, lakh, crore")
	f.StringVar(&opts.start, "start", "", "first instalment month (YYYY-MM), defaults to the current month")
	f.StringVarP(&opts.format, "format", "f", "", "output format: "+formatList())
	f.StringVarP(&opts.outputDir, "output", "o", "", "write a timestamped report file into this directory instead of stdout")
	f.StringVar(&opts.labels, "labels", "month", "chart labels: index or month")
	f.BoolVar(&opts.noPolicy, "no-policy", false, "skip the form input range checks")
	return cmd
}

func runCalculate(cmd *cobra.Command, root *rootOptions, opts *calculateOptions) error {
	cfg, err := loadConfiguration(root.configFile)
	if err != nil {
		return err
	}
	engine, err := newEngine(cfg, root.logger)
	if err != nil {
		return err
	}
	engine.EnforcePolicy = !opts.noPolicy

	input, err := calculateInput(cmd, cfg.Defaults, opts)
	if err != nil {
		return err
	}
	style, err := output.ParseLabelStyle(opts.labels)
	if err != nil {
		return err
	}
	format := opts.format
	if format == "" {
		format = cfg.Defaults.Format
	}

	result, err := engine.Calculate(context.Background(), input)
	if err != nil {
		return err
	}
	report := output.BuildReport(result, engine.TierClassifier(), style)

	if opts.outputDir == "" {
		return output.WriteReport(cmd.OutOrStdout(), report, format)
	}
	files, err := output.GenerateReport(report, format, opts.outputDir)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", f)
	}
	return nil
}

// calculateInput merges explicit flags over the configured defaults.
func calculateInput(cmd *cobra.Command, defaults domain.LoanDefaults, opts *calculateOptions) (domain.LoanInput, error) {
	input := domain.LoanInput{
		Principal:         defaults.Principal,
		AnnualRatePercent: defaults.AnnualRatePercent,
		TermMonths:        defaults.TermMonths,
		Unit:              defaults.Unit,
	}
	flags := cmd.Flags()
	if flags.Changed("principal") {
		p, err := decimal.NewFromString(opts.principal)
		if err != nil {
			return input, fmt.Errorf("invalid --principal %q: %w", opts.principal, err)
		}
		input.Principal = p
		if !flags.Changed("unit") {
			input.Unit = domain.UnitRaw
		}
	}
	if flags.Changed("rate") {
		r, err := decimal.NewFromString(opts.rate)
		if err != nil {
			return input, fmt.Errorf("invalid --rate %q: %w", opts.rate, err)
		}
		input.AnnualRatePercent = r
	}
	if flags.Changed("term") {
		input.TermMonths = opts.term
	}
	if flags.Changed("unit") {
		unit, err := calculation.ParseAmountUnit(opts.unit)
		if err != nil {
			return input, err
		}
		input.Unit = unit
	}
	if opts.start != "" {
		start, err := dateutil.ParseYearMonth(opts.start)
		if err != nil {
			return input, fmt.Errorf("invalid --start %q: %w", opts.start, err)
		}
		input.StartDate = start
	}
	return input, nil
}
