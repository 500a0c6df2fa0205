package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loanlens/emi-calculator/internal/calculation"
	"github.com/loanlens/emi-calculator/internal/output"
)

func newClassifyCmd(root *rootOptions) *cobra.Command {
	var (
		amount string
		unit   string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:     "classify",
		Short:   "Place a loan amount in its size category and on the gauge",
		Example: "  emi classify --amount 1.2 --unit crore",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfiguration(root.configFile)
			if err != nil {
				return err
			}
			engine, err := newEngine(cfg, root.logger)
			if err != nil {
				return err
			}
			u, err := calculation.ParseAmountUnit(unit)
			if err != nil {
				return err
			}
			c, err := engine.ClassifyAmount(calculation.ParseAmount(amount), u)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(output.BuildGauge(engine.TierClassifier(), c.Amount))
			}
			fmt.Fprintf(out, "Amount:   %s\n", output.FormatAmountLabel(c.Amount))
			fmt.Fprintf(out, "Category: %s\n", output.TierLabel(c.Tier))
			fmt.Fprintf(out, "Class:    %s\n", c.LegacyClass)
			fmt.Fprintf(out, "Gauge:    %.2f° (needle %.2f°)\n", c.GaugeAngle, c.NeedleAngle)
			return nil
		},
	}
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "loan amount; non-numeric characters are ignored")
	cmd.Flags().StringVarP(&unit, "unit", "u", "raw", "amount unit: raw, thousand, lakh, crore")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the gauge payload as JSON")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
