package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/loanlens/emi-calculator/internal/calculation"
	"github.com/loanlens/emi-calculator/internal/config"
	"github.com/loanlens/emi-calculator/internal/domain"
	"github.com/loanlens/emi-calculator/internal/output"
)

type rootOptions struct {
	configFile string
	logLevel   string
	logger     *logrus.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "emi",
		Short:         "EMI amortization calculator",
		Long:          "Calculates equated monthly instalments, amortization schedules and loan size categories.",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "engine configuration file (YAML)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newCalculateCmd(opts),
		newClassifyCmd(opts),
		newServeCmd(opts),
		newExampleConfigCmd(),
	)
	return cmd
}

func newLogger(level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stderr)
	log.SetLevel(lvl)
	return log, nil
}

// loadConfiguration reads path, or returns the built-in defaults when path is empty.
func loadConfiguration(path string) (*domain.Configuration, error) {
	if path == "" {
		cfg := domain.DefaultConfiguration()
		return &cfg, nil
	}
	cfg, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func newEngine(cfg *domain.Configuration, logger *logrus.Logger) (*calculation.CalculationEngine, error) {
	engine, err := calculation.NewCalculationEngineWithConfig(cfg.Tiers, cfg.Gauge, cfg.Policy)
	if err != nil {
		return nil, fmt.Errorf("failed to create calculation engine: %w", err)
	}
	engine.SetLogger(logger)
	return engine, nil
}

func formatList() string {
	names := output.AvailableFormatterNames()
	return strings.Join(append(names, "all"), ", ")
}
