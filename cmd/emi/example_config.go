package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/loanlens/emi-calculator/internal/config"
)

func newExampleConfigCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "example-config",
		Short: "Write an example engine configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parser := config.NewInputParser()
			cfg := parser.CreateExampleConfiguration()
			if path == "" {
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return fmt.Errorf("failed to encode configuration: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := parser.SaveConfiguration(cfg, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "output", "o", "", "file to write (stdout when empty)")
	return cmd
}
